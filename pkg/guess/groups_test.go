package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExplicitGroups(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "Californication", []string{"Californication"}},
		{
			"parens",
			"Movie (2008) extras",
			[]string{"Movie ", "_2008_", " extras"},
		},
		{
			"mixed kinds in order",
			"[Group] Title (2008) {x264}",
			[]string{"_Group_", " Title ", "_2008_", " ", "_x264_"},
		},
		{
			"same-kind nesting stays whole",
			"x(ab(c)(d))y",
			[]string{"x", "_ab(c)(d)_", "y"},
		},
		{
			"dashes are not split",
			"Alfleni-Team (14-01-2008)",
			[]string{"Alfleni-Team ", "_14-01-2008_"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitExplicitGroups(tt.input))
		})
	}
}
