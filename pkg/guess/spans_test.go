package guess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindFirstLevelGroupSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  byte
		close byte
		want  []Span
	}{
		{"no groups", "abcd", '(', ')', nil},
		{"single group", "abc(de)fgh", '(', ')', []Span{{3, 7}}},
		{"nested not reported", "(ab(c)(d))", '(', ')', []Span{{0, 10}}},
		{"two bracket groups", "ab[c]de[f]gh(i)", '[', ']', []Span{{2, 5}, {7, 10}}},
		{"unbalanced closer ignored", "ab)cd(e)", '(', ')', []Span{{5, 8}}},
		{"unbalanced opener ignored", "ab(cd", '(', ')', nil},
		{"empty string", "", '(', ')', nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findFirstLevelGroupSpans(tt.input, tt.open, tt.close)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitOnSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		spans []Span
		want  []string
	}{
		{"no spans", "abcdef", nil, []string{"abcdef"}},
		{"middle span", "abc(de)fgh", []Span{{3, 7}}, []string{"abc", "(de)", "fgh"}},
		{"span at edges", "(ab)cd", []Span{{0, 4}}, []string{"(ab)", "cd"}},
		{"zero-width span splits", "ab-cd", []Span{{2, 2}}, []string{"ab", "-cd"}},
		{"out of range clamped", "abc", []Span{{-2, 5}}, []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitOnSpans(tt.input, tt.spans)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Fragments must reconstruct the input exactly: boundaries only cut.
func TestSplitOnSpansReconstructs(t *testing.T) {
	inputs := []string{
		"ab[c]de[f]gh(i)",
		"Movie (2008) [720p] {x264}",
		"(ab(c)(d))",
		"no brackets at all",
	}

	for _, input := range inputs {
		spans := findFirstLevelGroupSpans(input, '[', ']')
		parts := splitOnSpans(input, spans)
		assert.Equal(t, input, strings.Join(parts, ""), "input %q", input)
	}
}

func TestBlankRegion(t *testing.T) {
	assert.Equal(t, "ab___f", blankRegion("abcdef", Span{2, 5}))
	assert.Equal(t, "abcdef", blankRegion("abcdef", Span{3, 3}))
	assert.Equal(t, "______", blankRegion("abcdef", Span{-1, 10}))
}

func TestFindFirstLevelGroups(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no groups", "abcd", []string{"abcd"}},
		{"delimiters blanked", "abc(de)fgh", []string{"abc", "_de_", "fgh"}},
		{"nested kept whole", "(ab(c)(d))", []string{"_ab(c)(d)_"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findFirstLevelGroups(tt.input, '(', ')'))
		})
	}
}
