package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
		span  string
		found bool
	}{
		{"year first", "show 2008-01-14 x", Date{2008, 1, 14}, "2008-01-14", true},
		{"day first", "show 14-01-2008 x", Date{2008, 1, 14}, "14-01-2008", true},
		{"two digit year", "show.14-01-08.x", Date{2008, 1, 14}, "14-01-08", true},
		{"nineties two digit year", "show.14-01-96.x", Date{1996, 1, 14}, "14-01-96", true},
		{"dotted", "daily.show.2008.01.14.hdtv", Date{2008, 1, 14}, "2008.01.14", true},
		{"us order disambiguated by day", "aired 01-14-2008 ok", Date{2008, 1, 14}, "01-14-2008", true},
		{"blanked context still matches", "___14-01-2008___", Date{2008, 1, 14}, "14-01-2008", true},
		{"no date", "californication 2x05", Date{}, "", false},
		{"version number rejected", "tool 5.1.2 build", Date{}, "", false},
		{"year out of range", "12-01-1875 old", Date{}, "", false},
		{"month out of range", "2008-13-14", Date{}, "", false},
		{"empty", "", Date{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, start, end, ok := Search(tt.input)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.want, d)
			require.LessOrEqual(t, end, len(tt.input))
			assert.Equal(t, tt.span, tt.input[start:end])
		})
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2008, Month: 1, Day: 14}
	assert.Equal(t, "2008-01-14", d.String())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2008-01-14", string(text))
}

func TestWiden(t *testing.T) {
	assert.Equal(t, 2008, widen(8))
	assert.Equal(t, 2029, widen(29))
	assert.Equal(t, 1930, widen(30))
	assert.Equal(t, 1999, widen(99))
}
