package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"

	"github.com/vmunix/guessarr/pkg/guess/dates"
)

func TestParse_Californication(t *testing.T) {
	g := Parse("Series/Californication/Season 2/Californication.2x05.Vaginatown.HDTV.XviD-0TV.avi")

	ext, ok := g.Str("extension")
	require.True(t, ok)
	assert.Equal(t, "avi", ext)
	assert.Equal(t, 1.0, g.Confidence("extension"))

	season, ok := g.Int("season")
	require.True(t, ok)
	assert.Equal(t, 2, season)

	episode, ok := g.Int("episodeNumber")
	require.True(t, ok)
	assert.Equal(t, 5, episode)

	format, _ := g.Str("format")
	assert.Equal(t, "HDTV", format)

	codec, _ := g.Str("videoCodec")
	assert.Equal(t, "XviD", codec)

	group, _ := g.Str("releaseGroup")
	assert.Equal(t, "0TV", group)
}

func TestParse_SeasonEpisodeForms(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		season  int
		episode int
		conf    float64
	}{
		{"upper SxxEyy", "Dexter.S02E13.720p.mkv", 2, 13, 1.0},
		{"lower sxxeyy", "dexter.s02e13.720p.mkv", 2, 13, 1.0},
		{"SxxXyy variant", "Dexter.S02x13.mkv", 2, 13, 1.0},
		{"compact NxNN", "show.2x05.avi", 2, 5, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Parse(tt.input)

			season, ok := g.Int("season")
			require.True(t, ok, "season missing")
			assert.Equal(t, tt.season, season)
			assert.Equal(t, tt.conf, g.Confidence("season"))

			episode, ok := g.Int("episodeNumber")
			require.True(t, ok, "episodeNumber missing")
			assert.Equal(t, tt.episode, episode)
			assert.Equal(t, tt.conf, g.Confidence("episodeNumber"))
		})
	}
}

func TestParse_SeasonKeyword(t *testing.T) {
	g := Parse("Dexter/Season 3/whatever.mkv")
	season, ok := g.Int("season")
	require.True(t, ok)
	assert.Equal(t, 3, season)
	assert.Equal(t, 1.0, g.Confidence("season"))

	g = Parse("Dexter/Saison 3/whatever.mkv")
	season, ok = g.Int("season")
	require.True(t, ok)
	assert.Equal(t, 3, season)
}

func TestParse_LoneSeasonMarker(t *testing.T) {
	g := Parse("show.s02.complete.mkv")
	season, ok := g.Int("season")
	require.True(t, ok)
	assert.Equal(t, 2, season)
	assert.Equal(t, 0.6, g.Confidence("season"))
}

func TestParse_MangaVolume(t *testing.T) {
	g := Parse("Naruto.052v2.avi")
	episode, ok := g.Int("episodeNumber")
	require.True(t, ok)
	assert.Equal(t, 52, episode)
	assert.Equal(t, 0.6, g.Confidence("episodeNumber"))
}

func TestParse_WeakEpisodeFallback(t *testing.T) {
	g := Parse("show.104.avi")
	episode, ok := g.Int("episodeNumber")
	require.True(t, ok)
	assert.Equal(t, 104, episode)
	assert.Equal(t, 0.3, g.Confidence("episodeNumber"))
}

// The weak fallback must stay quiet when a stronger rule already found
// an episode number anywhere in the filename, even in another path
// segment.
func TestParse_WeakEpisodeSuppressed(t *testing.T) {
	m := NewMatcher("Dexter S02E13/104.avi")

	episode, ok := m.Guess().Int("episodeNumber")
	require.True(t, ok)
	assert.Equal(t, 13, episode)

	for _, e := range m.Evidence() {
		if e.Prop == "episodeNumber" {
			assert.NotEqual(t, 104, e.Value)
		}
	}
}

func TestParse_KnownValueNeedsSeparators(t *testing.T) {
	g := Parse("blahxvidblah.avi")
	_, ok := g.Str("videoCodec")
	assert.False(t, ok, "embedded codec keyword must not match")

	g = Parse("blah.xvid.blah.avi")
	codec, ok := g.Str("videoCodec")
	require.True(t, ok)
	assert.Equal(t, "XviD", codec)
}

func TestParse_Canonicalization(t *testing.T) {
	tests := []struct {
		input string
		prop  string
		want  string
	}{
		{"Movie.DVDRip.avi", "format", "DVD"},
		{"Movie.BDRip.mkv", "format", "BluRay"},
		{"Movie.HDDVD.mkv", "format", "HD-DVD"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input).Str(tt.prop)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Date(t *testing.T) {
	g := Parse("The.Daily.Show.2008.01.14.avi")
	v, ok := g.Value("date")
	require.True(t, ok)
	assert.Equal(t, dates.Date{Year: 2008, Month: 1, Day: 14}, v)
	assert.Equal(t, 1.0, g.Confidence("date"))
}

func TestParse_DateInsideBrackets(t *testing.T) {
	g := Parse("Show (14-01-2008).avi")
	v, ok := g.Value("date")
	require.True(t, ok)
	assert.Equal(t, dates.Date{Year: 2008, Month: 1, Day: 14}, v)
}

func TestParse_Language(t *testing.T) {
	g := Parse("Movie.French.DVDRip.avi")
	v, ok := g.Value("language")
	require.True(t, ok)
	assert.Equal(t, language.French, v)
}

func TestParse_SubtitleLanguage(t *testing.T) {
	g := Parse("Movie.sub.fr.srt")
	v, ok := g.Value("subtitleLanguage")
	require.True(t, ok)
	assert.Equal(t, language.French, v)

	_, ok = g.Value("language")
	assert.False(t, ok)
}

func TestParse_Extension(t *testing.T) {
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"a/b/c.mkv", "mkv", true},
		{"noext", "", false},
		{".hidden", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ext, ok := Parse(tt.input).Str("extension")
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, ext)
			}
		})
	}
}

// Re-running the matcher on the same filename must yield identical
// results: no hidden mutable global state survives a run.
func TestParse_Idempotent(t *testing.T) {
	const name = "Series/Californication/Season 2/Californication.2x05.Vaginatown.HDTV.XviD-0TV.avi"

	first := NewMatcher(name)
	second := NewMatcher(name)

	assert.Equal(t, first.Guess(), second.Guess())
	assert.Equal(t, first.Leftover(), second.Leftover())
	assert.Equal(t, first.TreeString(), second.TreeString())
}

func TestParse_EmptyAndDegenerateInputs(t *testing.T) {
	for _, input := range []string{"", "...", "((((", "]]]]", "/"} {
		assert.NotPanics(t, func() { Parse(input) }, "input %q", input)
	}
}

func TestMatcher_CustomDetectors(t *testing.T) {
	var sawDate bool
	g := Parse("whatever.avi",
		WithDateDetector(func(text string) (dates.Date, int, int, bool) {
			sawDate = true
			return dates.Date{}, 0, 0, false
		}),
		WithLanguageDetector(nil),
	)

	assert.True(t, sawDate)
	_, ok := g.Value("language")
	assert.False(t, ok)
}

func TestMatcher_ExtraKnownValues(t *testing.T) {
	g := Parse("Movie.1080p.NTb.mkv",
		WithKnownValues("releaseGroup", "NTb"),
		WithSynonyms("NTb", "NTB"))

	group, ok := g.Str("releaseGroup")
	require.True(t, ok)
	assert.Equal(t, "NTb", group)

	// The shared default tables must not have picked up the extras.
	_, ok = Parse("Movie.1080p.NTb.mkv").Str("releaseGroup")
	assert.False(t, ok)
}
