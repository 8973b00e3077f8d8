package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/guessarr/pkg/guess"
	"github.com/vmunix/guessarr/pkg/guess/dates"
)

func TestReadNamesFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "names.txt")

	content := `Dexter.S02E13.720p.HDTV.x264-0TV.mkv
# comment
Treme.1x03.Right.Place,.Wrong.Time.HDTV.XviD-NoTV.avi

  Spaced.Name.2x05.avi
`
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	names, err := readNamesFile(testFile)
	require.NoError(t, err)

	want := []string{
		"Dexter.S02E13.720p.HDTV.x264-0TV.mkv",
		"Treme.1x03.Right.Place,.Wrong.Time.HDTV.XviD-NoTV.avi",
		"Spaced.Name.2x05.avi",
	}
	assert.Equal(t, want, names)
}

func TestReadNamesFile_NotFound(t *testing.T) {
	_, err := readNamesFile("/nonexistent/file.txt")
	assert.Error(t, err)
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "HDTV", displayValue("HDTV"))
	assert.Equal(t, "13", displayValue(13))
	assert.Equal(t, "2008-01-14", displayValue(dates.Date{Year: 2008, Month: 1, Day: 14}))
}

func TestMatcherOptions_NoConfigFile(t *testing.T) {
	old := configPath
	configPath = filepath.Join(t.TempDir(), "nope.toml")
	t.Cleanup(func() { configPath = old })

	opts, err := matcherOptions()
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestMatcherOptions_WithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[properties]
releaseGroup = ["NTb"]
`), 0644))

	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	opts, err := matcherOptions()
	require.NoError(t, err)
	require.Len(t, opts, 1)

	g := guess.Parse("Show.S01E01.NTb.mkv", opts...)
	got, ok := g.Str("releaseGroup")
	require.True(t, ok)
	assert.Equal(t, "NTb", got)
}
