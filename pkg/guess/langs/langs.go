// Package langs recognizes language markers in release names: full
// English language names, ISO 639 three-letter codes and a safe subset
// of two-letter codes. Values are golang.org/x/text language tags.
package langs

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Match is one recognized language occurrence. Confidence reflects how
// distinctive the matched spelling is, not how certain the language
// itself is: a full name is rarely anything else, a two-letter code
// often is.
type Match struct {
	Tag        language.Tag
	Confidence float64
}

const (
	confName    = 0.8
	confISO3    = 0.6
	confISO1    = 0.3
	sepChars    = "[]()}{ ._-"
	minWordLen  = 2
	maxWordScan = 64 // no language token is longer than this
)

// candidates covers the languages that actually show up in release
// names. Extending it only requires adding a tag here.
var candidates = []language.Tag{
	language.English, language.French, language.Spanish, language.German,
	language.Italian, language.Portuguese, language.Dutch, language.Swedish,
	language.Norwegian, language.Danish, language.Finnish, language.Polish,
	language.Czech, language.Slovak, language.Hungarian, language.Romanian,
	language.Greek, language.Turkish, language.Russian, language.Ukrainian,
	language.Arabic, language.Hebrew, language.Persian, language.Hindi,
	language.Japanese, language.Korean, language.Chinese, language.Thai,
	language.Vietnamese,
}

// ambiguousISO1 are two-letter codes that read as ordinary words or
// torrent noise; matching them produces far more false positives than
// hits.
var ambiguousISO1 = map[string]bool{
	"it": true, "no": true, "in": true, "is": true, "as": true,
	"to": true, "de": true, "da": true, "id": true, "so": true,
	"be": true, "la": true,
}

// legacyISO3 maps the bibliographic ISO 639-2/B codes still common in
// scene names to their tags; x/text only reports the terminology codes.
var legacyISO3 = map[string]language.Tag{
	"fre": language.French,
	"ger": language.German,
	"dut": language.Dutch,
	"chi": language.Chinese,
	"gre": language.Greek,
	"cze": language.Czech,
	"per": language.Persian,
	"rum": language.Romanian,
	"slo": language.Slovak,
}

type entry struct {
	tag        language.Tag
	confidence float64
}

var (
	tableOnce sync.Once
	table     map[string]entry
)

func langTable() map[string]entry {
	tableOnce.Do(func() {
		table = make(map[string]entry)
		names := display.English.Languages()
		for _, tag := range candidates {
			table[strings.ToLower(names.Name(tag))] = entry{tag, confName}
			base, _ := tag.Base()
			table[base.ISO3()] = entry{tag, confISO3}
			code := base.String()
			if len(code) == 2 && !ambiguousISO1[code] {
				table[code] = entry{tag, confISO1}
			}
		}
		for code, tag := range legacyISO3 {
			table[code] = entry{tag, confISO3}
		}
	})
	return table
}

func isSep(b byte) bool { return strings.IndexByte(sepChars, b) >= 0 }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Search returns the first language token in text and the byte span
// [start, end) it occupies. A token counts only when the characters on
// both sides are separators or the string edge, so a code embedded in a
// longer word never matches. Callers blank the span and call again to
// find further occurrences.
func Search(text string) (m Match, start, end int, ok bool) {
	t := langTable()
	for i := 0; i < len(text); {
		if !isLetter(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isLetter(text[j]) && j-i < maxWordScan {
			j++
		}
		word := strings.ToLower(text[i:j])
		boundedLeft := i == 0 || isSep(text[i-1])
		boundedRight := j == len(text) || isSep(text[j])
		if len(word) >= minWordLen && boundedLeft && boundedRight {
			if e, found := t[word]; found {
				return Match{Tag: e.tag, Confidence: e.confidence}, i, j, true
			}
		}
		i = j
	}
	return Match{}, 0, 0, false
}
