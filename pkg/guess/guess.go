// Package guess infers structured metadata (season and episode numbers,
// codecs, release group, languages, dates, extension) from a media
// filename. An ordered set of pattern rules is applied iteratively over
// the bracket-delimited groups of each path segment, consumed text is
// blanked so no rule matches it twice, and the collected evidence is
// merged into one record with per-property confidence scores.
//
// Matching one filename is a pure computation over read-only rule
// tables: matchers may run concurrently without coordination.
package guess

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/vmunix/guessarr/pkg/guess/dates"
	"github.com/vmunix/guessarr/pkg/guess/langs"
)

// DateFunc locates a date in text, returning the byte span it occupies.
// The default is dates.Search.
type DateFunc func(text string) (date dates.Date, start, end int, ok bool)

// LanguageFunc locates one language marker in text. It is called
// repeatedly on the progressively blanked remainder until it reports
// !ok. The default is langs.Search.
type LanguageFunc func(text string) (lang langs.Match, start, end int, ok bool)

type options struct {
	searchDate     DateFunc
	searchLanguage LanguageFunc
	tables         *tables
	tablesOwned    bool
}

// Option customizes a Matcher.
type Option func(*options)

// WithDateDetector replaces the date detector; nil disables date
// matching entirely.
func WithDateDetector(fn DateFunc) Option {
	return func(o *options) { o.searchDate = fn }
}

// WithLanguageDetector replaces the language detector; nil disables
// language matching entirely.
func WithLanguageDetector(fn LanguageFunc) Option {
	return func(o *options) { o.searchLanguage = fn }
}

// WithKnownValues registers extra literal values for a property in the
// known-value lookup, e.g. release groups of a private tracker.
func WithKnownValues(prop string, values ...string) Option {
	return func(o *options) {
		o.ownTables()
		o.tables.addValues(prop, values...)
	}
}

// WithSynonyms registers extra synonym spellings that canonicalize to
// the given value.
func WithSynonyms(canonical string, synonyms ...string) Option {
	return func(o *options) {
		o.ownTables()
		o.tables.addSynonyms(canonical, synonyms...)
	}
}

// ownTables swaps the shared default tables for a private copy before
// the first mutation.
func (o *options) ownTables() {
	if !o.tablesOwned {
		o.tables = o.tables.clone()
		o.tablesOwned = true
	}
}

// Guess is the final merged metadata for one filename: a property to
// value mapping, each property annotated with the confidence it was
// merged at. Immutable after construction. Absence of a property is the
// "could not determine" signal; there is no error taxonomy.
type Guess struct {
	values      map[string]any
	confidences map[string]float64
}

// Value returns the raw value for a property.
func (g Guess) Value(prop string) (any, bool) {
	v, ok := g.values[prop]
	return v, ok
}

// Int returns an integer property such as season or episodeNumber.
func (g Guess) Int(prop string) (int, bool) {
	n, ok := g.values[prop].(int)
	return n, ok
}

// Str returns a string property such as videoCodec or releaseGroup.
func (g Guess) Str(prop string) (string, bool) {
	s, ok := g.values[prop].(string)
	return s, ok
}

// Confidence returns the confidence a property was merged at, or 0 when
// the property is absent.
func (g Guess) Confidence(prop string) float64 {
	return g.confidences[prop]
}

// Properties lists the guessed property names in sorted order.
func (g Guess) Properties() []string {
	props := make([]string, 0, len(g.values))
	for prop := range g.values {
		props = append(props, prop)
	}
	sort.Strings(props)
	return props
}

// Len reports how many properties were guessed.
func (g Guess) Len() int { return len(g.values) }

// MarshalJSON renders the guess as a flat property-to-value object.
// Dates and language tags marshal as text.
func (g Guess) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.values)
}

// Matcher drives the full pipeline over one filename: path
// decomposition, explicit-group decomposition, per-group rule matching,
// and evidence merging. All state is created by NewMatcher and
// read-only afterward.
type Matcher struct {
	filename string
	opts     options
	tables   *tables

	evidence []Evidence
	tree     matchTree
	guess    Guess
}

// NewMatcher matches filename immediately and returns the finished
// matcher for inspection. Well-formed string input cannot fail:
// unbalanced brackets, empty segments and match-free names all produce
// defined, empty-ish results.
func NewMatcher(filename string, opts ...Option) *Matcher {
	o := options{
		searchDate:     dates.Search,
		searchLanguage: langs.Search,
		tables:         defaultTables(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	m := &Matcher{filename: filename, opts: o, tables: o.tables}
	m.run()
	return m
}

// Parse is the one-call form: match filename with default collaborators
// and return just the merged guess.
func Parse(filename string, opts ...Option) Guess {
	return NewMatcher(filename, opts...).Guess()
}

func (m *Matcher) run() {
	segments := splitPathComponents(m.filename)

	// The extension is decided by position alone; it is emitted
	// directly and excluded from rule matching.
	last := len(segments) - 1
	stem, ext := splitExtension(segments[last])
	if ext != "" {
		m.add(newEvidence("extension", ext, 1.0))
	}
	segments[last] = stem

	m.tree = make(matchTree, len(segments))
	for i, segment := range segments {
		groups := splitExplicitGroups(segment)
		seg := make([][]fragmentPair, len(groups))
		for j, group := range groups {
			seg[j] = m.matchGroup(group)
		}
		m.tree[i] = seg
	}

	m.guess = mergeEvidence(m.evidence)
}

func (m *Matcher) add(e Evidence) {
	m.evidence = append(m.evidence, e)
}

func (m *Matcher) hasEvidence(prop string) bool {
	for _, e := range m.evidence {
		if e.Prop == prop {
			return true
		}
	}
	return false
}

// Guess returns the merged metadata record.
func (m *Matcher) Guess() Guess { return m.guess }

// Evidence returns a copy of the raw evidence list in the order it was
// found, for diagnostics and tests.
func (m *Matcher) Evidence() []Evidence {
	return append([]Evidence(nil), m.evidence...)
}

// Leftover returns the cleaned text fragments that no rule could
// attribute to any property.
func (m *Matcher) Leftover() []string { return m.tree.leftover() }

// TreeString renders the match tree for debugging: rows of per-byte
// path-segment, explicit-group and fragment indices aligned over the
// unmatched remainder of the filename.
func (m *Matcher) TreeString() string { return m.tree.render() }

// splitPathComponents splits a filename into its directory components
// and basename; empty components collapse away. An empty filename
// yields a single empty component so matching still runs.
func splitPathComponents(filename string) []string {
	parts := strings.FieldsFunc(filename, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return []string{""}
	}
	return parts
}

// splitExtension splits a basename into stem and extension (without the
// dot). Dotless names and dotfiles have no extension.
func splitExtension(basename string) (stem, ext string) {
	idx := strings.LastIndexByte(basename, '.')
	if idx <= 0 {
		return basename, ""
	}
	return basename[:idx], basename[idx+1:]
}
