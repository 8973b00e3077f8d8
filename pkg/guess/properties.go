package guess

import (
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed properties.toml
var propertiesTOML []byte

// propertyOrder fixes the scan order of the known-value lookup. TOML
// tables are unordered maps, and matching must be deterministic.
var propertyOrder = []string{
	"format", "container", "screenSize", "videoCodec", "audioCodec",
	"releaseGroup", "website", "other",
}

// tables holds the static property values and the reverse synonym index.
// The default instance is loaded once and never mutated; callers that
// extend it get a private copy.
type tables struct {
	order  []string
	values map[string][]string
	canon  map[string]string // lowercased synonym -> canonical spelling
}

type tablesFile struct {
	Properties map[string][]string `toml:"properties"`
	Synonyms   map[string][]string `toml:"synonyms"`
}

var (
	defaultTablesOnce sync.Once
	defaultTablesVal  *tables
)

func defaultTables() *tables {
	defaultTablesOnce.Do(func() {
		t, err := parseTables(propertiesTOML)
		if err != nil {
			// The embedded file ships with the binary; failing to
			// parse it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("guess: embedded properties.toml: %v", err))
		}
		defaultTablesVal = t
	})
	return defaultTablesVal
}

func parseTables(data []byte) (*tables, error) {
	var f tablesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	t := &tables{
		values: f.Properties,
		canon:  make(map[string]string),
	}
	for _, prop := range propertyOrder {
		if _, ok := f.Properties[prop]; ok {
			t.order = append(t.order, prop)
		}
	}
	extra := make([]string, 0)
	for prop := range f.Properties {
		if !slices.Contains(t.order, prop) {
			extra = append(extra, prop)
		}
	}
	sort.Strings(extra)
	t.order = append(t.order, extra...)
	for canonical, synonyms := range f.Synonyms {
		for _, syn := range synonyms {
			t.canon[strings.ToLower(syn)] = canonical
		}
	}
	return t, nil
}

// canonical maps a recognized synonym spelling to its canonical value,
// or returns the input unchanged when no synonym is registered.
func (t *tables) canonical(s string) string {
	if c, ok := t.canon[strings.ToLower(s)]; ok {
		return c
	}
	return s
}

// clone returns a deep copy safe to extend without touching the shared
// default tables.
func (t *tables) clone() *tables {
	c := &tables{
		order:  append([]string(nil), t.order...),
		values: make(map[string][]string, len(t.values)),
		canon:  make(map[string]string, len(t.canon)),
	}
	for prop, vals := range t.values {
		c.values[prop] = append([]string(nil), vals...)
	}
	for syn, canonical := range t.canon {
		c.canon[syn] = canonical
	}
	return c
}

func (t *tables) addValues(prop string, values ...string) {
	if _, ok := t.values[prop]; !ok {
		t.order = append(t.order, prop)
	}
	t.values[prop] = append(t.values[prop], values...)
}

func (t *tables) addSynonyms(canonical string, synonyms ...string) {
	for _, syn := range synonyms {
		t.canon[strings.ToLower(syn)] = canonical
	}
}
