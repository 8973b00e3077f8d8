package guess

import "strconv"

// Evidence is a single property finding produced by one rule match: a
// property name, a typed value and the fixed confidence of the rule that
// produced it. Evidence is immutable once emitted; the merger consumes
// the accumulated list and never feeds anything back.
type Evidence struct {
	Prop       string
	Value      any
	Confidence float64
}

// intProps are normalized to int at creation so the merger can group
// them by value regardless of how many digits the source text used
// ("02" and "2" are the same season).
var intProps = map[string]bool{
	"season":        true,
	"episodeNumber": true,
	"year":          true,
}

// newEvidence builds an Evidence item, converting numeric-looking
// properties from their matched text to int. Conversion cannot fail for
// values captured by the digit-only rule groups; anything else is kept
// as-is.
func newEvidence(prop string, value any, confidence float64) Evidence {
	if s, ok := value.(string); ok && intProps[prop] {
		if n, err := strconv.Atoi(s); err == nil {
			value = n
		}
	}
	return Evidence{Prop: prop, Value: value, Confidence: confidence}
}
