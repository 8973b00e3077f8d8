package guess

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// similarStringThreshold is the Jaro-Winkler score above which two
// string values are treated as the same finding at different
// specificities ("Californication" vs "Californication S2").
const similarStringThreshold = 0.85

// mergeEvidence reduces the flat evidence list collected across the
// whole filename into one Guess. The integer properties and the series
// title get a targeted merge first so corroborating findings raise
// confidence and conflicting ones resolve deterministically; everything
// else falls through to a last-write-wins pass.
func mergeEvidence(evidence []Evidence) Guess {
	evidence = mergeSimilar(evidence, "season", sameInt, chooseFirst)
	evidence = mergeSimilar(evidence, "episodeNumber", sameInt, chooseFirst)
	evidence = mergeSimilar(evidence, "series", similarString, chooseLongest)

	values := make(map[string]any, len(evidence))
	confidences := make(map[string]float64, len(evidence))
	for _, e := range evidence {
		// Later-produced evidence wins untreated collisions.
		values[e.Prop] = e.Value
		confidences[e.Prop] = e.Confidence
	}
	return Guess{values: values, confidences: confidences}
}

// evidenceGroup collects items of one property that agree on a value.
type evidenceGroup struct {
	items []Evidence
	first int // index of the group's first item in the original list
}

// mergeSimilar collapses all evidence for prop into a single item.
// Within a group of agreeing values, corroboration boosts confidence:
// the merged confidence is 1 - prod(1-c_i), so two independent 0.8
// findings trust higher than either alone. Between disagreeing groups,
// the one containing the single highest-confidence item wins and the
// others are discarded; on an exact confidence tie the group found
// first wins. The merged item replaces the property's first occurrence
// to keep scan order stable.
func mergeSimilar(evidence []Evidence, prop string, same func(a, b any) bool, choose func(items []Evidence) any) []Evidence {
	var groups []*evidenceGroup
	for i, e := range evidence {
		if e.Prop != prop {
			continue
		}
		var g *evidenceGroup
		for _, cand := range groups {
			if same(cand.items[0].Value, e.Value) {
				g = cand
				break
			}
		}
		if g == nil {
			g = &evidenceGroup{first: i}
			groups = append(groups, g)
		}
		g.items = append(g.items, e)
	}
	if len(groups) == 0 {
		return evidence
	}

	winner := groups[0]
	for _, g := range groups[1:] {
		if g.peak() > winner.peak() {
			winner = g
		}
	}
	merged := Evidence{
		Prop:       prop,
		Value:      choose(winner.items),
		Confidence: winner.combined(),
	}

	firstIdx := groups[0].first
	out := make([]Evidence, 0, len(evidence))
	for i, e := range evidence {
		switch {
		case i == firstIdx:
			out = append(out, merged)
		case e.Prop == prop:
			// dropped: superseded by the merged item
		default:
			out = append(out, e)
		}
	}
	return out
}

// peak is the best single-item confidence in the group; groups compete
// on their strongest witness, not on their boosted total.
func (g *evidenceGroup) peak() float64 {
	best := 0.0
	for _, e := range g.items {
		if e.Confidence > best {
			best = e.Confidence
		}
	}
	return best
}

// combined folds the group's confidences into one: agreement increases
// trust, and a lone item keeps its confidence unchanged.
func (g *evidenceGroup) combined() float64 {
	if len(g.items) == 1 {
		return g.items[0].Confidence
	}
	doubt := 1.0
	for _, e := range g.items {
		doubt *= 1 - e.Confidence
	}
	return 1 - doubt
}

func sameInt(a, b any) bool { return a == b }

// similarString groups string values that are equal ignoring case or
// near-identical under Jaro-Winkler; a title recurring at different
// specificities across path segments should merge, not conflict.
func similarString(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if !aok || !bok {
		return a == b
	}
	if strings.EqualFold(as, bs) {
		return true
	}
	score := edlib.JaroWinklerSimilarity(strings.ToLower(as), strings.ToLower(bs))
	return float64(score) >= similarStringThreshold
}

// chooseFirst keeps the value of the earliest item; int groups all hold
// the same value, so this is just the deterministic pick.
func chooseFirst(items []Evidence) any { return items[0].Value }

// chooseLongest keeps the longest string in the group, the most
// specific spelling of a recurring title.
func chooseLongest(items []Evidence) any {
	best := items[0].Value
	bestLen := -1
	for _, e := range items {
		if s, ok := e.Value.(string); ok && len(s) > bestLen {
			best = e.Value
			bestLen = len(s)
		}
	}
	return best
}
