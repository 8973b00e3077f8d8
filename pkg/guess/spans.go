package guess

import "sort"

// blanked is the filler byte written over consumed regions of a working
// string. It never appears in any rule's alphabet, so later rules cannot
// re-match text that an earlier rule already claimed. It does count as a
// separator, which keeps blanked edges usable as word boundaries.
const blanked = '_'

// Span is a half-open byte-offset interval [Start, End) into a working
// string. A zero-width span (Start == End) marks a split point only.
type Span struct {
	Start int
	End   int
}

// findFirstLevelGroupSpans returns the spans of the top-level groups
// delimited by the given enclosing byte pair, in left-to-right order of
// their closing character. Nested groups are not reported separately:
// "(ab(c)(d))" yields a single span covering the whole string. A closer
// with no matching opener is treated as ordinary text, and an opener
// left unclosed at end of string produces no span.
func findFirstLevelGroupSpans(s string, open, close byte) []Span {
	var depth []int // stack of opener indices
	var spans []Span
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth = append(depth, i)
		case close:
			if len(depth) == 0 {
				continue
			}
			start := depth[len(depth)-1]
			depth = depth[:len(depth)-1]
			if len(depth) == 0 {
				spans = append(spans, Span{Start: start, End: i + 1})
			}
		}
	}
	return spans
}

// splitOnSpans partitions s on the boundaries of the given spans,
// preserving order and dropping empty fragments. The concatenation of the
// returned fragments reconstructs s exactly (minus nothing: boundaries
// only cut, they never consume).
func splitOnSpans(s string, spans []Span) []string {
	if len(spans) == 0 {
		return []string{s}
	}

	seen := map[int]bool{0: true, len(s): true}
	boundaries := []int{0, len(s)}
	for _, sp := range spans {
		for _, b := range []int{sp.Start, sp.End} {
			if b < 0 {
				b = 0
			}
			if b > len(s) {
				b = len(s)
			}
			if !seen[b] {
				seen[b] = true
				boundaries = append(boundaries, b)
			}
		}
	}
	sort.Ints(boundaries)

	var parts []string
	for i := 1; i < len(boundaries); i++ {
		if part := s[boundaries[i-1]:boundaries[i]]; part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// blankRegion overwrites sp within s with the filler byte. Out-of-range
// offsets are clamped rather than rejected.
func blankRegion(s string, sp Span) string {
	start, end := sp.Start, sp.End
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return s
	}
	b := []byte(s)
	for i := start; i < end; i++ {
		b[i] = blanked
	}
	return string(b)
}

// findFirstLevelGroups splits s into the alternating sequence of
// outside-group and inside-group fragments for the given enclosing pair.
// The two delimiter bytes of each group are blanked so the interior text
// survives verbatim while the brackets themselves are erased.
func findFirstLevelGroups(s string, open, close byte) []string {
	spans := findFirstLevelGroupSpans(s, open, close)
	b := []byte(s)
	for _, sp := range spans {
		b[sp.Start] = blanked
		b[sp.End-1] = blanked
	}
	return splitOnSpans(string(b), spans)
}
