package guess

import "strings"

// matchTree is the structured intermediate result of one matching run:
// per path segment, per explicit group, the (original, remaining)
// fragment pairs left after all rule passes. Owned by the Matcher while
// it runs, read-only afterward.
type matchTree [][][]fragmentPair

// leftover collects every remaining fragment, cleaned of separator
// characters, empties dropped.
func (t matchTree) leftover() []string {
	var left []string
	for _, segment := range t {
		for _, group := range segment {
			for _, pair := range group {
				if cleaned := CleanString(pair.Remaining); cleaned != "" {
					left = append(left, cleaned)
				}
			}
		}
	}
	return left
}

// render draws the tree as four aligned rows: path-segment index,
// explicit-group index, fragment index, and the remaining text itself.
// Matched characters appear blanked in the bottom row, so the index
// rows effectively classify each byte of the filename:
//
//	000000 111111111111111 22222222 3333333333333333333333333333333333333333333
//	000000 000000000000000 00000000 0000000000000000000000000000000000000000000
//	000000 000000000000000 00000000 000000000000000 1111 2222222222 3333 444444
//	Series/Californication/________/Californication.____.Vaginatown.____._____
func (t matchTree) render() string {
	var rows [4]strings.Builder

	draw := func(p, e, g byte, text string) {
		rows[0].WriteString(strings.Repeat(string(p), len(text)))
		rows[1].WriteString(strings.Repeat(string(e), len(text)))
		rows[2].WriteString(strings.Repeat(string(g), len(text)))
		rows[3].WriteString(text)
	}

	for pi, segment := range t {
		if pi > 0 {
			draw(' ', ' ', ' ', "/")
		}
		for ei, group := range segment {
			for gi, pair := range group {
				draw(digit(pi), digit(ei), digit(gi), pair.Remaining)
			}
		}
	}

	return rows[0].String() + "\n" + rows[1].String() + "\n" +
		rows[2].String() + "\n" + rows[3].String()
}

func digit(n int) byte { return byte('0' + n%10) }
