package guess

import "strings"

// CleanString strips stray separator characters: every separator byte
// (including blanking filler) becomes a space, runs collapse to one, and
// the ends are trimmed. Used for leftover reporting and for word-level
// checks against the original text.
func CleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isSep(s[i]) {
			b.WriteByte(' ')
		} else {
			b.WriteByte(s[i])
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
