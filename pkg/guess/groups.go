package guess

// enclosingPairs are applied kind-by-kind, left-to-right, when splitting
// a path segment into explicit groups.
var enclosingPairs = [][2]byte{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
}

// splitExplicitGroups splits a path segment into its explicit groups:
// the substrings delimited by top-level parentheses, square brackets or
// curly braces, plus the material outside any of them, in original order.
// A bracket kind nested inside an already-consumed group of another kind
// is never re-split. Dash-delimited splitting is deliberately not done
// here: it would corrupt dates like (14-01-2008) and hyphenated release
// group names like Alfleni-Team.
func splitExplicitGroups(s string) []string {
	parts := []string{s}
	for _, pair := range enclosingPairs {
		var next []string
		for _, part := range parts {
			next = append(next, findFirstLevelGroups(part, pair[0], pair[1])...)
		}
		parts = next
	}
	return parts
}
