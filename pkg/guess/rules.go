package guess

import "regexp"

// sep matches one separator character. Used as a regexp fragment when
// composing rules; sepChars below is the same set for direct byte checks.
// The blanking filler '_' is a member, so the edge of a consumed region
// still works as a word boundary for later rules.
const sep = `[][)(}{ \._-]`

const sepChars = "[]()}{ ._-"

// isSep reports whether b acts as a separator between words.
func isSep(b byte) bool {
	for i := 0; i < len(sepChars); i++ {
		if sepChars[i] == b {
			return true
		}
	}
	return false
}

// spanAdjust trims a matched span before blanking, so separator
// characters consumed only as context (leading [^0-9], trailing sep)
// stay available to subsequent rules.
type spanAdjust struct {
	start int
	end   int
}

// episodeRule pairs a pattern with the fixed confidence of its matches.
// Confidence is a property of the rule, not of match quality.
type episodeRule struct {
	re         *regexp.Regexp
	confidence float64
	adjust     spanAdjust
}

// episodeRules is tried in order on every explicit group; each rule is
// applied at most once per group and blanks what it matched.
var episodeRules = []episodeRule{
	// ... Season 2 ...
	{regexp.MustCompile(`(?i)season (?P<season>[0-9]+)`), 1.0, spanAdjust{0, 0}},
	{regexp.MustCompile(`(?i)saison (?P<season>[0-9]+)`), 1.0, spanAdjust{0, 0}},

	// ... s02e13 ... (also s02x13; up to 3 junk chars between season and episode)
	{regexp.MustCompile(`(?i)s(?P<season>[0-9]{1,2}).{0,3}[ex](?P<episodeNumber>[0-9]{1,2})[^0-9]`), 1.0, spanAdjust{0, -1}},

	// ... 2x13 ...
	{regexp.MustCompile(`(?i)[^0-9](?P<season>[0-9]{1,2})[x.](?P<episodeNumber>[0-9]{2})[^0-9]`), 0.8, spanAdjust{1, -1}},

	// ... s02 ... on its own
	{regexp.MustCompile(`(?i)` + sep + `s(?P<season>[0-9]{1,2})` + sep), 0.6, spanAdjust{0, 0}},

	// v2/v3 rips of manga episodes
	{regexp.MustCompile(`(?i)` + sep + `(?P<episodeNumber>[0-9]{1,3})v[23]` + sep), 0.6, spanAdjust{0, 0}},
}

// weakEpisodeRules is only consulted when nothing in the whole filename
// has produced an episodeNumber yet: a bare small number between
// separators is a weak hint at best.
var weakEpisodeRules = []episodeRule{
	{regexp.MustCompile(`(?i)` + sep + `(?P<episodeNumber>[0-9]{1,3})` + sep), 0.3, spanAdjust{1, -1}},
}

// releaseGroupRules match the dash-joined <codec>-<group> convention.
// These cannot live in the generic property table because the group name
// is free text, constrained only by its position after the codec. A
// match emits both a videoCodec (canonicalized) and a releaseGroup.
// DVDivX must come after DivX: the separator requirement keeps DivX from
// matching inside DVDivX, so ordering is about priority, not safety.
var releaseGroupRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)` + sep + `(Xvid)-(?P<releaseGroup>.*?)[ \.]`),
	regexp.MustCompile(`(?i)` + sep + `(DivX)-(?P<releaseGroup>.*?)[ \.]`),
	regexp.MustCompile(`(?i)` + sep + `(DVDivX)-(?P<releaseGroup>.*?)[ \.]`),
}
