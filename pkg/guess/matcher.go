package guess

import "strings"

// fragmentPair is one slice of an explicit group after matching: the
// original text of the fragment and what is left of it once matched
// regions were blanked. Equal-length partitions of the same group, so
// Original and Remaining always line up byte for byte.
type fragmentPair struct {
	Original  string
	Remaining string
}

// matchGroup runs the ordered rule list over one explicit group. Found
// evidence lands on the matcher's accumulator; the return value is the
// partition of the group into (original, remaining) fragment pairs for
// the match tree.
//
// The group is padded with one sentinel space on each side so rules
// anchored on separator characters can match at the string edges; all
// recorded spans are shifted back before the partition is built.
func (m *Matcher) matchGroup(group string) []fragmentPair {
	padded := " " + group + " "
	current := padded

	var regions []Span
	blank := func(sp Span, adjust spanAdjust) {
		sp = Span{Start: sp.Start + adjust.start, End: sp.End + adjust.end}
		regions = append(regions, sp)
		current = blankRegion(current, sp)
	}

	// Dates first: they are the most specific thing in a filename and
	// protect their digits from the episode rules below.
	if m.opts.searchDate != nil {
		if date, start, end, ok := m.opts.searchDate(current); ok {
			m.add(newEvidence("date", date, 1.0))
			blank(Span{Start: start, End: end}, spanAdjust{})
		}
	}

	for _, rule := range episodeRules {
		m.applyEpisodeRule(rule, blank, &current)
	}

	for _, re := range releaseGroupRules {
		loc := re.FindStringSubmatchIndex(current)
		if loc == nil {
			continue
		}
		codec := current[loc[2]:loc[3]]
		idx := re.SubexpIndex("releaseGroup")
		groupName := current[loc[2*idx]:loc[2*idx+1]]
		m.add(newEvidence("videoCodec", m.tables.canonical(codec), 1.0))
		m.add(newEvidence("releaseGroup", groupName, 1.0))
		blank(Span{Start: loc[0], End: loc[1]}, spanAdjust{1, -1})
	}

	m.scanKnownValues(blank, &current)

	// A bare small number is accepted as an episode number only while
	// nothing stronger has claimed one anywhere in the filename.
	if !m.hasEvidence("episodeNumber") {
		for _, rule := range weakEpisodeRules {
			m.applyEpisodeRule(rule, blank, &current)
		}
	}

	if m.opts.searchLanguage != nil {
		for {
			lang, start, end, ok := m.opts.searchLanguage(current)
			if !ok {
				break
			}
			prop := "language"
			if precededBySubWord(padded, start) {
				prop = "subtitleLanguage"
			}
			m.add(newEvidence(prop, lang.Tag, lang.Confidence))
			blank(Span{Start: start, End: end}, spanAdjust{})
		}
	}

	// Strip the sentinels and shift every recorded span back with them.
	current = current[1 : len(current)-1]
	for i := range regions {
		regions[i] = Span{Start: regions[i].Start - 1, End: regions[i].End - 1}
	}

	// Dashes that survived matching partition the leftover further for
	// reporting; they carry no evidence, so the marks are zero-width.
	for i := 0; i < len(current); i++ {
		if current[i] == '-' {
			regions = append(regions, Span{Start: i, End: i})
		}
	}

	originals := splitOnSpans(group, regions)
	remainings := splitOnSpans(current, regions)
	pairs := make([]fragmentPair, len(originals))
	for i := range originals {
		pairs[i] = fragmentPair{Original: originals[i], Remaining: remainings[i]}
	}
	return pairs
}

// applyEpisodeRule tries one rule against the working string, emitting
// an Evidence item per named capture group on a hit.
func (m *Matcher) applyEpisodeRule(rule episodeRule, blank func(Span, spanAdjust), current *string) {
	loc := rule.re.FindStringSubmatchIndex(*current)
	if loc == nil {
		return
	}
	for i, name := range rule.re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		m.add(newEvidence(name, (*current)[loc[2*i]:loc[2*i+1]], rule.confidence))
	}
	blank(Span{Start: loc[0], End: loc[1]}, rule.adjust)
}

// scanKnownValues looks every known property value up in the working
// string. A hit counts only when both neighbouring characters are
// separators (or absent), so a codec name embedded in a longer word is
// ignored. Accepted hits are blanked before the scan continues, which
// keeps overlapping keywords from claiming the same characters twice.
func (m *Matcher) scanKnownValues(blank func(Span, spanAdjust), current *string) {
	clow := strings.ToLower(*current)
	for _, prop := range m.tables.order {
		for _, value := range m.tables.values[prop] {
			pos := strings.Index(clow, strings.ToLower(value))
			if pos < 0 {
				continue
			}
			end := pos + len(value)
			if !separatorBounded(clow, pos, end) {
				continue
			}
			m.add(newEvidence(prop, m.tables.canonical(value), 1.0))
			blank(Span{Start: pos, End: end}, spanAdjust{})
			clow = strings.ToLower(*current)
		}
	}
}

// separatorBounded reports whether s[start:end] sits between separator
// characters; the string edges count as separators.
func separatorBounded(s string, start, end int) bool {
	if start > 0 && !isSep(s[start-1]) {
		return false
	}
	if end < len(s) && !isSep(s[end]) {
		return false
	}
	return true
}

// precededBySubWord reports whether the cleaned word immediately before
// offset in the original (pre-blanking) text is "sub", which marks the
// following language as a subtitle language rather than the audio one.
func precededBySubWord(original string, offset int) bool {
	if offset > len(original) {
		offset = len(original)
	}
	words := strings.Fields(CleanString(original[:offset]))
	return len(words) > 0 && strings.EqualFold(words[len(words)-1], "sub")
}
