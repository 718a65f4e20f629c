package render

import (
	"regexp"
	"sort"
	"strings"
)

// span marks s[start:end] for styling.
type span struct {
	start, end int
	style      Style
}

type spans []span

func (ss spans) overlaps(start, end int) bool {
	for _, s := range ss {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// add records [start, end) unless it collides with an earlier span.
func (ss spans) add(start, end int, style Style) spans {
	if start >= end || ss.overlaps(start, end) {
		return ss
	}
	return append(ss, span{start: start, end: end, style: style})
}

// addAll records every match of re in text.
func (ss spans) addAll(re *regexp.Regexp, text string, style Style) spans {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		ss = ss.add(loc[0], loc[1], style)
	}
	return ss
}

// apply substitutes all spans into text in a single pass.
// Characters outside of spans are copied unchanged.
func (ss spans) apply(text string) string {
	if len(ss) == 0 {
		return text
	}
	sort.Slice(ss, func(i, j int) bool { return ss[i].start < ss[j].start })

	var b strings.Builder
	last := 0
	for _, s := range ss {
		b.WriteString(text[last:s.start])
		b.WriteString(s.style.Apply(text[s.start:s.end]))
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}
