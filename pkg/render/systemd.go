package render

import (
	"regexp"
	"strings"
)

// SystemdLanguage is the code block tag handled by HighlightSystemd.
const SystemdLanguage = "systemd"

var (
	specifierRE = regexp.MustCompile(`%\w`)
	// !! must be tried before !.
	prefixRE = regexp.MustCompile(`^(?:!!|[@\-:+!])`)
	timeRE   = regexp.MustCompile(`^\d+[smhdwMy]$`)
)

var systemdKeywords = map[string]bool{
	"minutely": true,
	"hourly":   true,
	"daily":    true,
	"oneshot":  true,
	"exec":     true,
	"notify":   true,
}

// HighlightSystemd colors a systemd unit file line by line.
// Lines that are neither sections, comments nor option assignments are left untouched.
func HighlightSystemd(code string, st Styles) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		switch {
		case line == "":
		case strings.HasPrefix(line, "["):
			lines[i] = st.Section.Apply(line)
		case strings.HasPrefix(line, "#"):
			lines[i] = st.Comment.Apply(line)
		default:
			option, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			lines[i] = st.Option.Apply(option+"=") + highlightValue(value, st)
		}
	}
	return strings.Join(lines, "\n")
}

// highlightValue matches every rule against the raw value, then substitutes once.
func highlightValue(value string, st Styles) string {
	var ss spans
	ss = ss.addAll(specifierRE, value, st.Escape)
	if loc := prefixRE.FindStringIndex(value); loc != nil {
		ss = ss.add(loc[0], loc[1], st.Prefix)
	}
	if timeRE.MatchString(value) {
		ss = ss.add(0, len(value), st.Time)
	}
	if systemdKeywords[value] {
		ss = ss.add(0, len(value), st.Keyword)
	}
	return ss.apply(value)
}
