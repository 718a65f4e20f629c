package render

import "regexp"

var (
	// manpageRE matches manual page references such as systemd.unit(5).
	manpageRE = regexp.MustCompile(`[\w.-]+\(\d\)`)
	// placeholderRE matches brace placeholders such as {name}.
	placeholderRE = regexp.MustCompile(`\{\w+\}`)
)

// HighlightText colors manual page references and placeholders in plain text.
// Manual page references take precedence when both patterns overlap.
func HighlightText(text string, st Styles) string {
	var ss spans
	ss = ss.addAll(manpageRE, text, st.Manpage)
	ss = ss.addAll(placeholderRE, text, st.Placeholder)
	return ss.apply(text)
}
