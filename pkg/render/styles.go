package render

import (
	"strings"

	"github.com/muesli/termenv"
)

// Style is a pair of escape sequences that open and close one attribute set.
type Style struct {
	Open  string
	Close string
}

// Apply wraps text in the style.
func (s Style) Apply(text string) string {
	return s.Open + text + s.Close
}

// StrikeStyle selects how struck-through text is drawn.
type StrikeStyle string

const (
	// StrikeDim draws struck text in dark grey.
	StrikeDim StrikeStyle = "dim"
	// StrikeLine uses the SGR crossed-out attribute.
	StrikeLine StrikeStyle = "strike"
)

// Styles groups every escape sequence used by the renderer and highlighters.
type Styles struct {
	Heading1      Style
	Heading2      Style
	Heading       Style // levels 3 and deeper
	Emphasis      Style
	Strong        Style
	Strikethrough Style
	CodeInline    Style
	Link          Style
	Quote         Style

	// Chrome is used for the slide header and the waiting prompt.
	Chrome Style

	// Raw text highlighting.
	Manpage     Style
	Placeholder Style

	// systemd unit highlighting.
	Section Style
	Option  Style
	Escape  Style
	Prefix  Style
	Keyword Style
	Time    Style
	Comment Style
}

const (
	resetBold      = "22"
	resetItalic    = "23"
	resetUnderline = "24"
	resetCrossOut  = "29"
	resetFg        = "39"

	fgBlack       = "30"
	fgYellow      = "33"
	fgBlue        = "34"
	fgMagenta     = "35"
	fgBrightBlack = "90"
)

func sgr(codes ...string) string {
	return termenv.CSI + strings.Join(codes, ";") + "m"
}

// truecolor builds a 24-bit foreground style closed by a full reset.
func truecolor(hex string, attrs ...string) Style {
	codes := append([]string{termenv.TrueColor.Color(hex).Sequence(false)}, attrs...)
	return Style{Open: sgr(codes...), Close: sgr(termenv.ResetSeq)}
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Heading1:      Style{Open: sgr(termenv.BoldSeq), Close: sgr(resetBold)},
		Heading2:      Style{Open: sgr(fgMagenta, termenv.BoldSeq), Close: sgr(resetFg, resetBold)},
		Heading:       Style{Open: sgr(termenv.BoldSeq), Close: sgr(resetBold)},
		Emphasis:      Style{Open: sgr(termenv.ItalicSeq), Close: sgr(resetItalic)},
		Strong:        Style{Open: sgr(termenv.BoldSeq), Close: sgr(resetBold)},
		Strikethrough: StrikeStyleFor(StrikeDim),
		CodeInline:    Style{Open: sgr(fgYellow), Close: sgr(resetFg)},
		Link:          Style{Open: sgr(fgBlue, termenv.UnderlineSeq), Close: sgr(resetFg, resetUnderline)},
		Quote:         Style{Open: sgr(fgBrightBlack), Close: sgr(resetFg)},
		Chrome:        Style{Open: sgr(fgBlack), Close: sgr(termenv.ResetSeq)},

		Manpage:     truecolor("#6050b0", termenv.BoldSeq, termenv.ItalicSeq),
		Placeholder: truecolor("#c8742a", termenv.ItalicSeq),

		Section: truecolor("#4e9a06", termenv.BoldSeq),
		Option:  truecolor("#069e98"),
		Escape:  truecolor("#c8742a", termenv.ItalicSeq),
		Prefix:  truecolor("#ef4529", termenv.BoldSeq),
		Keyword: truecolor("#c4a800"),
		Time:    truecolor("#3c74c0"),
		Comment: truecolor("#52595c", termenv.ItalicSeq),
	}
}

// StrikeStyleFor returns the strikethrough style for s. Unknown values fall back to StrikeDim.
func StrikeStyleFor(s StrikeStyle) Style {
	if s == StrikeLine {
		return Style{Open: sgr(termenv.CrossOutSeq), Close: sgr(resetCrossOut)}
	}
	return Style{Open: sgr(fgBlack), Close: sgr(resetFg)}
}
