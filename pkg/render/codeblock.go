package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/slideception/pkg/domain"
)

// NoBoxSuffix on a code block tag disables the border for that block.
const NoBoxSuffix = ".nobox"

// Colorizer highlights source code for a named language.
// It must fail with domain.ErrUnrecognizedLanguage for unknown names.
type Colorizer interface {
	Colorize(code, language string) (string, error)
}

// Boxer draws a border around (possibly colored) multi-line text.
type Boxer interface {
	Box(text string) string
}

// codeStyle maps token classes to colors for generic syntax highlighting.
var codeStyle = chroma.MustNewStyle("slideception", chroma.StyleEntries{
	chroma.Comment:               "#6b6d68",
	chroma.CommentHashbang:       "italic #c8742a",
	chroma.Keyword:               "bold #c81f1f",
	chroma.KeywordConstant:       "nobold #06989a",
	chroma.NameDecorator:         "#4e9a06",
	chroma.NameFunction:          "#4e9a06",
	chroma.NameVariable:          "#4e9a06",
	chroma.LiteralNumber:         "#386cb0",
	chroma.OperatorWord:          "#c81f1f",
	chroma.LiteralString:         "#c4a800",
	chroma.LiteralStringInterpol: "italic #c8742a",
	chroma.LiteralStringEscape:   "italic #c81f1f",
})

// ChromaColorizer renders code with chroma's 24-bit terminal formatter.
type ChromaColorizer struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewChromaColorizer returns a colorizer using the built-in code style.
func NewChromaColorizer() *ChromaColorizer {
	return &ChromaColorizer{
		style:     codeStyle,
		formatter: formatters.TTY16m,
	}
}

// Colorize highlights code. Unknown languages are an error, never a plain fallback.
func (c *ChromaColorizer) Colorize(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", &domain.LanguageError{Language: language}
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", language, err)
	}

	var out strings.Builder
	if err := c.formatter.Format(&out, c.style, iterator); err != nil {
		return "", fmt.Errorf("format %s: %w", language, err)
	}
	return out.String(), nil
}

// doubleSingleBorder has double horizontal and single vertical lines.
var doubleSingleBorder = lipgloss.Border{
	Top:         "═",
	Bottom:      "═",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╒",
	TopRight:    "╕",
	BottomLeft:  "╘",
	BottomRight: "╛",
}

// LipglossBoxer draws a double/single border with no padding.
type LipglossBoxer struct {
	style lipgloss.Style
}

// NewLipglossBoxer returns the default Boxer.
func NewLipglossBoxer() LipglossBoxer {
	return LipglossBoxer{
		style: lipgloss.NewStyle().Border(doubleSingleBorder).Padding(0),
	}
}

func (b LipglossBoxer) Box(text string) string {
	return b.style.Render(text)
}

// RenderCodeBlock highlights and optionally boxes one code block.
// The result always ends with exactly one newline.
func (r *Renderer) RenderCodeBlock(language, code string) (string, error) {
	box := r.boxing
	if strings.HasSuffix(language, NoBoxSuffix) {
		box = false
		language = strings.TrimSuffix(language, NoBoxSuffix)
	}

	code = strings.TrimRight(code, "\n")
	switch {
	case language == SystemdLanguage:
		code = HighlightSystemd(code, r.styles)
	case language != "":
		colored, err := r.colorizer.Colorize(code, language)
		if err != nil {
			return "", err
		}
		code = strings.TrimRight(colored, "\n")
	}

	if !box {
		return code + "\n", nil
	}
	return strings.TrimLeft(r.boxer.Box(code), "\n") + "\n", nil
}
