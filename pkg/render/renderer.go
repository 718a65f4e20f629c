package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	bullet           = "  • "
	hrulePlaceholder = "\\hrulefill\n"
	hardBreak        = "\\newline\n"

	osc8Open         = "\x1b]8;;"
	osc8Close        = "\x1b]8;;\x1b\\"
	stringTerminator = "\x1b\\"
)

// Renderer turns markdown into ANSI-decorated terminal text.
// It holds no mutable state after construction and is safe for concurrent use.
type Renderer struct {
	width      int
	boxing     bool
	hyperlinks bool
	styles     Styles
	colorizer  Colorizer
	boxer      Boxer
	markdown   goldmark.Markdown
}

// New creates a Renderer. By default code blocks are boxed, links carry
// OSC 8 hyperlinks and headings are centered on DefaultWidth columns.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:      DefaultWidth,
		boxing:     true,
		hyperlinks: true,
		styles:     DefaultStyles(),
		colorizer:  NewChromaColorizer(),
		boxer:      NewLipglossBoxer(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Table),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Styles returns the style table in use.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Width returns the width used for centering.
func (r *Renderer) Width() int {
	return r.width
}

// Render parses markdown and renders the whole document.
func (r *Renderer) Render(markdown string) (string, error) {
	source := []byte(markdown)
	doc := r.markdown.Parser().Parse(text.NewReader(source))
	return r.RenderNode(doc, source)
}

// RenderNode renders an already parsed tree. source must be the buffer the tree was parsed from.
func (r *Renderer) RenderNode(n ast.Node, source []byte) (string, error) {
	return walker{Renderer: r, source: source}.render(n)
}

type walker struct {
	*Renderer
	source []byte
}

func (w walker) render(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.Heading:
		return w.heading(n)
	case *ast.Paragraph:
		return w.wrap(n, "", "\n\n")
	case *ast.TextBlock:
		return w.wrap(n, "", "\n")
	case *ast.Emphasis:
		if n.Level == 1 {
			return w.styled(n, w.styles.Emphasis)
		}
		return w.styled(n, w.styles.Strong)
	case *east.Strikethrough:
		return w.styled(n, w.styles.Strikethrough)
	case *ast.CodeSpan:
		return w.styles.CodeInline.Apply(HighlightText(w.codeSpan(n), w.styles)), nil
	case *ast.FencedCodeBlock:
		return w.RenderCodeBlock(string(n.Language(w.source)), w.lines(n))
	case *ast.CodeBlock:
		return w.RenderCodeBlock("", w.lines(n))
	case *ast.Blockquote:
		return w.styled(n, w.styles.Quote)
	case *ast.List:
		return w.wrap(n, "", "\n")
	case *ast.ListItem:
		inner, err := w.inner(n)
		if err != nil {
			return "", err
		}
		return bullet + strings.TrimRight(inner, "\n") + "\n", nil
	case *ast.Link:
		inner, err := w.inner(n)
		if err != nil {
			return "", err
		}
		return w.link(string(n.Destination), inner), nil
	case *ast.AutoLink:
		return w.styles.Link.Apply(string(n.URL(w.source))), nil
	case *ast.Image:
		return "[" + string(n.Destination) + "]", nil
	case *east.Table, *east.TableHeader, *east.TableRow, *east.TableCell:
		return w.inner(n)
	case *ast.ThematicBreak:
		return hrulePlaceholder, nil
	case *ast.Text:
		return HighlightText(w.text(n), w.styles), nil
	case *ast.String:
		return string(n.Value), nil
	case *ast.HTMLBlock:
		out := w.lines(n)
		if n.HasClosure() {
			out += string(n.ClosureLine.Value(w.source))
		}
		return out, nil
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(w.source))
		}
		return b.String(), nil
	default:
		// Document and any node kind without a dedicated rule.
		return w.inner(n)
	}
}

// inner renders the children of n. Adjacent text nodes are joined before
// highlighting so that patterns split by the parser still match.
func (w walker) inner(n ast.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; {
		if _, ok := c.(*ast.Text); ok {
			var run strings.Builder
			for ; c != nil; c = c.NextSibling() {
				t, ok := c.(*ast.Text)
				if !ok {
					break
				}
				run.WriteString(w.text(t))
			}
			b.WriteString(HighlightText(run.String(), w.styles))
			continue
		}
		out, err := w.render(c)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		c = c.NextSibling()
	}
	return b.String(), nil
}

func (w walker) wrap(n ast.Node, prefix, suffix string) (string, error) {
	inner, err := w.inner(n)
	if err != nil {
		return "", err
	}
	return prefix + inner + suffix, nil
}

func (w walker) styled(n ast.Node, s Style) (string, error) {
	inner, err := w.inner(n)
	if err != nil {
		return "", err
	}
	return s.Apply(inner), nil
}

func (w walker) heading(n *ast.Heading) (string, error) {
	inner, err := w.inner(n)
	if err != nil {
		return "", err
	}
	switch n.Level {
	case 1:
		return "\n" + w.styles.Heading1.Apply(center(inner, w.width)) + "\n\n", nil
	case 2:
		return w.styles.Heading2.Apply(inner) + "\n\n", nil
	default:
		return w.styles.Heading.Apply(inner) + "\n\n", nil
	}
}

// text returns the resolved content of a text node followed by its line break.
func (w walker) text(t *ast.Text) string {
	value := t.Segment.Value(w.source)
	if !t.IsRaw() {
		value = unescape(value)
	}
	out := string(value)
	switch {
	case t.HardLineBreak():
		out += hardBreak
	case t.SoftLineBreak():
		out += "\n"
	}
	return out
}

// unescape resolves backslash escapes and character references.
func unescape(value []byte) []byte {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	return util.ResolveEntityNames(value)
}

func (w walker) codeSpan(n *ast.CodeSpan) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(w.source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

func (w walker) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.source))
	}
	return b.String()
}

func (w walker) link(target, label string) string {
	if w.hyperlinks {
		label = fmt.Sprintf("%s%s%s%s%s", osc8Open, target, stringTerminator, label, osc8Close)
	}
	return w.styles.Link.Apply(label)
}

// center pads s on both sides to width display columns, extra space going right.
// Escape sequences in s do not count towards its width.
func center(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
