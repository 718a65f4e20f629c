package render

// DefaultWidth is used when no terminal width is known.
const DefaultWidth = 80

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the width used to center top-level headings.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithBoxing enables or disables borders around code blocks.
// A `.nobox` tag suffix disables the border regardless.
func WithBoxing(enabled bool) Option {
	return func(r *Renderer) {
		r.boxing = enabled
	}
}

// WithHyperlinks enables or disables OSC 8 hyperlinks on links.
func WithHyperlinks(enabled bool) Option {
	return func(r *Renderer) {
		r.hyperlinks = enabled
	}
}

// WithStyles replaces the whole style table.
func WithStyles(styles Styles) Option {
	return func(r *Renderer) {
		r.styles = styles
	}
}

// WithStrikethrough selects the strikethrough rendering.
func WithStrikethrough(s StrikeStyle) Option {
	return func(r *Renderer) {
		r.styles.Strikethrough = StrikeStyleFor(s)
	}
}

// WithColorizer replaces the generic syntax colorizer.
func WithColorizer(c Colorizer) Option {
	return func(r *Renderer) {
		r.colorizer = c
	}
}

// WithBoxer replaces the border drawing strategy.
func WithBoxer(b Boxer) Option {
	return func(r *Renderer) {
		r.boxer = b
	}
}
