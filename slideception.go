package slideception

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/slideception/internal/config"
	"github.com/aretw0/slideception/internal/logging"
	"github.com/aretw0/slideception/internal/terminal"
	"github.com/aretw0/slideception/pkg/adapters/process"
	"github.com/aretw0/slideception/pkg/domain"
	"github.com/aretw0/slideception/pkg/registry"
	"github.com/aretw0/slideception/pkg/render"
	"github.com/aretw0/slideception/pkg/runner"
)

// Deck is the high-level entry point: a registry of slides, the renderer that
// produces their content and the settings of the presentation.
type Deck struct {
	cfg        config.Config
	renderOpts []render.Option
	renderer   *render.Renderer
	registry   *registry.Registry
	docs       registry.DocSource
	prompter   runner.Prompter
	in         *os.File
	out        io.Writer
	logger     *slog.Logger
	processes  *process.Runner
	err        error
}

// Option defines a functional option for configuring the Deck.
// Options apply in order, so WithConfigFile should come first when explicit
// options are meant to override the file.
type Option func(*Deck)

// WithConfigFile loads a YAML configuration. A missing file is ignored.
func WithConfigFile(path string) Option {
	return func(d *Deck) {
		cfg, err := config.Load(path)
		if err != nil {
			d.err = err
			return
		}
		d.cfg = cfg
	}
}

// WithName sets the program label of the slide header.
func WithName(name string) Option {
	return func(d *Deck) {
		d.cfg.Name = name
	}
}

// WithWidth fixes the terminal width instead of querying it.
func WithWidth(width int) Option {
	return func(d *Deck) {
		d.cfg.Width = width
	}
}

// WithBoxing toggles borders around code blocks.
func WithBoxing(enabled bool) Option {
	return func(d *Deck) {
		d.cfg.Boxing = &enabled
	}
}

// WithStrikethrough selects how struck-through text is drawn.
func WithStrikethrough(s render.StrikeStyle) Option {
	return func(d *Deck) {
		d.cfg.Strikethrough = string(s)
	}
}

// WithHyperlinks toggles OSC 8 hyperlinks.
func WithHyperlinks(enabled bool) Option {
	return func(d *Deck) {
		d.cfg.Hyperlinks = &enabled
	}
}

// WithMinDisplay sets the minimum time a slide with an action stays on screen.
func WithMinDisplay(dur time.Duration) Option {
	return func(d *Deck) {
		d.cfg.MinDisplay = dur
	}
}

// WithRenderOptions passes extra options to the renderer, e.g. a custom colorizer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(d *Deck) {
		d.renderOpts = append(d.renderOpts, opts...)
	}
}

// WithDocSource replaces the source of slide documentation.
// The default reads the Go sources the binary was built from.
func WithDocSource(src registry.DocSource) Option {
	return func(d *Deck) {
		d.docs = src
	}
}

// WithPrompter replaces the input wait between slides.
func WithPrompter(p runner.Prompter) Option {
	return func(d *Deck) {
		d.prompter = p
	}
}

// WithInput sets the terminal the presenter types into.
func WithInput(f *os.File) Option {
	return func(d *Deck) {
		d.in = f
	}
}

// WithOutput sets where the deck is drawn.
func WithOutput(w io.Writer) Option {
	return func(d *Deck) {
		d.out = w
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deck) {
		d.logger = logger
	}
}

// New creates a deck. The terminal width is queried here, once.
func New(opts ...Option) (*Deck, error) {
	d := &Deck{
		cfg:      config.Default(),
		registry: registry.NewRegistry(),
		docs:     registry.NewSourceDocs(),
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.err != nil {
		return nil, d.err
	}
	if err := d.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck configuration: %w", err)
	}

	if d.cfg.Name == "" {
		d.cfg.Name = filepath.Base(os.Args[0])
	}
	if d.cfg.Width == 0 {
		d.cfg.Width = terminal.Width(os.Stdout)
	}

	renderOpts := []render.Option{
		render.WithWidth(d.cfg.Width),
		render.WithStrikethrough(render.StrikeStyle(d.cfg.Strikethrough)),
	}
	if d.cfg.Boxing != nil {
		renderOpts = append(renderOpts, render.WithBoxing(*d.cfg.Boxing))
	}
	if d.cfg.Hyperlinks != nil {
		renderOpts = append(renderOpts, render.WithHyperlinks(*d.cfg.Hyperlinks))
	}
	d.renderer = render.New(append(renderOpts, d.renderOpts...)...)

	d.processes = d.newProcesses()
	return d, nil
}

func (d *Deck) newProcesses() *process.Runner {
	return process.NewRunner(
		process.WithShell(d.cfg.Shell),
		process.WithPython(d.cfg.Python),
		process.WithIPython(d.cfg.IPython),
		process.WithLogger(d.logger),
	)
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Deck {
	d, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the program label of the slide header.
func (d *Deck) Name() string {
	return d.cfg.Name
}

// Slides returns the registered slides in presentation order.
func (d *Deck) Slides() []domain.Slide {
	return d.registry.Slides()
}

// SlideOption configures a single registration.
type SlideOption func(*slideOptions)

type slideOptions struct {
	name string
	doc  string
	noop bool
}

// NoOp marks the slide body as doing nothing observable.
// The slide is still confirmed by the presenter but its action is skipped and
// its display time is not padded.
func NoOp() SlideOption {
	return func(o *slideOptions) {
		o.noop = true
	}
}

// WithDoc supplies the slide markdown instead of reading the doc comment.
func WithDoc(doc string) SlideOption {
	return func(o *slideOptions) {
		o.doc = doc
	}
}

// WithSlideName overrides the name shown in the header.
func WithSlideName(name string) SlideOption {
	return func(o *slideOptions) {
		o.name = name
	}
}

// Register appends a slide built from action and its documentation. The doc
// becomes a level-one heading followed by the rest of the markdown, rendered
// immediately. The action is returned unchanged.
func (d *Deck) Register(action domain.Action, opts ...SlideOption) (domain.Action, error) {
	o := slideOptions{name: registry.FuncName(action)}
	for _, opt := range opts {
		opt(&o)
	}

	doc := o.doc
	if doc == "" {
		var err error
		if doc, err = d.docs.Doc(action); err != nil {
			return action, fmt.Errorf("slide %s: %w", o.name, err)
		}
	}
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return action, fmt.Errorf("slide %s: %w", o.name, domain.ErrMissingDocumentation)
	}

	content, err := d.renderer.Render("# " + doc)
	if err != nil {
		return action, fmt.Errorf("slide %s: %w", o.name, err)
	}

	n := d.registry.Add(domain.Slide{
		Name:    o.name,
		Content: content,
		Action:  action,
		NoOp:    o.noop || action == nil,
	})
	d.logger.Debug("slide registered", "slide", n, "name", o.name, "noop", o.noop)
	return action, nil
}

// Slide is like Register but panics on error. It suits package-level
// registration, where a broken slide should stop the program before the talk.
func (d *Deck) Slide(action domain.Action, opts ...SlideOption) domain.Action {
	action, err := d.Register(action, opts...)
	if err != nil {
		panic(err)
	}
	return action
}

// Present runs the deck in the terminal.
func (d *Deck) Present(ctx context.Context, opts runner.PresentOptions) error {
	prompter := d.prompter
	if prompter == nil && !opts.Only {
		p, err := runner.NewPrompter(d.in, d.out)
		if err != nil {
			return err
		}
		if c, ok := p.(io.Closer); ok {
			defer c.Close()
		}
		prompter = p
	}

	r := runner.NewRunner(
		runner.WithOutput(d.out),
		runner.WithPrompter(prompter),
		runner.WithLogger(d.logger),
		runner.WithName(d.cfg.Name),
		runner.WithWidth(d.cfg.Width),
		runner.WithMinDisplay(d.cfg.MinDisplay),
		runner.WithStyles(d.renderer.Styles()),
	)
	err := r.Present(ctx, d.registry.Slides(), opts)
	d.logger.Debug("presentation finished", "state", r.State().String())
	return err
}

// List writes the outline of the deck.
func (d *Deck) List(w io.Writer) {
	for i, s := range d.registry.Slides() {
		marker := ""
		if s.NoOp {
			marker = " (no-op)"
		}
		fmt.Fprintf(w, "%3d  %s%s\n", i+1, s.Name, marker)
	}
}
