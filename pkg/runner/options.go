package runner

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/slideception/pkg/render"
)

// DefaultMinDisplay is the minimum time a slide with an action stays on screen.
const DefaultMinDisplay = 500 * time.Millisecond

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOutput sets where slides, banners and escape sequences are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithPrompter configures how the runner waits between slides.
func WithPrompter(p Prompter) Option {
	return func(r *Runner) {
		r.prompter = p
	}
}

// WithName sets the program label shown in the header.
func WithName(name string) Option {
	return func(r *Runner) {
		r.name = name
	}
}

// WithWidth sets the terminal width used to lay out the header.
func WithWidth(width int) Option {
	return func(r *Runner) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithMinDisplay sets the minimum display time of slides with an action.
func WithMinDisplay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.minDisplay = d
		}
	}
}

// WithStyles sets the style table used for the header and prompt.
func WithStyles(styles render.Styles) Option {
	return func(r *Runner) {
		r.styles = styles
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithSleeper replaces the minimum display wait, mainly for tests.
func WithSleeper(sleep Sleeper) Option {
	return func(r *Runner) {
		r.sleep = sleep
	}
}

// WithSignals toggles interrupt handling. When disabled, only the caller's
// context cancels a wait.
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.signals = enabled
	}
}
