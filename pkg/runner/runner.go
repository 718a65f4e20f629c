package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/slideception/internal/presentation/tui"
	"github.com/aretw0/slideception/internal/terminal"
	"github.com/aretw0/slideception/pkg/domain"
	"github.com/aretw0/slideception/pkg/render"
)

// PresentOptions selects where a presentation starts.
type PresentOptions struct {
	// Start is the 1-based slide to begin with. Zero means the first slide.
	Start int

	// Only displays the start slide and returns without waiting, running its
	// action or printing banners.
	Only bool
}

// Runner drives a deck of slides through the terminal.
type Runner struct {
	out        io.Writer
	prompter   Prompter
	logger     *slog.Logger
	name       string
	width      int
	minDisplay time.Duration
	styles     render.Styles
	now        func() time.Time
	sleep      Sleeper
	signals    bool

	mu    sync.Mutex
	state domain.State
}

// NewRunner creates a runner writing to stdout and reading from stdin.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:        os.Stdout,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		name:       filepath.Base(os.Args[0]),
		width:      terminal.DefaultWidth,
		minDisplay: DefaultMinDisplay,
		styles:     render.DefaultStyles(),
		now:        time.Now,
		sleep:      sleepContext,
		signals:    true,
		state:      domain.State{Status: domain.StatusNotStarted},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.prompter == nil {
		r.prompter = NewTextPrompter(os.Stdin, r.out)
	}
	return r
}

// State returns a snapshot of the presentation state.
func (r *Runner) State() domain.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) transition(status domain.Status, current int) {
	r.mu.Lock()
	r.state.Status = status
	r.state.Current = current
	r.mu.Unlock()
	r.logger.Debug("state changed", "status", status, "slide", current)
}

// Present shows slides in order. It returns nil when the deck finished,
// an error wrapping domain.ErrCancelled when the presenter interrupted a wait,
// and a *domain.ActionError when an action failed.
func (r *Runner) Present(ctx context.Context, slides []domain.Slide, opts PresentOptions) error {
	total := len(slides)
	r.mu.Lock()
	r.state = domain.State{Status: domain.StatusNotStarted, Total: total}
	r.mu.Unlock()

	if total == 0 {
		r.transition(domain.StatusFinished, 0)
		return nil
	}

	start := opts.Start
	if start == 0 {
		start = 1
	}
	if start < 1 || start > total {
		return fmt.Errorf("start at %d of %d: %w", start, total, domain.ErrSlideOutOfRange)
	}

	if opts.Only {
		r.display(slides[start-1], start, total)
		r.transition(domain.StatusFinished, start)
		return nil
	}

	signals := newSignalManager(ctx, r.signals)
	defer signals.Stop()

	fmt.Fprint(r.out, terminal.CursorBlock)
	tui.PrintBanner(r.out, tui.BannerStart)

	for n := start; n <= total; n++ {
		if err := r.step(ctx, signals, slides[n-1], n, total); err != nil {
			return err
		}
	}

	r.transition(domain.StatusFinished, total)
	tui.PrintBanner(r.out, tui.BannerEnd)
	return nil
}

func (r *Runner) step(ctx context.Context, signals *SignalManager, slide domain.Slide, n, total int) error {
	shown := r.display(slide, n, total)

	glyph := "…"
	if n == total {
		glyph = "»"
	}
	result, err := r.wait(signals.Context(), glyph)
	if err != nil {
		// Some terminals report the input error just before the interrupt.
		signals.CheckRace()
		if !signals.Interrupted() {
			r.transition(domain.StatusFailed, n)
			tui.PrintBanner(r.out, tui.BannerFail)
			return err
		}
		result = domain.Cancelled
	}
	r.logger.Debug("wait finished", "slide", n, "result", result)

	if result == domain.Cancelled {
		r.transition(domain.StatusCancelled, n)
		fmt.Fprintln(r.out)
		tui.PrintBanner(r.out, tui.BannerCancel)
		return fmt.Errorf("slide %d: %w", n, domain.ErrCancelled)
	}

	if slide.NoOp || slide.Action == nil {
		return nil
	}

	began := r.now()
	err = runAction(signals.Context(), slide)
	if signals.Interrupted() {
		if err == nil {
			err = context.Canceled
		} else {
			err = fmt.Errorf("%w: %w", context.Canceled, err)
		}
	}
	if err != nil {
		r.transition(domain.StatusFailed, n)
		tui.PrintBanner(r.out, tui.BannerFail)
		return &domain.ActionError{Slide: slide.Name, Index: n, Err: err}
	}
	r.logger.Debug("action finished", "slide", n, "duration", r.now().Sub(began))

	if elapsed := r.now().Sub(shown); elapsed < r.minDisplay {
		r.logger.Debug("padding display time", "slide", n, "remaining", r.minDisplay-elapsed)
		r.sleep(ctx, r.minDisplay-elapsed)
	}
	return nil
}

// display clears the screen and prints the header and content of slide n.
// It returns the time the slide appeared.
func (r *Runner) display(slide domain.Slide, n, total int) time.Time {
	r.transition(domain.StatusDisplaying, n)
	r.logger.Debug("displaying slide", "slide", n, "total", total, "name", slide.Name)

	fmt.Fprint(r.out, terminal.ClearScreen)
	fmt.Fprintln(r.out, r.styles.Chrome.Apply(Header(r.name, slide.Name, n, total, r.width)))
	fmt.Fprint(r.out, slide.Content)
	return r.now()
}

// wait shows the prompt glyph with a bar cursor and restores the block cursor
// however the wait ends.
func (r *Runner) wait(ctx context.Context, glyph string) (domain.WaitResult, error) {
	fmt.Fprint(r.out, terminal.CursorBar)
	defer fmt.Fprint(r.out, terminal.CursorBlock)

	return r.prompter.Wait(ctx, r.styles.Chrome.Apply(glyph))
}

// runAction runs the slide's action, converting a panic into an error.
func runAction(ctx context.Context, slide domain.Slide) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return slide.Run(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
