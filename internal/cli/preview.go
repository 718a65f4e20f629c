// Package cli holds the logic behind the slideception command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/slideception/internal/terminal"
	"github.com/aretw0/slideception/pkg/render"
)

// PreviewOptions configures a markdown preview.
type PreviewOptions struct {
	Path   string
	Watch  bool
	Output io.Writer
	Logger *slog.Logger
	Render []render.Option
}

// Preview renders the file at opts.Path once, or on every change when
// opts.Watch is set. Watching stops when ctx is done.
func Preview(ctx context.Context, opts PreviewOptions) error {
	r := render.New(opts.Render...)
	show := func() error {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.Path, err)
		}
		out, err := r.Render(string(data))
		if err != nil {
			return err
		}
		if opts.Watch {
			fmt.Fprint(opts.Output, terminal.ClearScreen)
		}
		fmt.Fprint(opts.Output, out)
		return nil
	}

	if !opts.Watch {
		return show()
	}

	// A broken slide while editing is reported, not fatal.
	report := func() {
		if err := show(); err != nil {
			fmt.Fprintf(opts.Output, ">>> %v\n", err)
		}
	}
	report()
	return WatchFile(ctx, opts.Path, opts.Logger, report)
}
