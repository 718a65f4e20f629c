package slideception

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/slideception/internal/logging"
	"github.com/aretw0/slideception/internal/presentation/graph"
	"github.com/aretw0/slideception/pkg/domain"
	"github.com/aretw0/slideception/pkg/runner"
)

// Command returns the cobra command that presents the deck.
func (d *Deck) Command() *cobra.Command {
	var (
		opts  runner.PresentOptions
		list  bool
		chart bool
		debug bool
	)

	cmd := &cobra.Command{
		Use:           d.cfg.Name,
		Short:         "Present the slide deck",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				d.logger = logging.ForDebug(true)
				d.processes = d.newProcesses()
			}
			if list {
				d.List(cmd.OutOrStdout())
				return nil
			}
			if chart {
				fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(d.Slides(), &graph.Overlay{Current: opts.Start}))
				return nil
			}
			return d.Present(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Start, "start", "s", 0, "Begin at slide N (1-based)")
	cmd.Flags().BoolVarP(&opts.Only, "only", "o", false, "Show a single slide and exit")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print the outline and exit")
	cmd.Flags().BoolVar(&chart, "graph", false, "Print the outline as a Mermaid flowchart and exit")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log to stderr")
	cmd.Flags().DurationVar(&d.cfg.MinDisplay, "min-display", d.cfg.MinDisplay, "Minimum time a slide with an action stays on screen")
	return cmd
}

// Execute parses args and presents the deck. It returns the process exit
// status: 0 when the deck finished, 1 otherwise.
func (d *Deck) Execute(ctx context.Context, args []string) int {
	cmd := d.Command()
	cmd.SetArgs(args)
	cmd.SetOut(d.out)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if !errors.Is(err, domain.ErrCancelled) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	d.logger.Debug("presentation ended with error", "error", err)
	return 1
}

// Main presents the deck with the process arguments and exits.
func (d *Deck) Main() {
	os.Exit(d.Execute(context.Background(), os.Args[1:]))
}
