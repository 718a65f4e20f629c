package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/slideception/internal/cli"
	"github.com/aretw0/slideception/internal/logging"
	"github.com/aretw0/slideception/internal/terminal"
	"github.com/aretw0/slideception/pkg/render"
)

var renderOpts struct {
	width   int
	noBox   bool
	noLinks bool
	strike  string
	watch   bool
	debug   bool
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render markdown as a slide would show it",
	Long: `Render markdown as a slide would show it. Without a file, stdin is read.
With --watch the file is rendered again on every change until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width := renderOpts.width
		if width == 0 {
			width = terminal.Width(os.Stdout)
		}
		opts := []render.Option{
			render.WithWidth(width),
			render.WithBoxing(!renderOpts.noBox),
			render.WithHyperlinks(!renderOpts.noLinks),
			render.WithStrikethrough(render.StrikeStyle(renderOpts.strike)),
		}

		if len(args) == 1 && args[0] != "-" {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			sigCtx := cli.NewSignalContext(ctx)
			defer sigCtx.Cancel()

			return cli.Preview(sigCtx, cli.PreviewOptions{
				Path:   args[0],
				Watch:  renderOpts.watch,
				Output: cmd.OutOrStdout(),
				Logger: logging.ForDebug(renderOpts.debug),
				Render: opts,
			})
		}
		if renderOpts.watch {
			return fmt.Errorf("--watch needs a file")
		}

		markdown, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		out, err := render.New(opts...).Render(markdown)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVarP(&renderOpts.width, "width", "w", 0, "Terminal width (0 queries the terminal)")
	renderCmd.Flags().BoolVar(&renderOpts.noBox, "no-box", false, "Do not draw borders around code blocks")
	renderCmd.Flags().BoolVar(&renderOpts.noLinks, "no-links", false, "Do not emit OSC 8 hyperlinks")
	renderCmd.Flags().StringVar(&renderOpts.strike, "strike", string(render.StrikeDim), "Strikethrough style: dim or strike")
	renderCmd.Flags().BoolVar(&renderOpts.watch, "watch", false, "Render again whenever the file changes")
	renderCmd.Flags().BoolVar(&renderOpts.debug, "debug", false, "Log to stderr")
	rootCmd.AddCommand(renderCmd)
}
