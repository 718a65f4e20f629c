package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/slideception/pkg/render"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Highlight a systemd unit file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.HighlightSystemd(unit, render.DefaultStyles()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}
