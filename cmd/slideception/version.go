package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/slideception"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of slideception",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "slideception version %s\n", slideception.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
