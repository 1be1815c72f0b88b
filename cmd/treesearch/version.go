package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treesearch"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of treesearch",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treesearch version %s\n", treesearch.Version)
		},
	}
}
