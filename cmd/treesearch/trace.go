package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treesearch/internal/app"
	"github.com/katalvlaran/treesearch/internal/render"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [config.yaml]",
		Short: "Print every search checkpoint, then the final picture",
		Long: `trace lists the checkpoints the search went through (root, root-checked,
pop, goal, exhausted) with the expanding node and frontier size at each one.
For mazes it then draws which cells ended up expanded, in the frontier or
still in memory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd, args)
			if err != nil {
				return err
			}
			frames, _ := cmd.Flags().GetInt("frames")

			rep, err := app.Run(cmd.Context(), cfg, app.WithMaxFrames(frames))
			if rep == nil {
				return err
			}
			r := render.New(cmd.OutOrStdout())
			r.Frames(rep.Frames)
			fmt.Fprintln(cmd.OutOrStdout())
			r.Report(rep)
			if rep.Maze != nil {
				r.Legend()
			}

			return err
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Int("frames", 0, "Keep only the last N checkpoints (0 = all)")

	return cmd
}
