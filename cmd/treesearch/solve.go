package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treesearch/internal/app"
	"github.com/katalvlaran/treesearch/internal/render"
	"github.com/katalvlaran/treesearch/metrics"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [config.yaml]",
		Short: "Solve a problem and print the solution path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd, args)
			if err != nil {
				return err
			}
			withMetrics, _ := cmd.Flags().GetBool("metrics")

			var opts []app.Option
			reg := prometheus.NewRegistry()
			if withMetrics {
				c, err := metrics.NewCollector(reg)
				if err != nil {
					return err
				}
				opts = append(opts, app.WithObserver(c))
			}

			rep, err := app.Run(cmd.Context(), cfg, opts...)
			if rep != nil {
				render.New(cmd.OutOrStdout()).Report(rep)
			}
			if err != nil {
				return err
			}
			if withMetrics {
				fmt.Fprintln(cmd.OutOrStdout())
				return metrics.WriteText(cmd.OutOrStdout(), reg)
			}

			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("metrics", false, "Print Prometheus metrics for the run")

	return cmd
}
