package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treesearch/config"
	"github.com/katalvlaran/treesearch/internal/logging"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "treesearch",
		Short:         "Run uninformed tree search on mazes and map coloring problems",
		Long:          `treesearch solves grid mazes and map coloring problems with depth-first or breadth-first search and shows how the search tree grew.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error (overrides the config file)")
	root.PersistentFlags().String("log-format", "text", "Log format: text or json (overrides the config file)")

	root.AddCommand(newSolveCmd(), newTraceCmd(), newPresetsCmd(), newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// addRunFlags registers the flags shared by solve and trace.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", "", "Use an embedded configuration (see 'treesearch presets')")
	cmd.Flags().StringP("algorithm", "a", "", "Override the algorithm: dfs or bfs")
	cmd.Flags().Int("max-depth", 0, "Override the depth limit (0 = unlimited)")
}

// loadRunConfig reads the config named by the positional argument or by
// --preset, applies flag overrides and stores a matching logger in the
// command context.
func loadRunConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	preset, _ := cmd.Flags().GetString("preset")

	var (
		cfg *config.Config
		err error
	)
	switch {
	case len(args) > 0 && preset != "":
		return nil, errors.New("give either a config file or --preset, not both")
	case len(args) > 0:
		cfg, err = config.Load(args[0])
	case preset != "":
		cfg, err = config.Preset(preset)
	default:
		return nil, errors.New("a config file or --preset is required")
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("algorithm") {
		cfg.Algorithm, _ = cmd.Flags().GetString("algorithm")
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	return cfg, nil
}
