package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/treesearch/bfs"
	"github.com/katalvlaran/treesearch/config"
	"github.com/katalvlaran/treesearch/dfs"
	"github.com/katalvlaran/treesearch/gridmaze"
	"github.com/katalvlaran/treesearch/internal/logging"
	"github.com/katalvlaran/treesearch/mapcoloring"
	"github.com/katalvlaran/treesearch/search"
	"github.com/katalvlaran/treesearch/trace"
)

// Report summarizes one run.
type Report struct {
	Kind      string
	Algorithm string
	Status    search.Status
	Found     bool
	// Actions and States describe the solution path, root first.
	// States has one more entry than Actions.
	Actions []string
	States  []string
	Stats   search.Stats
	Frames  []trace.Frame
	Counts  map[trace.Category]int

	// Maze is set for gridmaze runs.
	Maze *MazeView
	// Coloring is the goal assignment of a successful mapcoloring run.
	Coloring map[string]string
}

// MazeView is what a terminal renderer needs to draw a maze run.
type MazeView struct {
	Rows  []string
	Cells map[gridmaze.Position]trace.Category
	Path  map[gridmaze.Position]bool
}

// Option configures Run.
type Option func(*options)

type options struct {
	observers []search.Observer
	maxFrames int
}

// WithObserver attaches obs to the run after the built-in trace recorder.
func WithObserver(obs search.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithMaxFrames bounds the number of recorded trace frames.
func WithMaxFrames(n int) Option {
	return func(o *options) {
		o.maxFrames = n
	}
}

// Run executes the configured search. On cancellation or observer failure it
// returns the partial report together with the error.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	log := logging.FromContext(ctx).With("kind", cfg.Problem.Kind, "algorithm", cfg.Algorithm)
	rec := trace.NewRecorder(trace.WithMaxFrames(o.maxFrames))

	var (
		rep *Report
		err error
	)
	switch cfg.Problem.Kind {
	case config.KindGridMaze:
		rep, err = runMaze(ctx, cfg, log, rec, o)
	case config.KindMapColoring:
		rep, err = runColoring(ctx, cfg, log, rec, o)
	}
	if rep != nil {
		log.Info("search finished",
			"status", rep.Status.String(),
			"depth", len(rep.Actions),
			"generated", rep.Stats.Generated,
			"expanded", rep.Stats.Expanded,
		)
	}

	return rep, err
}

func runMaze(ctx context.Context, cfg *config.Config, log *slog.Logger, rec *trace.Recorder, o options) (*Report, error) {
	var prm gridmaze.Params
	if err := cfg.DecodeParams(&prm); err != nil {
		return nil, err
	}
	m, err := gridmaze.FromParams(prm)
	if err != nil {
		return nil, fmt.Errorf("app: build maze: %w", err)
	}
	if !m.Solvable() {
		log.Warn("goal is unreachable from start")
	}

	res, rep, err := solve[gridmaze.Position](ctx, cfg, log, m, gridmaze.Position.String, rec, o)
	if res == nil {
		return nil, err
	}
	view := &MazeView{
		Rows:  m.Rows(),
		Cells: gridmaze.Overlay(res.Tree, rec.Category),
	}
	if path, ok := res.Path(); ok {
		view.Path = gridmaze.OnPath(path)
	}
	rep.Maze = view

	return rep, err
}

func runColoring(ctx context.Context, cfg *config.Config, log *slog.Logger, rec *trace.Recorder, o options) (*Report, error) {
	var prm mapcoloring.Params
	if err := cfg.DecodeParams(&prm); err != nil {
		return nil, err
	}
	p, err := mapcoloring.FromParams(prm)
	if err != nil {
		return nil, fmt.Errorf("app: build map: %w", err)
	}

	res, rep, err := solve[mapcoloring.State](ctx, cfg, log, p, p.Format, rec, o)
	if res == nil {
		return nil, err
	}
	if n, ok := res.GoalNode(); ok {
		rep.Coloring = p.Assignment(n.State)
	}

	return rep, err
}

// solve runs the configured algorithm on p and renders path states with
// format. res is nil only when the run could not start.
func solve[S comparable](
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	p search.Problem[S],
	format func(S) string,
	rec *trace.Recorder,
	o options,
) (*search.Result[S], *Report, error) {
	observers := append([]search.Observer{rec}, o.observers...)

	var (
		res *search.Result[S]
		err error
	)
	switch cfg.Algorithm {
	case config.AlgorithmBFS:
		bopts := []bfs.Option{bfs.WithContext(ctx), bfs.WithLogger(log)}
		for _, obs := range observers {
			bopts = append(bopts, bfs.WithObserver(obs))
		}
		if cfg.MaxDepth > 0 {
			bopts = append(bopts, bfs.WithMaxDepth(cfg.MaxDepth))
		}
		res, err = bfs.BFS[S](p, bopts...)
	default:
		dopts := []dfs.Option{dfs.WithContext(ctx), dfs.WithLogger(log)}
		for _, obs := range observers {
			dopts = append(dopts, dfs.WithObserver(obs))
		}
		if cfg.MaxDepth > 0 {
			dopts = append(dopts, dfs.WithMaxDepth(cfg.MaxDepth))
		}
		res, err = dfs.DFS[S](p, dopts...)
	}
	if err != nil {
		err = fmt.Errorf("app: %s: %w", cfg.Algorithm, err)
	}
	if res == nil {
		return nil, nil, err
	}

	rep := &Report{
		Kind:      cfg.Problem.Kind,
		Algorithm: cfg.Algorithm,
		Status:    res.Status,
		Found:     res.Found(),
		Stats:     res.Stats,
		Frames:    rec.Frames(),
		Counts:    rec.Counts(),
	}
	if path, ok := res.Path(); ok {
		rep.Actions = path.Actions()
		for _, s := range path.VisitedStates() {
			rep.States = append(rep.States, format(s))
		}
	}

	return res, rep, err
}
