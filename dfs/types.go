package dfs

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/treesearch/search"
)

// Option configures optional behavior of a depth-first run.
type Option func(*Options)

// Options holds configurable parameters for DFS.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Observers are invoked, in order, at every checkpoint.
	Observers []search.Observer

	// MaxDepth, if non-negative, stops expansion of nodes at that depth.
	// A depth of 0 tests only the root. Default is -1 (no limit).
	MaxDepth int

	// Logger receives debug records for each checkpoint.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context, no observers,
// no depth limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Observers: nil,
		MaxDepth:  -1,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver appends obs to the observer list. A nil observer is ignored.
func WithObserver(obs search.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// WithMaxDepth limits expansion depth. Negative values mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
