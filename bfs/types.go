// Package bfs provides tunable options and error definitions
// for breadth-first search over a search.Problem.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/treesearch/search"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth.
	OnEnqueue func(id search.NodeID, depth int)

	// OnDequeue is called immediately after a node leaves the queue.
	OnDequeue func(id search.NodeID, depth int)

	// Observers receive every checkpoint event; an error aborts the run.
	Observers []search.Observer

	// MaxDepth, if > 0, stops expanding nodes at this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
//   - discarding logger.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(search.NodeID, int) {},
		OnDequeue: func(search.NodeID, int) {},
		MaxDepth:  0,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id search.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id search.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithObserver registers a checkpoint observer.
func WithObserver(obs search.Observer) Option {
	return func(o *BFSOptions) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// WithMaxDepth stops expansion at the given depth.
//
//	d > 0: nodes at depth d are not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithLogger sets the logger used for checkpoint debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
