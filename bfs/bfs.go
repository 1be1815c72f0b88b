package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treesearch/search"
)

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	problem  search.Problem[S]
	opts     BFSOptions
	ctx      context.Context
	tree     *search.Tree[S]
	queue    *search.Queue
	explored *search.ExploredSet[S]
	queued   map[S]struct{}
	res      *search.Result[S]
}

// BFS runs breadth-first graph search on p, applying any number of
// functional Options. It returns the result built so far together with any
// context, option or observer error. An empty frontier is not an error.
func BFS[S comparable](p search.Problem[S], opts ...Option) (*search.Result[S], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tree := search.NewTree[S](64)
	w := &walker[S]{
		problem:  p,
		opts:     o,
		ctx:      o.Ctx,
		tree:     tree,
		queue:    search.NewQueue(),
		explored: search.NewExploredSet[S](),
		queued:   make(map[S]struct{}),
		res: &search.Result[S]{
			Status: search.NotStarted,
			Goal:   search.NoNode,
			Tree:   tree,
		},
	}

	return w.res, w.run()
}

// run seeds the queue with the root and processes it until a goal is found,
// the queue is empty, or the run is aborted.
func (w *walker[S]) run() error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	root := w.tree.AddRoot(w.problem.InitialState())
	w.res.Stats.Generated++
	if err := w.emit(search.CheckpointRoot, root); err != nil {
		return err
	}
	if w.problem.IsGoal(w.tree.State(root)) {
		return w.finish(root)
	}
	w.enqueue(root)
	w.res.Status = search.Running
	if err := w.emit(search.CheckpointRootChecked, root); err != nil {
		return err
	}

	// Main loop
	for !w.queue.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.dequeue()
		if err := w.emit(search.CheckpointPop, id); err != nil {
			return err
		}
		goal, err := w.expand(id)
		if err != nil {
			return err
		}
		if goal != search.NoNode {
			return w.finish(goal)
		}
	}

	w.res.Status = search.Exhausted

	return w.emit(search.CheckpointExhausted, search.NoNode)
}

// enqueue places id on the queue, remembers its state and calls OnEnqueue.
func (w *walker[S]) enqueue(id search.NodeID) {
	w.queue.Add(id)
	w.queued[w.tree.State(id)] = struct{}{}
	if n := w.queue.Size(); n > w.res.Stats.MaxFrontier {
		w.res.Stats.MaxFrontier = n
	}
	w.opts.OnEnqueue(id, w.tree.Depth(id))
}

// dequeue pops the front node, moves its state to the explored set and
// invokes OnDequeue.
func (w *walker[S]) dequeue() search.NodeID {
	// callers check IsEmpty first
	id, _ := w.queue.RemoveFirst()
	state := w.tree.State(id)
	delete(w.queued, state)
	w.explored.Add(state)
	w.opts.OnDequeue(id, w.tree.Depth(id))

	return id
}

// expand generates the children of id and enqueues the new ones.
// It returns the first goal child, or NoNode.
func (w *walker[S]) expand(id search.NodeID) (search.NodeID, error) {
	if w.opts.MaxDepth > 0 && w.tree.Depth(id) >= w.opts.MaxDepth {
		w.res.Stats.Cutoffs++
		return search.NoNode, nil
	}
	children, err := w.tree.Expand(w.problem, id)
	if err != nil {
		return search.NoNode, fmt.Errorf("bfs: expand %d: %w", id, err)
	}
	w.res.Stats.Expanded++
	w.res.Stats.Generated += len(children)

	for _, cid := range children {
		state := w.tree.State(cid)
		if _, ok := w.queued[state]; ok || w.explored.Contains(state) {
			w.res.Stats.Pruned++
			continue
		}
		if w.problem.IsGoal(state) {
			return cid, nil
		}
		w.enqueue(cid)
	}

	return search.NoNode, nil
}

func (w *walker[S]) finish(goal search.NodeID) error {
	w.res.Status = search.GoalFound
	w.res.Goal = goal

	return w.emit(search.CheckpointGoal, goal)
}

// emit logs the checkpoint and hands the event to every observer.
func (w *walker[S]) emit(cp search.Checkpoint, id search.NodeID) error {
	ev := search.Event{
		Checkpoint: cp,
		Status:     w.res.Status,
		Node:       id,
		Frontier:   w.queue.Items(),
		Stats:      w.res.Stats,
		Tree:       w.tree,
	}
	w.opts.Logger.Debug("bfs checkpoint",
		"checkpoint", cp.String(),
		"node", int(id),
		"depth", w.tree.Depth(id),
		"frontier", len(ev.Frontier),
		"explored", w.explored.Len(),
	)
	for _, obs := range w.opts.Observers {
		if err := obs.Observe(ev); err != nil {
			return fmt.Errorf("bfs: observer at %s: %w", cp, err)
		}
	}

	return nil
}
