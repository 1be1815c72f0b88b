package dfs

import (
	"fmt"

	"github.com/katalvlaran/treesearch/search"
)

// phase is the position of a Searcher between checkpoints.
type phase int

const (
	phaseRoot phase = iota
	phaseCheckRoot
	phaseLoop
	phaseExpand
	phaseDone
)

// Searcher runs depth-first search one checkpoint at a time.
// It is not safe for concurrent use.
type Searcher[S comparable] struct {
	problem  search.Problem[S]
	opts     Options
	tree     *search.Tree[S]
	frontier *search.Stack

	phase   phase
	status  search.Status
	current search.NodeID
	goal    search.NodeID
	stats   search.Stats
}

// New prepares a depth-first run over p. No node is created until the first
// call to Step.
func New[S comparable](p search.Problem[S], opts ...Option) (*Searcher[S], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Searcher[S]{
		problem:  p,
		opts:     o,
		tree:     search.NewTree[S](64),
		frontier: search.NewStack(),
		phase:    phaseRoot,
		status:   search.NotStarted,
		current:  search.NoNode,
		goal:     search.NoNode,
	}, nil
}

// DFS runs depth-first search on p to completion.
// The result is returned even on error, holding whatever was built so far.
func DFS[S comparable](p search.Problem[S], opts ...Option) (*search.Result[S], error) {
	s, err := New(p, opts...)
	if err != nil {
		return nil, err
	}

	return s.Search()
}

// Status returns the current lifecycle status.
func (s *Searcher[S]) Status() search.Status {
	return s.status
}

// Tree returns the search tree built so far.
func (s *Searcher[S]) Tree() *search.Tree[S] {
	return s.tree
}

// Done reports whether the terminal checkpoint has been delivered.
func (s *Searcher[S]) Done() bool {
	return s.phase == phaseDone
}

// Result returns the current outcome. Before the run is done Goal is NoNode.
func (s *Searcher[S]) Result() *search.Result[S] {
	return &search.Result[S]{
		Status: s.status,
		Goal:   s.goal,
		Tree:   s.tree,
		Stats:  s.stats,
	}
}

// Search steps until the run is done, checking the context and notifying
// observers at every checkpoint.
func (s *Searcher[S]) Search() (*search.Result[S], error) {
	for {
		// 1. Cancellation check between checkpoints
		select {
		case <-s.opts.Ctx.Done():
			return s.Result(), s.opts.Ctx.Err()
		default:
		}

		// 2. Advance
		ev, ok := s.Step()
		if !ok {
			return s.Result(), nil
		}

		// 3. Notify
		s.opts.Logger.Debug("dfs checkpoint",
			"checkpoint", ev.Checkpoint.String(),
			"status", ev.Status.String(),
			"node", int(ev.Node),
			"depth", s.tree.Depth(ev.Node),
			"frontier", len(ev.Frontier),
		)
		for _, obs := range s.opts.Observers {
			if err := obs.Observe(ev); err != nil {
				return s.Result(), fmt.Errorf("dfs: observer at %s: %w", ev.Checkpoint, err)
			}
		}
	}
}

// Step advances the run to the next checkpoint and returns its event.
// It returns false once the terminal checkpoint has already been returned.
func (s *Searcher[S]) Step() (search.Event, bool) {
	for {
		switch s.phase {
		case phaseRoot:
			s.current = s.tree.AddRoot(s.problem.InitialState())
			s.stats.Generated++
			s.phase = phaseCheckRoot

			return s.event(search.CheckpointRoot, s.current), true

		case phaseCheckRoot:
			if s.problem.IsGoal(s.tree.State(s.current)) {
				return s.finish(s.current), true
			}
			s.push(s.current)
			s.status = search.Running
			s.phase = phaseLoop

			return s.event(search.CheckpointRootChecked, s.current), true

		case phaseLoop:
			if s.frontier.IsEmpty() {
				s.status = search.Exhausted
				s.current = search.NoNode
				s.phase = phaseDone

				return s.event(search.CheckpointExhausted, search.NoNode), true
			}
			// guarded by IsEmpty above
			id, _ := s.frontier.RemoveLast()
			s.current = id
			s.phase = phaseExpand

			return s.event(search.CheckpointPop, id), true

		case phaseExpand:
			if goal, ok := s.expand(s.current); ok {
				return s.finish(goal), true
			}
			s.phase = phaseLoop

		default:
			return search.Event{}, false
		}
	}
}

// expand tests the current node, generates its children and pushes the ones
// that do not repeat an ancestor. It returns a goal node if one was met.
func (s *Searcher[S]) expand(id search.NodeID) (search.NodeID, bool) {
	node, _ := s.tree.Node(id)
	if s.problem.IsGoal(node.State) {
		return id, true
	}
	if s.opts.MaxDepth >= 0 && node.Depth >= s.opts.MaxDepth {
		s.stats.Cutoffs++
		return search.NoNode, false
	}

	// id always comes from this tree
	children, _ := s.tree.Expand(s.problem, id)
	s.stats.Expanded++
	s.stats.Generated += len(children)

	for _, cid := range children {
		state := s.tree.State(cid)
		if s.problem.IsGoal(state) {
			return cid, true
		}
		if s.tree.Contains(id, state) {
			s.stats.Pruned++
			continue
		}
		s.push(cid)
	}

	return search.NoNode, false
}

func (s *Searcher[S]) push(id search.NodeID) {
	s.frontier.Add(id)
	if n := s.frontier.Size(); n > s.stats.MaxFrontier {
		s.stats.MaxFrontier = n
	}
}

func (s *Searcher[S]) finish(goal search.NodeID) search.Event {
	s.status = search.GoalFound
	s.goal = goal
	s.current = goal
	s.phase = phaseDone

	return s.event(search.CheckpointGoal, goal)
}

func (s *Searcher[S]) event(cp search.Checkpoint, id search.NodeID) search.Event {
	return search.Event{
		Checkpoint: cp,
		Status:     s.status,
		Node:       id,
		Frontier:   s.frontier.Items(),
		Stats:      s.stats,
		Tree:       s.tree,
	}
}
