package search

// Result is the outcome of a finished (or aborted) run.
// A run without a solution has Goal == NoNode and Status == Exhausted;
// that is a normal outcome, not an error.
type Result[S comparable] struct {
	Status Status
	Goal   NodeID
	Tree   *Tree[S]
	Stats  Stats
}

// Found reports whether the run ended on a goal node.
func (r *Result[S]) Found() bool {
	return r != nil && r.Status == GoalFound && r.Goal != NoNode
}

// GoalNode returns the goal node, if any.
func (r *Result[S]) GoalNode() (Node[S], bool) {
	if !r.Found() {
		return Node[S]{}, false
	}

	return r.Tree.Node(r.Goal)
}

// Path returns the root-to-goal path, if a goal was found.
func (r *Result[S]) Path() (Path[S], bool) {
	if !r.Found() {
		return Path[S]{}, false
	}
	p, err := r.Tree.Path(r.Goal)

	return p, err == nil
}
