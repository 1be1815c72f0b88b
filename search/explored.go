package search

// ExploredSet records states that have already been expanded in one run.
// Create a fresh set per run.
type ExploredSet[S comparable] struct {
	seen map[S]struct{}
}

// NewExploredSet returns an empty set.
func NewExploredSet[S comparable]() *ExploredSet[S] {
	return &ExploredSet[S]{seen: make(map[S]struct{})}
}

// Add records s. It reports whether s was newly added.
func (e *ExploredSet[S]) Add(s S) bool {
	if _, ok := e.seen[s]; ok {
		return false
	}
	e.seen[s] = struct{}{}

	return true
}

// Contains reports whether s has been recorded.
func (e *ExploredSet[S]) Contains(s S) bool {
	_, ok := e.seen[s]

	return ok
}

// Len returns the number of recorded states.
func (e *ExploredSet[S]) Len() int {
	return len(e.seen)
}
