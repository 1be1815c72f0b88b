package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for kernel operations.
var (
	// ErrEmptyFrontier is returned when removing from an empty frontier.
	// Algorithms guard every removal with IsEmpty, so seeing it is a bug.
	ErrEmptyFrontier = errors.New("search: frontier is empty")

	// ErrNegativeDepth indicates a node was constructed with depth < 0.
	ErrNegativeDepth = errors.New("search: depth must be non-negative")

	// ErrNodeNotFound indicates a NodeID that does not belong to the tree.
	ErrNodeNotFound = errors.New("search: node not found")

	// ErrNilProblem is returned when an algorithm is started without a problem.
	ErrNilProblem = errors.New("search: problem is nil")
)

// Problem describes a search space over states of type S.
// Implementations must be deterministic and free of side effects; a single
// Problem value is shared read-only by every node of a run.
type Problem[S comparable] interface {
	// InitialState returns the state the search starts from.
	InitialState() S

	// IsGoal reports whether s is an accepting state.
	IsGoal(s S) bool

	// Expand returns the successors of s in a fixed, problem-defined order.
	Expand(s S) []Successor[S]
}

// Successor pairs an action label with the state it leads to.
type Successor[S comparable] struct {
	Action string
	State  S
}

// Status is the lifecycle of a single search run.
type Status int

const (
	// NotStarted: no node has been tested yet.
	NotStarted Status = iota
	// Running: the frontier has been seeded and is being consumed.
	Running
	// GoalFound: a goal node was returned. Terminal.
	GoalFound
	// Exhausted: the frontier ran dry without a goal. Terminal.
	Exhausted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether s is GoalFound or Exhausted.
func (s Status) Terminal() bool {
	return s == GoalFound || s == Exhausted
}

// Checkpoint identifies a point where a run may be observed or paused.
type Checkpoint int

const (
	// CheckpointRoot fires after the root node has been constructed.
	CheckpointRoot Checkpoint = iota
	// CheckpointRootChecked fires after the root failed the goal test and
	// was placed on the frontier.
	CheckpointRootChecked
	// CheckpointPop fires after each removal from the frontier.
	CheckpointPop
	// CheckpointGoal fires once when a goal node is found.
	CheckpointGoal
	// CheckpointExhausted fires once when the frontier is empty.
	CheckpointExhausted
)

// String implements fmt.Stringer.
func (c Checkpoint) String() string {
	switch c {
	case CheckpointRoot:
		return "root"
	case CheckpointRootChecked:
		return "root-checked"
	case CheckpointPop:
		return "pop"
	case CheckpointGoal:
		return "goal"
	case CheckpointExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("checkpoint(%d)", int(c))
	}
}

// Stats counts the work done by a run.
type Stats struct {
	// Generated is the number of nodes created, root included.
	Generated int
	// Expanded is the number of nodes whose successors were generated.
	Expanded int
	// Pruned counts children dropped by duplicate avoidance
	// (ancestor-chain check for DFS, explored set for BFS).
	Pruned int
	// Cutoffs counts nodes not expanded because of a depth limit.
	Cutoffs int
	// MaxFrontier is the largest frontier size seen.
	MaxFrontier int
}

// TreeView is the state-agnostic part of a Tree that observers may walk.
type TreeView interface {
	Len() int
	Parent(id NodeID) NodeID
	Depth(id NodeID) int
}

// Event is the explicit snapshot handed to observers at every checkpoint.
type Event struct {
	Checkpoint Checkpoint
	Status     Status

	// Node is the node the checkpoint is about: the root, the popped node,
	// or the goal. NoNode on CheckpointExhausted.
	Node NodeID

	// Frontier is a copy of the frontier contents, in insertion order.
	Frontier []NodeID

	Stats Stats
	Tree  TreeView
}

// Observer receives checkpoint events. Returning an error aborts the run.
type Observer interface {
	Observe(ev Event) error
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(ev Event) error

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) error {
	return f(ev)
}
