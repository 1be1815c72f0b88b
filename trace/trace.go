package trace

import (
	"fmt"

	"github.com/katalvlaran/treesearch/search"
)

// Category is the display class of a node. Larger values win when several
// nodes map to the same cell of a picture.
type Category int

const (
	NotInMemory Category = iota
	InMemory
	Expanded
	InFrontier
	Expanding
	Goal
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case NotInMemory:
		return "not-in-memory"
	case InMemory:
		return "in-memory"
	case Expanded:
		return "expanded"
	case InFrontier:
		return "in-frontier"
	case Expanding:
		return "expanding"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Meta is the side-channel state of one node.
type Meta struct {
	InFrontier bool
	InExplored bool // popped from the frontier at least once
	InMemory   bool
}

// Frame is one observed checkpoint.
type Frame struct {
	Checkpoint   search.Checkpoint
	Status       search.Status
	Node         search.NodeID
	Expanding    search.NodeID
	FrontierSize int
	Stats        search.Stats
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithMaxFrames keeps at most n frames (the oldest are dropped).
// n <= 0 keeps all frames.
func WithMaxFrames(n int) Option {
	return func(r *Recorder) {
		r.maxFrames = n
	}
}

// Recorder tracks node metadata across checkpoints.
type Recorder struct {
	meta      []Meta
	expanding search.NodeID
	previous  search.NodeID
	goal      search.NodeID
	frames    []Frame
	maxFrames int
}

// NewRecorder returns an empty recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		expanding: search.NoNode,
		previous:  search.NoNode,
		goal:      search.NoNode,
	}
	for _, fn := range opts {
		fn(r)
	}

	return r
}

// Observe implements search.Observer.
func (r *Recorder) Observe(ev search.Event) error {
	if ev.Tree != nil {
		r.grow(ev.Tree.Len())
	}

	// frontier flags always come from the snapshot
	for i := range r.meta {
		r.meta[i].InFrontier = false
	}
	for _, id := range ev.Frontier {
		if m := r.at(id); m != nil {
			m.InFrontier = true
		}
	}

	switch ev.Checkpoint {
	case search.CheckpointRoot, search.CheckpointRootChecked:
		if m := r.at(ev.Node); m != nil {
			m.InMemory = true
		}

	case search.CheckpointPop:
		r.previous, r.expanding = r.expanding, ev.Node
		if m := r.at(ev.Node); m != nil {
			m.InExplored = true
		}
		r.release(ev.Tree, r.previous)
		r.hold(ev.Tree, r.expanding)

	case search.CheckpointGoal:
		r.goal = ev.Node
		r.hold(ev.Tree, ev.Node)

	case search.CheckpointExhausted:
		r.previous, r.expanding = r.expanding, search.NoNode
		r.release(ev.Tree, r.previous)
	}

	r.frames = append(r.frames, Frame{
		Checkpoint:   ev.Checkpoint,
		Status:       ev.Status,
		Node:         ev.Node,
		Expanding:    r.expanding,
		FrontierSize: len(ev.Frontier),
		Stats:        ev.Stats,
	})
	if r.maxFrames > 0 && len(r.frames) > r.maxFrames {
		r.frames = r.frames[len(r.frames)-r.maxFrames:]
	}

	return nil
}

// release recomputes InMemory along the chain of a node that is no longer
// being expanded: only nodes still explored or queued stay in memory.
func (r *Recorder) release(tv search.TreeView, id search.NodeID) {
	if tv == nil {
		return
	}
	for cur := id; cur != search.NoNode; cur = tv.Parent(cur) {
		if m := r.at(cur); m != nil {
			m.InMemory = m.InExplored || m.InFrontier
		}
	}
}

// hold marks the whole chain from id to the root as in memory.
func (r *Recorder) hold(tv search.TreeView, id search.NodeID) {
	if tv == nil {
		return
	}
	for cur := id; cur != search.NoNode; cur = tv.Parent(cur) {
		if m := r.at(cur); m != nil {
			m.InMemory = true
		}
	}
}

func (r *Recorder) grow(n int) {
	for len(r.meta) < n {
		r.meta = append(r.meta, Meta{})
	}
}

func (r *Recorder) at(id search.NodeID) *Meta {
	if id < 0 || int(id) >= len(r.meta) {
		return nil
	}

	return &r.meta[id]
}

// Meta returns the metadata of id.
func (r *Recorder) Meta(id search.NodeID) (Meta, bool) {
	if m := r.at(id); m != nil {
		return *m, true
	}

	return Meta{}, false
}

// Category classifies id. Unknown IDs are NotInMemory.
func (r *Recorder) Category(id search.NodeID) Category {
	m := r.at(id)
	switch {
	case m == nil:
		return NotInMemory
	case id == r.goal:
		return Goal
	case id == r.expanding:
		return Expanding
	case m.InFrontier:
		return InFrontier
	case m.InExplored:
		return Expanded
	case m.InMemory:
		return InMemory
	default:
		return NotInMemory
	}
}

// Categories returns the category of every known node, indexed by NodeID.
func (r *Recorder) Categories() []Category {
	out := make([]Category, len(r.meta))
	for i := range r.meta {
		out[i] = r.Category(search.NodeID(i))
	}

	return out
}

// Counts returns how many nodes fall in each category.
func (r *Recorder) Counts() map[Category]int {
	counts := make(map[Category]int)
	for _, c := range r.Categories() {
		counts[c]++
	}

	return counts
}

// Expanding returns the node currently being expanded, or NoNode.
func (r *Recorder) Expanding() search.NodeID { return r.expanding }

// Previous returns the node expanded before the current one, or NoNode.
func (r *Recorder) Previous() search.NodeID { return r.previous }

// Goal returns the goal node, or NoNode.
func (r *Recorder) Goal() search.NodeID { return r.goal }

// Len returns the number of nodes tracked.
func (r *Recorder) Len() int { return len(r.meta) }

// Frames returns a copy of the recorded frames, oldest first.
func (r *Recorder) Frames() []Frame {
	return append([]Frame(nil), r.frames...)
}
