package dfs_test

import (
	"strconv"

	"github.com/katalvlaran/treesearch/search"
)

// corridor is a 1-D maze of width cells with moves "right" then "left".
// goal < 0 means there is no goal.
type corridor struct {
	width, start, goal int
}

func (c corridor) InitialState() int { return c.start }

func (c corridor) IsGoal(s int) bool { return s == c.goal }

func (c corridor) Expand(s int) []search.Successor[int] {
	var out []search.Successor[int]
	if s+1 < c.width {
		out = append(out, search.Successor[int]{Action: "right", State: s + 1})
	}
	if s-1 >= 0 {
		out = append(out, search.Successor[int]{Action: "left", State: s - 1})
	}

	return out
}

// digraph is an explicit directed graph; actions are "->X".
type digraph struct {
	edges map[string][]string
	start string
	goal  string
}

func (g digraph) InitialState() string { return g.start }

func (g digraph) IsGoal(s string) bool { return g.goal != "" && s == g.goal }

func (g digraph) Expand(s string) []search.Successor[string] {
	out := make([]search.Successor[string], 0, len(g.edges[s]))
	for _, t := range g.edges[s] {
		out = append(out, search.Successor[string]{Action: "->" + t, State: t})
	}

	return out
}

// binaryTree numbers nodes heap-style: children of n are 2n and 2n+1,
// up to maxID. It is finite and acyclic.
type binaryTree struct {
	maxID, goal int
}

func (b binaryTree) InitialState() int { return 1 }

func (b binaryTree) IsGoal(s int) bool { return s == b.goal }

func (b binaryTree) Expand(s int) []search.Successor[int] {
	var out []search.Successor[int]
	for _, c := range []int{2 * s, 2*s + 1} {
		if c <= b.maxID {
			out = append(out, search.Successor[int]{Action: strconv.Itoa(c), State: c})
		}
	}

	return out
}

// recorder collects every event it observes.
type recorder struct {
	events []search.Event
}

func (r *recorder) Observe(ev search.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) checkpoints() []search.Checkpoint {
	out := make([]search.Checkpoint, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Checkpoint
	}

	return out
}
