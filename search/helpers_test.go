package search_test

import "github.com/katalvlaran/treesearch/search"

// lineProblem is a 1-D corridor of cells 0..width-1 with moves "right" and
// "left"; goal < 0 means no goal.
type lineProblem struct {
	width, start, goal int
}

func (p lineProblem) InitialState() int { return p.start }

func (p lineProblem) IsGoal(s int) bool { return s == p.goal }

func (p lineProblem) Expand(s int) []search.Successor[int] {
	var out []search.Successor[int]
	if s+1 < p.width {
		out = append(out, search.Successor[int]{Action: "right", State: s + 1})
	}
	if s-1 >= 0 {
		out = append(out, search.Successor[int]{Action: "left", State: s - 1})
	}

	return out
}

// buildChain returns a tree holding root→a→b→c with states 10,11,12,13.
func buildChain() (*search.Tree[int], []search.NodeID) {
	tr := search.NewTree[int](4)
	ids := []search.NodeID{tr.AddRoot(10)}
	for i, act := range []string{"a", "b", "c"} {
		id, _ := tr.Add(ids[i], 11+i, i+1, act)
		ids = append(ids, id)
	}

	return tr, ids
}
