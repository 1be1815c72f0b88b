package gridmaze

import (
	"github.com/katalvlaran/treesearch/search"
	"github.com/katalvlaran/treesearch/trace"
)

// Overlay projects node categories onto cells. Several nodes may share a
// cell; the highest category wins. Cells no node touched are absent.
func Overlay(tree *search.Tree[Position], classify func(search.NodeID) trace.Category) map[Position]trace.Category {
	out := make(map[Position]trace.Category)
	for i := 0; i < tree.Len(); i++ {
		id := search.NodeID(i)
		p := tree.State(id)
		c := classify(id)
		if prev, ok := out[p]; !ok || c > prev {
			out[p] = c
		}
	}

	return out
}

// OnPath returns the set of cells visited by a path.
func OnPath(p search.Path[Position]) map[Position]bool {
	states := p.VisitedStates()
	out := make(map[Position]bool, len(states))
	for _, s := range states {
		out[s] = true
	}

	return out
}
