package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/treesearch/bfs"
)

// ExampleBFS finds the shortest route through a small road network.
//
//	A ── B ── D ── G
//	 \             /
//	  C ──────────
func ExampleBFS() {
	g := digraph{
		edges: map[string][]string{
			"A": {"B", "C"},
			"B": {"D"},
			"D": {"G"},
			"C": {"G"},
		},
		start: "A",
		goal:  "G",
	}
	res, err := bfs.BFS[string](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.Path()
	fmt.Println(p.VisitedStates())
	fmt.Println(res.Stats.Expanded, "expanded")

	// Output:
	// [A C G]
	// 3 expanded
}
