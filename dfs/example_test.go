package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/treesearch/dfs"
	"github.com/katalvlaran/treesearch/search"
)

// ExampleDFS searches a three-cell corridor from the left end to the right end.
//
//	[S][ ][G]
func ExampleDFS() {
	res, err := dfs.DFS[int](corridor{width: 3, start: 0, goal: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := res.Path()
	fmt.Println(strings.Join(p.Actions(), " "))
	fmt.Println(p.VisitedStates())

	// Output:
	// right right
	// [0 1 2]
}

// ExampleSearcher_Step drives a run one checkpoint at a time, the way a
// debugger UI would.
func ExampleSearcher_Step() {
	s, _ := dfs.New[int](corridor{width: 3, start: 0, goal: 2})
	for {
		ev, ok := s.Step()
		if !ok {
			break
		}
		fmt.Printf("%-12s node=%d frontier=%d\n", ev.Checkpoint, ev.Node, len(ev.Frontier))
	}
	fmt.Println(s.Status() == search.GoalFound)

	// Output:
	// root         node=0 frontier=0
	// root-checked node=0 frontier=1
	// pop          node=0 frontier=0
	// pop          node=1 frontier=0
	// goal         node=2 frontier=0
	// true
}
