package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/treesearch/bfs"
)

// BenchmarkBFS_Ladder runs BFS over a ladder graph of 2×1000 rungs with the
// goal at the far end. Each state is expanded once thanks to the explored set.
func BenchmarkBFS_Ladder(b *testing.B) {
	const n = 1000
	edges := make(map[string][]string, 2*n)
	for i := 0; i < n; i++ {
		l, r := fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", i)
		edges[l] = append(edges[l], r)
		edges[r] = append(edges[r], l)
		if i+1 < n {
			edges[l] = append(edges[l], fmt.Sprintf("L%d", i+1))
			edges[r] = append(edges[r], fmt.Sprintf("R%d", i+1))
		}
	}
	g := digraph{edges: edges, start: "L0", goal: fmt.Sprintf("R%d", n-1)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS[string](g); err != nil {
			b.Fatal(err)
		}
	}
}
