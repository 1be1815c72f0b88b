// Package treesearch is a small uninformed tree-search kernel with a
// checkpoint-driven depth-first search and two toy problem domains.
//
// What is in the box?
//
//	search/          Problem, search Tree (arena of nodes), Stack/Queue frontiers,
//	                 ExploredSet, Path, Result, checkpoint Events and Observers
//	dfs/             depth-first tree search, run to completion or one checkpoint at a time
//	bfs/             breadth-first graph search with an explored set
//	trace/           per-node status (in frontier / explored / in memory) rebuilt from events
//	gridmaze/        grid maze problem with 4/8 connectivity and a configurable move set
//	mapcoloring/     map coloring as search over partial assignments
//	metrics/         Prometheus observer
//	config/          YAML run configurations and embedded presets
//	cmd/treesearch   command line front end
//
// Quick start:
//
//	m, _ := gridmaze.New([]string{"S.G"}, gridmaze.WithMoves("right", "left"))
//	res, _ := dfs.DFS[gridmaze.Position](m)
//	p, _ := res.Path()
//	fmt.Println(p.Actions()) // [right right]
//
// Searches never fail for lack of a solution: an exhausted run returns a
// Result with Status Exhausted and no goal.
package treesearch
