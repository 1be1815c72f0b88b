// Package search is the kernel shared by every uninformed search strategy in
// treesearch: problems, search nodes, frontiers, explored sets and paths.
//
// What:
//
//   - Problem[S]: initial state, goal test and successor generation over a
//     comparable state type S.
//   - Tree[S]: an arena of Node[S] values. Every node stores the index of its
//     parent and nothing else, so the tree is a forest of child→parent links
//     and a node lives exactly as long as the Tree that holds it.
//   - Frontier: Stack (LIFO, depth-first) and Queue (FIFO, breadth-first).
//   - ExploredSet[S]: states already expanded during one run.
//   - Path[S]: root-to-goal actions and visited states of a terminal node.
//   - Event / Observer: explicit checkpoint state handed to observers
//     (tracers, metrics, step debuggers) instead of shared globals.
//
// Why:
//
//   - Keep the algorithms (dfs, bfs) free of node bookkeeping.
//   - Let problem domains (gridmaze, mapcoloring) plug in by implementing
//     three methods.
//
// Complexity:
//
//   - Tree.Add, Tree.Node:   O(1)
//   - Tree.Expand:           O(b) for b successors
//   - Tree.Contains:         O(depth)
//   - Path.Actions/States:   O(depth)
//   - Stack/Queue Add/Remove: amortized O(1)
//
// Errors:
//
//   - ErrEmptyFrontier   Remove called on an empty frontier
//   - ErrNegativeDepth   node constructed with depth < 0
//   - ErrNodeNotFound    unknown NodeID
//   - ErrNilProblem      algorithm invoked without a problem
package search
