// Package dfs implements depth-first tree search over a search.Problem.
//
// What:
//
//   - DFS(p, opts...): run to completion and return a *search.Result.
//   - Searcher: the same algorithm as an explicit state machine. Each call to
//     Step advances to the next checkpoint (root built, root checked, node
//     popped, goal found, frontier exhausted) and returns its search.Event,
//     so an external driver can single-step a run.
//   - Duplicate avoidance is the ancestor-chain check: a child is not pushed
//     if its state already appears on the path from the root to its parent.
//     States reachable along different paths may be expanded more than once.
//   - A child that satisfies the goal test is returned immediately, before it
//     is ever pushed; popped nodes are tested again.
//
// Why:
//
//   - Teaching and visualization: every checkpoint carries an explicit
//     snapshot (frontier, stats, tree view) for observers.
//   - Memory proportional to depth × branching on trees with small fan-out.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked between checkpoints.
//   - WithObserver(obs)      called at every checkpoint; an error aborts.
//   - WithMaxDepth(limit)    nodes at depth == limit are not expanded (-1 = no limit).
//   - WithLogger(l)          debug logging of checkpoints.
//
// Complexity:
//
//   - Time:   O(b^m) node generations for branching b and maximum depth m,
//     plus O(m) per generated child for the ancestor check.
//   - Memory: O(b·m) frontier; the tree arena keeps every generated node.
//
// Errors:
//
//   - search.ErrNilProblem   p is nil.
//   - context.Canceled       ctx is done.
//   - observer errors        wrapped with the checkpoint name.
package dfs
