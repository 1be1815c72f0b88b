// Package bfs provides breadth-first graph search over a search.Problem.
//
// What
//
//   - Expand nodes in non-decreasing depth, so the first goal found is a
//     shallowest one.
//   - Duplicate avoidance is global: a child is dropped when its state is in
//     the ExploredSet (already expanded) or already waiting on the frontier.
//   - The goal test runs when a child is generated.
//   - Emits the same checkpoints as dfs (root, root-checked, pop, goal,
//     exhausted) to every registered search.Observer.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (after a node is placed on the queue)
//   - OnDequeue (immediately after a node leaves the queue)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Shortest action sequences on unit-cost problems.
//   - Contrast with dfs' ancestor-chain check: convergent paths are expanded once.
//
// Determinism
//
//	Children are enqueued in the order Problem.Expand yields them, so the
//	visit sequence is fully reproducible.
//
// Complexity
//
//   - Time:   O(b^d) for branching b and goal depth d.
//   - Memory: O(b^d) for the frontier, explored set and tree arena.
//
// Errors
//
//   - search.ErrNilProblem  p is nil.
//   - ErrOptionViolation    negative MaxDepth.
//   - context errors        ctx canceled or past deadline.
//   - observer errors       wrapped with the checkpoint name.
package bfs
