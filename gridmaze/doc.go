// Package gridmaze treats a rectangular text maze as a search.Problem over
// cell positions, enabling depth- and breadth-first pathfinding and a
// per-cell overlay of a run's trace.
//
// What:
//
//   - Maze parses rows of '#' (wall), '.' (open), 'S' (start) and 'G' (goal).
//   - Moves are Conn4 (up, right, down, left) or Conn8 (adds diagonals);
//     WithMoves restricts and reorders them. Successors follow move order.
//   - Reachable floods the open cells around the start so callers can tell
//     an unsolvable maze before searching it.
//   - Overlay projects trace categories of search nodes onto cells.
//
// Why:
//
//   - Classic teaching scenario for uninformed search: the frontier and
//     explored cells are easy to see on a grid.
//
// Complexity:
//
//   - New:        O(W×H)
//   - Expand:     O(d), d = number of moves (≤ 8)
//   - Reachable:  O(W×H×d), Memory: O(W×H)
//   - Overlay:    O(N) for N tree nodes
//
// Errors:
//
//   - ErrEmptyGrid       no rows or no columns.
//   - ErrNonRectangular  rows of differing lengths.
//   - ErrBadCell         character outside "#.SG".
//   - ErrNoStart, ErrNoGoal, ErrMultipleStart, ErrMultipleGoal.
//   - ErrUnknownMove     WithMoves got a name that is not a move under the
//     chosen connectivity.
package gridmaze
