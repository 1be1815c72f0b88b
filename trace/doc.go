// Package trace keeps per-node bookkeeping for visualizing a search run: which
// nodes sit on the frontier, which were expanded, which are still held in
// memory, and which one is being expanded right now.
//
// A Recorder is a search.Observer. It derives everything from the explicit
// search.Event snapshots it receives, so several recorders can watch the same
// run and none of them touches the algorithm's state.
//
// Categories, highest priority first:
//
//	Goal > Expanding > InFrontier > Expanded > InMemory > NotInMemory
package trace
