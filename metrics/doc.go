// Package metrics exports search progress as Prometheus metrics.
//
// A Collector is a search.Observer. Attach it to a run with the algorithm's
// WithObserver option; it counts checkpoints, tracks the frontier size and the
// number of generated nodes, and records the outcome and solution depth of
// every run that reaches a terminal checkpoint.
//
// Metrics (all prefixed treesearch_):
//
//	checkpoints_total{checkpoint}  counter
//	frontier_size                  gauge, size at the latest checkpoint
//	nodes_generated                gauge, Stats.Generated at the latest checkpoint
//	searches_total{outcome}        counter, outcome is "goal" or "exhausted"
//	solution_depth                 histogram, depth of the goal node
//
// WriteText renders any Gatherer in the Prometheus text exposition format,
// which is how the CLI prints metrics without serving HTTP.
package metrics
