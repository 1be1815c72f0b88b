// Package app wires a run configuration to a problem and an algorithm.
//
// Run decodes the problem params named by the configuration, builds the
// gridmaze or mapcoloring problem, runs DFS or BFS with a trace.Recorder and
// any extra observers attached, and condenses the outcome into a Report that
// the CLI renders. The logger is taken from the context (see
// logging.WithLogger).
package app
