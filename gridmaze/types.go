// Package gridmaze defines core types, options, and sentinel errors
// for the gridmaze subpackage of github.com/katalvlaran/treesearch.
package gridmaze

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmaze operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmaze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmaze: all rows must have the same length")
	// ErrBadCell indicates a character that is not a wall, open cell, start or goal.
	ErrBadCell = errors.New("gridmaze: unknown cell character")
	// ErrNoStart indicates the grid has no 'S' cell.
	ErrNoStart = errors.New("gridmaze: no start cell")
	// ErrNoGoal indicates the grid has no 'G' cell.
	ErrNoGoal = errors.New("gridmaze: no goal cell")
	// ErrMultipleStart indicates more than one 'S' cell.
	ErrMultipleStart = errors.New("gridmaze: more than one start cell")
	// ErrMultipleGoal indicates more than one 'G' cell.
	ErrMultipleGoal = errors.New("gridmaze: more than one goal cell")
	// ErrUnknownMove indicates a move name not available under the connectivity.
	ErrUnknownMove = errors.New("gridmaze: unknown move")
	// ErrBadConnectivity indicates a connectivity value other than 4 or 8.
	ErrBadConnectivity = errors.New("gridmaze: connectivity must be 4 or 8")
)

// Cell characters.
const (
	WallChar  = '#'
	OpenChar  = '.'
	StartChar = 'S'
	GoalChar  = 'G'
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: up-right, down-right, down-left, up-left.
	Conn8
)

// Position is a cell coordinate and the state type of the maze problem.
// X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move is a named unit step.
type Move struct {
	Name   string
	DX, DY int
}

var conn4Moves = []Move{
	{"up", 0, -1}, {"right", 1, 0}, {"down", 0, 1}, {"left", -1, 0},
}

var conn8Moves = []Move{
	{"up", 0, -1}, {"up-right", 1, -1}, {"right", 1, 0}, {"down-right", 1, 1},
	{"down", 0, 1}, {"down-left", -1, 1}, {"left", -1, 0}, {"up-left", -1, -1},
}

// Options contains tunable parameters for a maze.
type Options struct {
	// Conn chooses 4- or 8-directional moves.
	Conn Connectivity
	// Moves, if non-empty, restricts the move set to these names, in this order.
	Moves []string
}

// Option configures a Maze.
type Option func(*Options)

// DefaultOptions returns Conn4 with all four moves in clockwise order.
func DefaultOptions() Options {
	return Options{
		Conn:  Conn4,
		Moves: nil,
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithMoves restricts the move set to names, in the given order.
func WithMoves(names ...string) Option {
	return func(o *Options) {
		o.Moves = append([]string(nil), names...)
	}
}

// resolveMoves returns the move list selected by o.
func resolveMoves(o Options) ([]Move, error) {
	all := conn4Moves
	if o.Conn == Conn8 {
		all = conn8Moves
	}
	if len(o.Moves) == 0 {
		return append([]Move(nil), all...), nil
	}
	byName := make(map[string]Move, len(all))
	for _, m := range all {
		byName[m.Name] = m
	}
	out := make([]Move, 0, len(o.Moves))
	for _, name := range o.Moves {
		m, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
		}
		out = append(out, m)
	}

	return out, nil
}

// Params is the configuration form of a maze.
type Params struct {
	Rows []string `mapstructure:"rows" yaml:"rows"`
	// Connectivity is 4 or 8; zero means 4.
	Connectivity int      `mapstructure:"connectivity" yaml:"connectivity"`
	Moves        []string `mapstructure:"moves" yaml:"moves"`
}
