package gridmaze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/treesearch/search"
)

// Maze is an immutable grid of wall and open cells with one start and one
// goal. It implements search.Problem[Position].
type Maze struct {
	Width, Height int
	Start, Goal   Position
	Conn          Connectivity

	walls [][]bool
	moves []Move
}

var _ search.Problem[Position] = (*Maze)(nil)

// New parses a maze from text rows. Every row must have the same length and
// contain only '#', '.', 'S' and 'G', with exactly one 'S' and one 'G'.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	moves, err := resolveMoves(o)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m := &Maze{
		Width:  w,
		Height: h,
		Conn:   o.Conn,
		walls:  make([][]bool, h),
		moves:  moves,
	}
	var starts, goals int
	for y, row := range rows {
		m.walls[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			switch row[x] {
			case WallChar:
				m.walls[y][x] = true
			case OpenChar:
			case StartChar:
				m.Start = Position{x, y}
				starts++
			case GoalChar:
				m.Goal = Position{x, y}
				goals++
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadCell, row[x], x, y)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStart
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, ErrMultipleGoal
	}

	return m, nil
}

// FromParams builds a maze from its configuration form.
func FromParams(prm Params) (*Maze, error) {
	var conn Connectivity
	switch prm.Connectivity {
	case 0, 4:
		conn = Conn4
	case 8:
		conn = Conn8
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadConnectivity, prm.Connectivity)
	}
	opts := []Option{WithConnectivity(conn)}
	if len(prm.Moves) > 0 {
		opts = append(opts, WithMoves(prm.Moves...))
	}

	return New(prm.Rows, opts...)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Open reports whether p is inside the grid and not a wall.
func (m *Maze) Open(p Position) bool {
	return m.InBounds(p) && !m.walls[p.Y][p.X]
}

// Moves returns the move set in expansion order.
func (m *Maze) Moves() []Move {
	return append([]Move(nil), m.moves...)
}

// Rows renders the maze back to its text form.
func (m *Maze) Rows() []string {
	rows := make([]string, m.Height)
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		b.Reset()
		for x := 0; x < m.Width; x++ {
			p := Position{x, y}
			switch {
			case p == m.Start:
				b.WriteByte(StartChar)
			case p == m.Goal:
				b.WriteByte(GoalChar)
			case m.walls[y][x]:
				b.WriteByte(WallChar)
			default:
				b.WriteByte(OpenChar)
			}
		}
		rows[y] = b.String()
	}

	return rows
}

// InitialState returns the start cell.
func (m *Maze) InitialState() Position {
	return m.Start
}

// IsGoal reports whether p is the goal cell.
func (m *Maze) IsGoal(p Position) bool {
	return p == m.Goal
}

// Expand returns one successor per move that lands on an open cell,
// in move order.
func (m *Maze) Expand(p Position) []search.Successor[Position] {
	out := make([]search.Successor[Position], 0, len(m.moves))
	for _, mv := range m.moves {
		next := Position{p.X + mv.DX, p.Y + mv.DY}
		if !m.Open(next) {
			continue
		}
		out = append(out, search.Successor[Position]{Action: mv.Name, State: next})
	}

	return out
}

// index maps p to a row-major index: y*Width + x.
func (m *Maze) index(p Position) int {
	return p.Y*m.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (m *Maze) Coordinate(idx int) Position {
	return Position{idx % m.Width, idx / m.Width}
}
