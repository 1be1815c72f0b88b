package gridmaze_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/treesearch/bfs"
	"github.com/katalvlaran/treesearch/dfs"
	"github.com/katalvlaran/treesearch/gridmaze"
	"github.com/katalvlaran/treesearch/search"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed mazes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts []gridmaze.Option
		err  error
	}{
		{"EmptyRows", []string{}, nil, gridmaze.ErrEmptyGrid},
		{"EmptyCols", []string{""}, nil, gridmaze.ErrEmptyGrid},
		{"NonRectangular", []string{"S.G", ".."}, nil, gridmaze.ErrNonRectangular},
		{"BadCell", []string{"S?G"}, nil, gridmaze.ErrBadCell},
		{"NoStart", []string{"..G"}, nil, gridmaze.ErrNoStart},
		{"NoGoal", []string{"S.."}, nil, gridmaze.ErrNoGoal},
		{"TwoStarts", []string{"SSG"}, nil, gridmaze.ErrMultipleStart},
		{"TwoGoals", []string{"SGG"}, nil, gridmaze.ErrMultipleGoal},
		{"UnknownMove", []string{"S.G"}, []gridmaze.Option{gridmaze.WithMoves("jump")}, gridmaze.ErrUnknownMove},
		{"DiagonalUnderConn4", []string{"S.G"}, []gridmaze.Option{gridmaze.WithMoves("up-left")}, gridmaze.ErrUnknownMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmaze.New(tc.rows, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestInBoundsAndOpen checks bounds and wall lookups on a 3×2 maze.
func TestInBoundsAndOpen(t *testing.T) {
	m, err := gridmaze.New([]string{
		"S#.",
		"..G",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("size = %dx%d; want 3x2", m.Width, m.Height)
	}
	if m.Start != (gridmaze.Position{X: 0, Y: 0}) || m.Goal != (gridmaze.Position{X: 2, Y: 1}) {
		t.Errorf("Start=%v Goal=%v", m.Start, m.Goal)
	}
	for _, p := range []gridmaze.Position{{0, 0}, {2, 0}, {1, 1}} {
		if !m.Open(p) {
			t.Errorf("Open(%v)=false; want true", p)
		}
	}
	for _, p := range []gridmaze.Position{{1, 0}, {-1, 0}, {3, 0}, {0, 2}} {
		if m.Open(p) {
			t.Errorf("Open(%v)=true; want false", p)
		}
	}
	if m.InBounds(gridmaze.Position{X: 2, Y: -1}) {
		t.Error("InBounds(2,-1)=true; want false")
	}
	if got := m.Coordinate(5); got != (gridmaze.Position{X: 2, Y: 1}) {
		t.Errorf("Coordinate(5) = %v; want (2,1)", got)
	}
}

// TestRows round-trips the text form.
func TestRows(t *testing.T) {
	rows := []string{"S.#", "#.G"}
	m, err := gridmaze.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := m.Rows(); !reflect.DeepEqual(got, rows) {
		t.Errorf("Rows() = %q; want %q", got, rows)
	}
}

//----------------------------------------------------------------------------//
// Problem Tests
//----------------------------------------------------------------------------//

// TestExpand_Conn4Order verifies clockwise move order and wall skipping.
func TestExpand_Conn4Order(t *testing.T) {
	m, err := gridmaze.New([]string{
		"...",
		".S#",
		"..G",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	succ := m.Expand(m.Start)
	var names []string
	for _, s := range succ {
		names = append(names, s.Action)
	}
	if want := []string{"up", "down", "left"}; !reflect.DeepEqual(names, want) {
		t.Errorf("actions = %v; want %v", names, want)
	}
}

// TestExpand_Conn8 verifies diagonal successors.
func TestExpand_Conn8(t *testing.T) {
	m, err := gridmaze.New([]string{"S.", ".G"}, gridmaze.WithConnectivity(gridmaze.Conn8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	var names []string
	for _, s := range m.Expand(m.Start) {
		names = append(names, s.Action)
	}
	if want := []string{"right", "down-right", "down"}; !reflect.DeepEqual(names, want) {
		t.Errorf("actions = %v; want %v", names, want)
	}
}

// TestDFS_Corridor3x1 is the 3×1 corridor with moves {right, left}.
func TestDFS_Corridor3x1(t *testing.T) {
	m, err := gridmaze.New([]string{"S.G"}, gridmaze.WithMoves("right", "left"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	res, err := dfs.DFS[gridmaze.Position](m)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	p, ok := res.Path()
	if !ok {
		t.Fatal("DFS found no path")
	}
	if want := []string{"right", "right"}; !reflect.DeepEqual(p.Actions(), want) {
		t.Errorf("Actions = %v; want %v", p.Actions(), want)
	}
	if n := len(p.VisitedStates()); n != 3 {
		t.Errorf("visited %d states; want 3", n)
	}
}

// TestDFS_Walled checks exhaustion when walls cut the goal off.
func TestDFS_Walled(t *testing.T) {
	m, err := gridmaze.New([]string{
		"S.#.",
		"..#G",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if m.Solvable() {
		t.Error("Solvable() = true; want false")
	}
	res, err := dfs.DFS[gridmaze.Position](m)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if res.Status != search.Exhausted {
		t.Errorf("Status = %v; want exhausted", res.Status)
	}
}

// TestBFS_ShortestVersusDFS compares path lengths in an open room.
func TestBFS_ShortestVersusDFS(t *testing.T) {
	m, err := gridmaze.New([]string{
		"S...",
		"....",
		"...G",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	bres, err := bfs.BFS[gridmaze.Position](m)
	if err != nil || !bres.Found() {
		t.Fatalf("BFS: found=%v err=%v", bres.Found(), err)
	}
	bp, _ := bres.Path()
	if bp.Len() != 5 {
		t.Errorf("BFS path length = %d; want 5 (Manhattan distance)", bp.Len())
	}

	dres, err := dfs.DFS[gridmaze.Position](m)
	if err != nil || !dres.Found() {
		t.Fatalf("DFS: found=%v err=%v", dres.Found(), err)
	}
	dp, _ := dres.Path()
	if dp.Len() < bp.Len() {
		t.Errorf("DFS path %d shorter than BFS path %d", dp.Len(), bp.Len())
	}
	// every step of a DFS path is a legal move between open cells
	states := dp.VisitedStates()
	for i := 1; i < len(states); i++ {
		a, b := states[i-1], states[i]
		if d := abs(a.X-b.X) + abs(a.Y-b.Y); d != 1 || !m.Open(b) {
			t.Errorf("illegal step %v→%v", a, b)
		}
	}
}

// TestReachable counts the open region around the start.
func TestReachable(t *testing.T) {
	m, err := gridmaze.New([]string{
		"S.#G",
		"#.#.",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := m.Reachable()
	want := []gridmaze.Position{{0, 0}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable() = %v; want %v", got, want)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestFromParams verifies the configuration form maps onto New's options.
func TestFromParams(t *testing.T) {
	m, err := gridmaze.FromParams(gridmaze.Params{Rows: []string{"S.G"}, Moves: []string{"right", "left"}})
	if err != nil {
		t.Fatalf("FromParams: %v", err)
	}
	if got := len(m.Moves()); got != 2 {
		t.Errorf("moves = %d, want 2", got)
	}

	m, err = gridmaze.FromParams(gridmaze.Params{Rows: []string{"S.", ".G"}, Connectivity: 8})
	if err != nil {
		t.Fatalf("FromParams conn8: %v", err)
	}
	if got := len(m.Moves()); got != 8 {
		t.Errorf("conn8 moves = %d, want 8", got)
	}

	if _, err = gridmaze.FromParams(gridmaze.Params{Rows: []string{"S.G"}, Connectivity: 6}); !errors.Is(err, gridmaze.ErrBadConnectivity) {
		t.Errorf("connectivity 6: err = %v, want ErrBadConnectivity", err)
	}
}
