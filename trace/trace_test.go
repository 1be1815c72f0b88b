package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesearch/dfs"
	"github.com/katalvlaran/treesearch/search"
	"github.com/katalvlaran/treesearch/trace"
)

// corridor is a 1-D maze of width cells with moves "right" then "left".
type corridor struct {
	width, start, goal int
}

func (c corridor) InitialState() int { return c.start }

func (c corridor) IsGoal(s int) bool { return s == c.goal }

func (c corridor) Expand(s int) []search.Successor[int] {
	var out []search.Successor[int]
	if s+1 < c.width {
		out = append(out, search.Successor[int]{Action: "right", State: s + 1})
	}
	if s-1 >= 0 {
		out = append(out, search.Successor[int]{Action: "left", State: s - 1})
	}

	return out
}

// parents is a TreeView over an explicit parent table.
type parents []search.NodeID

func (p parents) Len() int { return len(p) }
func (p parents) Parent(id search.NodeID) search.NodeID { return p[id] }
func (p parents) Depth(id search.NodeID) int {
	d := 0
	for cur := p[id]; cur != search.NoNode; cur = p[cur] {
		d++
	}
	return d
}

func TestRecorder_DFSRun(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := dfs.DFS[int](corridor{width: 4, start: 0, goal: 3}, dfs.WithObserver(rec))
	require.NoError(t, err)
	require.True(t, res.Found())

	assert.Equal(t, res.Tree.Len(), rec.Len())
	assert.Equal(t, res.Goal, rec.Goal())
	assert.Equal(t, search.NodeID(2), rec.Expanding())
	assert.Equal(t, search.NodeID(1), rec.Previous())

	assert.Equal(t, []trace.Category{
		trace.Expanded,    // 0: root
		trace.Expanded,    // 1: state 1
		trace.Expanding,   // 2: state 2, parent of the goal
		trace.NotInMemory, // 3: state 0 again, pruned by the ancestor check
		trace.Goal,        // 4: state 3
		trace.NotInMemory, // 5: state 1 again, generated with the goal
	}, rec.Categories())

	frames := rec.Frames()
	require.Len(t, frames, 6)
	assert.Equal(t, search.CheckpointRoot, frames[0].Checkpoint)
	assert.Equal(t, 1, frames[1].FrontierSize)
	assert.Equal(t, search.CheckpointGoal, frames[5].Checkpoint)
	assert.Equal(t, search.GoalFound, frames[5].Status)

	counts := rec.Counts()
	assert.Equal(t, 2, counts[trace.Expanded])
	assert.Equal(t, 2, counts[trace.NotInMemory])
}

func TestRecorder_FrontierFlags(t *testing.T) {
	tv := parents{search.NoNode, 0, 0, 1}
	rec := trace.NewRecorder()

	require.NoError(t, rec.Observe(search.Event{Checkpoint: search.CheckpointPop, Node: 0, Frontier: []search.NodeID{1, 2}, Tree: tv}))
	assert.Equal(t, trace.Expanding, rec.Category(0))
	assert.Equal(t, trace.InFrontier, rec.Category(1))
	assert.Equal(t, trace.InFrontier, rec.Category(2))
	assert.Equal(t, trace.NotInMemory, rec.Category(3))

	require.NoError(t, rec.Observe(search.Event{Checkpoint: search.CheckpointPop, Node: 2, Frontier: []search.NodeID{1}, Tree: tv}))
	assert.Equal(t, trace.Expanded, rec.Category(0))
	assert.Equal(t, trace.InFrontier, rec.Category(1))
	assert.Equal(t, trace.Expanding, rec.Category(2))

	m, ok := rec.Meta(0)
	require.True(t, ok)
	assert.True(t, m.InExplored)
	assert.True(t, m.InMemory)
	assert.False(t, m.InFrontier)

	require.NoError(t, rec.Observe(search.Event{Checkpoint: search.CheckpointPop, Node: 1, Tree: tv}))
	require.NoError(t, rec.Observe(search.Event{Checkpoint: search.CheckpointExhausted, Node: search.NoNode, Tree: tv}))
	assert.Equal(t, search.NoNode, rec.Expanding())
	assert.Equal(t, search.NodeID(1), rec.Previous())
	for id := search.NodeID(0); id < 3; id++ {
		assert.Equal(t, trace.Expanded, rec.Category(id), "node %d", id)
	}
}

func TestRecorder_GoalWins(t *testing.T) {
	tv := parents{search.NoNode, 0}
	rec := trace.NewRecorder()
	require.NoError(t, rec.Observe(search.Event{Checkpoint: search.CheckpointPop, Node: 0, Tree: tv}))
	require.NoError(t, rec.Observe(search.Event{Checkpoint: search.CheckpointGoal, Node: 0, Tree: tv}))
	assert.Equal(t, trace.Goal, rec.Category(0), "goal outranks expanding")

	m, _ := rec.Meta(1)
	assert.False(t, m.InMemory)
	_, ok := rec.Meta(7)
	assert.False(t, ok)
	assert.Equal(t, trace.NotInMemory, rec.Category(7))
}

func TestRecorder_MaxFrames(t *testing.T) {
	rec := trace.NewRecorder(trace.WithMaxFrames(2))
	_, err := dfs.DFS[int](corridor{width: 4, start: 0, goal: 3}, dfs.WithObserver(rec))
	require.NoError(t, err)

	frames := rec.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, search.CheckpointPop, frames[0].Checkpoint)
	assert.Equal(t, search.CheckpointGoal, frames[1].Checkpoint)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "goal", trace.Goal.String())
	assert.Equal(t, "in-frontier", trace.InFrontier.String())
	assert.Equal(t, "not-in-memory", trace.NotInMemory.String())
	assert.Equal(t, "category(99)", trace.Category(99).String())
	assert.Greater(t, int(trace.Goal), int(trace.Expanding))
	assert.Greater(t, int(trace.InFrontier), int(trace.Expanded))
}
