package cycle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/cycle"
)

// TestFind_NilGraph rejects nil input.
func TestFind_NilGraph(t *testing.T) {
	_, err := cycle.Find(nil)
	assert.ErrorIs(t, err, cycle.ErrGraphNil)
}

// TestFind_Acyclic reports no cycle on a chain.
func TestFind_Acyclic(t *testing.T) {
	g := core.NewGraph(3)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 3)

	_, err := cycle.Find(g)
	assert.ErrorIs(t, err, cycle.ErrNoCycle)
}

// TestFind_TwoVertexCycle covers the parallel reverse edge case.
func TestFind_TwoVertexCycle(t *testing.T) {
	g := core.NewGraph(4)
	g.AddEdge(2, 3, 2)
	g.AddEdge(3, 2, 5)

	walk, err := cycle.Find(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, walk.Vertices)
	assert.Equal(t, []int{0, 1}, walk.EdgeIDs)
	assert.Equal(t, int64(2), walk.Bottleneck)
}

// TestFind_ThreeVertexCycle checks closure and closing edge first.
func TestFind_ThreeVertexCycle(t *testing.T) {
	g := core.NewGraph(3)
	g.AddEdge(2, 3, 4) // id 0
	g.AddEdge(3, 1, 6) // id 1
	g.AddEdge(1, 2, 5) // id 2

	walk, err := cycle.Find(g)
	require.NoError(t, err)
	// scan starts at u=1: closing edge 1→2, back-walk 2→3→1
	assert.Equal(t, []int{1, 2, 3, 1}, walk.Vertices)
	assert.Equal(t, []int{2, 0, 1}, walk.EdgeIDs)
	assert.Equal(t, int64(4), walk.Bottleneck)
	assert.Equal(t, walk.Vertices[0], walk.Vertices[len(walk.Vertices)-1])
}

// TestFind_SelfLoop yields a closed single-edge cycle.
func TestFind_SelfLoop(t *testing.T) {
	g := core.NewGraph(3)
	g.AddEdge(2, 2, 7)

	walk, err := cycle.Find(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, walk.Vertices)
	assert.Equal(t, []int{0}, walk.EdgeIDs)
	assert.Equal(t, int64(7), walk.Bottleneck)
}

// TestFind_SkipsUnclosableCandidates moves past edges that lead nowhere.
func TestFind_SkipsUnclosableCandidates(t *testing.T) {
	g := core.NewGraph(5)
	g.AddEdge(1, 2, 1) // 2 never returns to 1
	g.AddEdge(3, 4, 2)
	g.AddEdge(4, 3, 2)

	var tried [][2]int
	walk, err := cycle.Find(g, cycle.WithOnCandidate(func(u, v, _ int) {
		tried = append(tried, [2]int{u, v})
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 3}, walk.Vertices)
	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, tried)
}

// TestFind_ElementaryBackWalk never repeats a vertex inside the cycle.
func TestFind_ElementaryBackWalk(t *testing.T) {
	g := core.NewGraph(5)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 2, 1) // inner loop 2⇄3
	g.AddEdge(3, 4, 1)
	g.AddEdge(4, 1, 1)

	walk, err := cycle.Find(g)
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, v := range walk.Vertices[:len(walk.Vertices)-1] {
		assert.False(t, seen[v], "vertex %d repeated", v)
		seen[v] = true
	}
	assert.Equal(t, []int{1, 2, 3, 4, 1}, walk.Vertices)
}

// TestFind_ZeroFlowIgnored ignores exhausted edges.
func TestFind_ZeroFlowIgnored(t *testing.T) {
	g := core.NewGraph(2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 1, 0)

	_, err := cycle.Find(g)
	assert.ErrorIs(t, err, cycle.ErrNoCycle)
}

// TestFind_OutOfRangeTailNotScanned matches the 1..V candidate scan.
func TestFind_OutOfRangeTailNotScanned(t *testing.T) {
	g := core.NewGraph(2)
	g.AddEdge(5, 6, 1)
	g.AddEdge(6, 5, 1)

	_, err := cycle.Find(g)
	assert.ErrorIs(t, err, cycle.ErrNoCycle)
}

// TestFind_Cancelled surfaces the context error.
func TestFind_Cancelled(t *testing.T) {
	g := core.NewGraph(2)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cycle.Find(g, cycle.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFind_HugeVertexCount scans only vertices that own edges.
func TestFind_HugeVertexCount(t *testing.T) {
	const v = 1_000_000_000_000_000
	g := core.NewGraph(v)
	g.AddEdge(v-1, 7, 4)
	g.AddEdge(7, v-1, 3)

	walk, err := cycle.Find(g)
	require.NoError(t, err)
	assert.Equal(t, []int{7, v - 1, 7}, walk.Vertices)
	assert.Equal(t, int64(3), walk.Bottleneck)
}
