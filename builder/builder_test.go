package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowdecomp/builder"
	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/flow"
	"github.com/katalvlaran/flowdecomp/verify"
)

func TestBuildNetwork_Deterministic(t *testing.T) {
	net, err := builder.BuildNetwork(4, nil,
		builder.Chain(3),
		builder.Route(2, 1, 3, 4),
		builder.Loop(2, 2, 3),
	)
	require.NoError(t, err)

	g := net.Graph()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, map[core.EdgeKey]int64{
		{From: 1, To: 2}: 3,
		{From: 2, To: 3}: 5,
		{From: 3, To: 4}: 5,
		{From: 1, To: 3}: 2,
		{From: 3, To: 2}: 2,
	}, g.FlowByPair())

	// first-use order
	var order []core.EdgeKey
	for _, e := range g.Edges() {
		order = append(order, e.Key())
	}
	assert.Equal(t, []core.EdgeKey{
		{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 1, To: 3}, {From: 3, To: 2},
	}, order)

	truth := net.Truth()
	assert.Equal(t, []flow.Path{
		{Weight: 3, Vertices: []int{1, 2, 3, 4}},
		{Weight: 2, Vertices: []int{1, 3, 4}},
	}, truth.Paths)
	assert.Equal(t, []flow.Cycle{{Weight: 2, Vertices: []int{2, 3, 2}}}, truth.Cycles)
	assert.NoError(t, verify.Check(g, truth))
}

func TestLoop_AcceptsClosedAndSelfLoop(t *testing.T) {
	net, err := builder.BuildNetwork(3, nil,
		builder.Loop(1, 2, 3, 2),
		builder.Loop(4, 2),
	)
	require.NoError(t, err)
	truth := net.Truth()
	assert.Equal(t, []int{2, 3, 2}, truth.Cycles[0].Vertices)
	assert.Equal(t, []int{2, 2}, truth.Cycles[1].Vertices)
	assert.Equal(t, 3, net.EdgeCount())
}

func TestConstructorErrors(t *testing.T) {
	tests := []struct {
		name string
		v    int
		con  builder.Constructor
		want error
	}{
		{"zero weight", 3, builder.Route(0, 1, 2, 3), builder.ErrInvalidWeight},
		{"short route", 3, builder.Route(1, 3), builder.ErrTooFewVertices},
		{"wrong sink", 3, builder.Route(1, 1, 2), builder.ErrBadEndpoints},
		{"out of range", 3, builder.Route(1, 1, 7, 3), builder.ErrVertexOutOfRange},
		{"empty loop", 3, builder.Loop(1), builder.ErrTooFewVertices},
		{"random without rng", 5, builder.RandomRoutes(1), builder.ErrNeedRandSource},
		{"negative count", 5, builder.RandomLoops(-1), builder.ErrTooFewVertices},
		{"nil constructor", 3, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildNetwork(tc.v, nil, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildNetwork(1, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildNetwork(3, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomLoops(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildNetwork(3, []builder.BuilderOption{builder.WithShuffledEdges()}, builder.Chain(1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandom_SeededAndValid(t *testing.T) {
	build := func(seed int64) *builder.Network {
		net, err := builder.BuildNetwork(10,
			[]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformWeightFn(1, 20)),
				builder.WithShuffledEdges(),
			},
			builder.RandomRoutes(4),
			builder.RandomLoops(3),
		)
		require.NoError(t, err)
		return net
	}

	a, b := build(7), build(7)
	assert.Equal(t, a.Graph().Edges(), b.Graph().Edges())
	assert.Equal(t, a.Truth(), b.Truth())

	truth := a.Truth()
	require.Len(t, truth.Paths, 4)
	require.Len(t, truth.Cycles, 3)
	for _, p := range truth.Paths {
		assert.GreaterOrEqual(t, p.Weight, int64(1))
		assert.LessOrEqual(t, p.Weight, int64(20))
	}
	for _, c := range truth.Cycles {
		assert.GreaterOrEqual(t, len(c.Vertices), 3)
		assert.Equal(t, c.Vertices[0], c.Vertices[len(c.Vertices)-1])
	}
	assert.NoError(t, verify.Check(a.Graph(), truth))
}

func TestWithRand_MatchesWithSeed(t *testing.T) {
	build := func(opt builder.BuilderOption) *builder.Network {
		net, err := builder.BuildNetwork(8, []builder.BuilderOption{opt}, builder.RandomRoutes(3), builder.RandomLoops(2))
		require.NoError(t, err)
		return net
	}

	seeded := build(builder.WithSeed(11))
	explicit := build(builder.WithRand(rand.New(rand.NewSource(11))))
	assert.Equal(t, seeded.Truth(), explicit.Truth())
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestTruthIsACopy(t *testing.T) {
	net, err := builder.BuildNetwork(3, nil, builder.Chain(1))
	require.NoError(t, err)
	net.Truth().Paths[0].Vertices[0] = 99
	assert.Equal(t, 1, net.Truth().Paths[0].Vertices[0])
}

func TestWeightFnPanics(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil))
}
