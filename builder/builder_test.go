package builder_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/builder"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/matrix"
)

// arcs flattens g into (fromID, toID, weight) triples in neighbor order.
func arcs(g core.Graph[string]) [][3]int64 {
	var out [][3]int64
	vs := g.Vertices()
	for _, v := range vs {
		for to, w := range g.Neighbors(v.Index) {
			out = append(out, [3]int64{int64(v.ID), int64(vs[to].ID), w})
		}
	}

	return out
}

func TestPath(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.Path[string](4)))
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}}, arcs(g))
}

func TestCycleMirrored(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, []builder.Option[string]{builder.WithMirror[string]()}, builder.Cycle[string](3)))
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []core.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 1}}, g.Row(0))
}

func TestStar(t *testing.T) {
	g := matrix.New[string]()
	require.NoError(t, builder.Build(g, nil, builder.Star[string](4)))
	assert.Equal(t, [][3]int64{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}}, arcs(g))
}

func TestWheel(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.Wheel[string](5)))
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4+2*4, g.EdgeCount())
	assert.Equal(t, []core.Arc{{To: 1, Weight: 1}, {To: 4, Weight: 1}}, g.Row(0))
	assert.Equal(t, []core.Arc{
		{To: 0, Weight: 1}, {To: 1, Weight: 1}, {To: 2, Weight: 1}, {To: 3, Weight: 1},
	}, g.Row(4))
}

func TestWheelMirrored(t *testing.T) {
	g := matrix.New[string]()
	require.NoError(t, builder.Build(g, []builder.Option[string]{builder.WithMirror[string]()},
		builder.Wheel[string](5)))
	assert.Equal(t, 2*4+2*4, g.EdgeCount())
	for rim := 0; rim < 4; rim++ {
		assert.Equal(t, int64(1), g.Weight(rim, 4))
		assert.Equal(t, int64(1), g.Weight(4, rim))
	}
}

func TestComplete(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.Complete[string](4)))
	assert.Equal(t, 12, g.EdgeCount())
	for i := 0; i < 4; i++ {
		assert.Len(t, g.Row(i), 3)
	}
}

func TestGrid(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.Grid[string](2, 3)))
	// 0 1 2
	// 3 4 5
	assert.Equal(t, [][3]int64{
		{0, 1, 1}, {0, 3, 1},
		{1, 2, 1}, {1, 4, 1},
		{2, 5, 1},
		{3, 4, 1},
		{4, 5, 1},
	}, arcs(g))
}

func TestSkipChain(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.SkipChain[string](7)))
	assert.Equal(t, []core.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 2}, {To: 5, Weight: 5}}, g.Row(0))
	assert.Equal(t, []core.Arc{{To: 6, Weight: 1}}, g.Row(5))
	assert.Empty(t, g.Row(6))

	err := builder.Build(core.NewList[string](), nil, builder.SkipChain[string](5, 1, 0))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_IDsPayloadsWeights(t *testing.T) {
	g := core.NewList[string]()
	opts := []builder.Option[string]{
		builder.WithIDOffset[string](100),
		builder.WithPayloadFn(func(i int) string { return "sys-" + strconv.Itoa(i) }),
		builder.WithWeightFn[string](func(*rand.Rand) int64 { return 7 }),
	}
	require.NoError(t, builder.Build(g, opts, builder.Path[string](3)))

	assert.Equal(t, 1, g.FindIndex(101))
	assert.Equal(t, "sys-2", g.Vertices()[2].Payload)
	assert.Equal(t, [][3]int64{{100, 101, 7}, {101, 102, 7}}, arcs(g))
}

func TestBuild_ComposeNeedsDistinctIDs(t *testing.T) {
	g := core.NewList[string]()
	err := builder.Build(g, nil, builder.Path[string](2), builder.Star[string](3))
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
	assert.Contains(t, err.Error(), "Star")

	err = builder.Build[string](g, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor[string]
		want error
	}{
		{"path", builder.Path[string](1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle[string](2), builder.ErrTooFewVertices},
		{"star", builder.Star[string](1), builder.ErrTooFewVertices},
		{"complete", builder.Complete[string](0), builder.ErrTooFewVertices},
		{"grid", builder.Grid[string](0, 3), builder.ErrTooFewVertices},
		{"skip", builder.SkipChain[string](1), builder.ErrTooFewVertices},
		{"sparse-n", builder.RandomSparse[string](0, 0.5), builder.ErrTooFewVertices},
		{"sparse-p", builder.RandomSparse[string](3, 1.5), builder.ErrInvalidProbability},
		{"sparse-rng", builder.RandomSparse[string](3, 0.5), builder.ErrNeedRandSource},
		{"wheel", builder.Wheel[string](3), builder.ErrTooFewVertices},
		{"regular-n", builder.RandomRegular[string](0, 0), builder.ErrTooFewVertices},
		{"regular-odd", builder.RandomRegular[string](5, 3), builder.ErrInvalidDegree},
		{"regular-d", builder.RandomRegular[string](4, 4), builder.ErrInvalidDegree},
		{"regular-neg", builder.RandomRegular[string](4, -1), builder.ErrInvalidDegree},
		{"regular-rng", builder.RandomRegular[string](4, 2), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewList[string]()
			require.ErrorIs(t, builder.Build(g, nil, tc.con), tc.want)
			assert.Zero(t, g.Order(), "validation happens before mutation")
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	run := func() [][3]int64 {
		g := core.NewList[string]()
		require.NoError(t, builder.Build(g,
			[]builder.Option[string]{builder.WithSeed[string](42)},
			builder.RandomSparse[string](12, 0.3)))

		return arcs(g)
	}
	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
	for _, a := range first {
		assert.NotEqual(t, a[0], a[1], "no self-loops")
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.RandomSparse[string](4, 1)))
	assert.Equal(t, 12, g.EdgeCount())

	g = core.NewList[string]()
	require.NoError(t, builder.Build(g, []builder.Option[string]{builder.WithMirror[string]()},
		builder.RandomSparse[string](4, 1)))
	assert.Equal(t, 12, g.EdgeCount(), "6 pairs, mirrored")

	g = core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.RandomSparse[string](4, 0)))
	assert.Zero(t, g.EdgeCount())
}

func TestOptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDFn[string](nil) })
	assert.Panics(t, func() { builder.WithPayloadFn[string](nil) })
	assert.Panics(t, func() { builder.WithWeightFn[string](nil) })
	assert.Panics(t, func() { builder.WithRand[string](nil) })
}

func TestRandomRegular(t *testing.T) {
	const n, d = 10, 3
	run := func() *core.List[string] {
		g := core.NewList[string]()
		require.NoError(t, builder.Build(g,
			[]builder.Option[string]{builder.WithSeed[string](42)},
			builder.RandomRegular[string](n, d)))

		return g
	}
	g := run()
	require.Equal(t, n, g.Order())
	assert.Equal(t, n*d, g.EdgeCount())
	for u := 0; u < n; u++ {
		row := g.Row(u)
		require.Len(t, row, d, "vertex %d", u)
		seen := map[int]bool{}
		for _, a := range row {
			assert.NotEqual(t, u, a.To, "no self-loops")
			assert.False(t, seen[a.To], "no parallel lanes at %d", u)
			seen[a.To] = true
		}
	}
	assert.Equal(t, arcs(g), arcs(run()))
}

func TestRandomRegular_ZeroDegree(t *testing.T) {
	g := core.NewList[string]()
	require.NoError(t, builder.Build(g, nil, builder.RandomRegular[string](3, 0)))
	assert.Equal(t, 3, g.Order())
	assert.Zero(t, g.EdgeCount())
}
