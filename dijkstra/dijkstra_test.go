package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dijkstra"
	"github.com/katalvlaran/starlane/matrix"
)

type arc struct {
	from, to int
	w        int64
}

var variants = []struct {
	name string
	make func() core.MutableGraph[string]
}{
	{"list", func() core.MutableGraph[string] { return core.NewList[string]() }},
	{"matrix", func() core.MutableGraph[string] { return matrix.New[string]() }},
}

func build(t *testing.T, mk func() core.MutableGraph[string], names []string, arcs []arc) core.MutableGraph[string] {
	t.Helper()
	g := mk()
	for i, name := range names {
		_, err := g.AddVertex(i+1, name)
		require.NoError(t, err)
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, a.w))
	}

	return g
}

func names(g core.Graph[string], route []int) []string {
	var out []string
	for _, idx := range route {
		out = append(out, g.Vertices()[idx].Payload)
	}

	return out
}

func TestDijkstra_DetourBeatsDirectLane(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B", "C"}, []arc{{1, 2, 4}, {2, 3, 5}, {1, 3, 10}})

			assert.Equal(t, int64(9), dijkstra.Distance[string](g, 1, 3))
			route := dijkstra.Path[string](g, 1, 3)
			assert.Equal(t, []int{0, 1, 2}, route)
			assert.Equal(t, []string{"A", "B", "C"}, names(g, route))
			assert.Equal(t, int64(9), dijkstra.PathWeight[string](g, route))
		})
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B", "C"}, []arc{{1, 2, 3}})

			assert.Equal(t, dijkstra.NoPath, dijkstra.Distance[string](g, 1, 3))
			assert.Empty(t, dijkstra.Path[string](g, 1, 3))
			assert.Equal(t, int64(3), dijkstra.Distance[string](g, 1, 2))
		})
	}
}

func TestDijkstra_TieBrokenByLowerIndexRoute(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B", "C", "D"},
				[]arc{{1, 2, 1}, {2, 4, 1}, {1, 3, 2}, {3, 4, 1}})

			assert.Equal(t, int64(2), dijkstra.Distance[string](g, 1, 4))
			assert.Equal(t, []string{"A", "B", "D"}, names(g, dijkstra.Path[string](g, 1, 4)))
		})
	}
}

func TestDijkstra_SelfRoute(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B"}, []arc{{1, 2, 7}})

			assert.Zero(t, dijkstra.Distance[string](g, 2, 2))
			assert.Equal(t, []int{1}, dijkstra.Path[string](g, 2, 2))
			assert.Zero(t, dijkstra.PathWeight[string](g, []int{1}))
		})
	}
}

func TestDijkstra_UnknownIDs(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B"}, []arc{{1, 2, 7}})

			assert.Equal(t, dijkstra.NoPath, dijkstra.Distance[string](g, 9, 2))
			assert.Equal(t, dijkstra.NoPath, dijkstra.Distance[string](g, 1, 9))
			assert.Nil(t, dijkstra.Path[string](g, 9, 2))
			assert.Nil(t, dijkstra.Path[string](g, 1, 9))

			// Graph still usable afterwards.
			assert.Equal(t, int64(7), dijkstra.Distance[string](g, 1, 2))
		})
	}
}

func TestDijkstra_StaleEntriesSkipped(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			// C is first queued at 100 via A, then improved to 3 via B; the
			// stale entry must not relax D with 100+1.
			g := build(t, tc.make, []string{"A", "B", "C", "D"},
				[]arc{{1, 3, 100}, {1, 2, 1}, {2, 3, 2}, {3, 4, 1}})

			assert.Equal(t, int64(4), dijkstra.Distance[string](g, 1, 4))
			assert.Equal(t, []string{"A", "B", "C", "D"}, names(g, dijkstra.Path[string](g, 1, 4)))
		})
	}
}

func TestPathWeight_ParallelAndMissing(t *testing.T) {
	g := core.NewList[string]()
	for i, n := range []string{"A", "B", "C"} {
		_, _ = g.AddVertex(i+1, n)
	}
	require.NoError(t, g.AddEdge(1, 2, 8))
	require.NoError(t, g.AddEdge(1, 2, 3))

	assert.Equal(t, int64(3), dijkstra.PathWeight[string](g, []int{0, 1}), "cheapest parallel arc")
	assert.Equal(t, dijkstra.NoPath, dijkstra.PathWeight[string](g, []int{0, 1, 2}))
	assert.Zero(t, dijkstra.PathWeight[string](g, nil))
	assert.Equal(t, int64(3), dijkstra.Distance[string](g, 1, 2))
}

func TestReconstruct(t *testing.T) {
	// 0 <- 1 <- 3, 2 orphan
	parent := []int{-1, 0, -1, 1}
	assert.Equal(t, []int{0, 1, 3}, dijkstra.Reconstruct(parent, 0, 3))
	assert.Equal(t, []int{0}, dijkstra.Reconstruct(parent, 0, 0))
	assert.Nil(t, dijkstra.Reconstruct(parent, 0, 2))
	assert.Nil(t, dijkstra.Reconstruct(parent, 0, 7))
	assert.Nil(t, dijkstra.Reconstruct([]int{1, 0, 0}, 2, 0), "cycle never reaching start")
}

// bellmanFord is an independent oracle for random-graph checks.
func bellmanFord(n int, arcs []arc, s int) []int64 {
	const inf = int64(1) << 62
	d := make([]int64, n)
	for i := range d {
		d[i] = inf
	}
	d[s] = 0
	for k := 0; k < n; k++ {
		for _, a := range arcs {
			if d[a.from] != inf && d[a.from]+a.w < d[a.to] {
				d[a.to] = d[a.from] + a.w
			}
		}
	}
	for i := range d {
		if d[i] == inf {
			d[i] = dijkstra.NoPath
		}
	}

	return d
}

func TestDijkstra_RandomGraphsAgreeWithOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		n := 2 + rnd.Intn(12)
		var arcs []arc // zero-based ids == indices
		for i := 0; i < n*2; i++ {
			arcs = append(arcs, arc{rnd.Intn(n), rnd.Intn(n), 1 + rnd.Int63n(9)})
		}
		for _, tc := range variants {
			g := tc.make()
			for i := 0; i < n; i++ {
				_, err := g.AddVertex(i, "")
				require.NoError(t, err)
			}
			for _, a := range arcs {
				require.NoError(t, g.AddEdge(a.from, a.to, a.w))
			}

			want := bellmanFord(n, arcs, 0)
			for e := 0; e < n; e++ {
				got := dijkstra.Distance[string](g, 0, e)
				route := dijkstra.Path[string](g, 0, e)
				if tc.name == "list" {
					require.Equal(t, want[e], got, "round %d target %d", round, e)
				}
				if got == dijkstra.NoPath {
					require.Empty(t, route)
					continue
				}
				require.Equal(t, 0, route[0])
				require.Equal(t, e, route[len(route)-1])
				require.Equal(t, got, dijkstra.PathWeight[string](g, route), "%s round %d target %d", tc.name, round, e)
			}
		}
	}
}
