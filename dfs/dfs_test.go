package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dfs"
	"github.com/katalvlaran/starlane/matrix"
)

var variants = []struct {
	name string
	make func() core.MutableGraph[string]
}{
	{"list", func() core.MutableGraph[string] { return core.NewList[string]() }},
	{"matrix", func() core.MutableGraph[string] { return matrix.New[string]() }},
}

func newList() core.MutableGraph[string] { return core.NewList[string]() }

func build(t *testing.T, mk func() core.MutableGraph[string], names []string, edges [][2]int) core.MutableGraph[string] {
	t.Helper()
	g := mk()
	for i, name := range names {
		_, err := g.AddVertex(i+1, name)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], core.DefaultWeight))
	}

	return g
}

func visit(g core.Graph[string], startID int) []string {
	var out []string
	dfs.DFS[string](g, startID, dfs.WithOnVisit(func(v core.Vertex[string]) {
		out = append(out, v.Payload)
	}))

	return out
}

func TestDFS_FirstNeighborFirst(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B", "C"}, [][2]int{{1, 2}, {1, 3}})
			assert.Equal(t, []int{0, 1, 2}, dfs.DFS[string](g, 1))
			assert.Equal(t, []string{"A", "B", "C"}, visit(g, 1))
		})
	}
}

func TestDFS_GoesDeepBeforeWide(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			// A -> B -> D, A -> C; D is reached before C.
			g := build(t, tc.make, []string{"A", "B", "C", "D"}, [][2]int{{1, 2}, {1, 3}, {2, 4}})
			assert.Equal(t, []string{"A", "B", "D", "C"}, visit(g, 1))
		})
	}
}

func TestDFS_CycleVisitsOnce(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B", "C"}, [][2]int{{1, 2}, {2, 3}, {3, 1}, {2, 1}})
			assert.Equal(t, []string{"A", "B", "C"}, visit(g, 1))
		})
	}
}

func TestDFS_DiamondSharedChild(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			// D is pushed twice (from A and from B) but visited once.
			g := build(t, tc.make, []string{"A", "B", "C", "D"}, [][2]int{{1, 2}, {1, 4}, {2, 4}, {1, 3}})
			order := visit(g, 1)
			assert.Len(t, order, 4)
			assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, order)
			assert.Equal(t, "A", order[0])
			assert.Equal(t, "B", order[1])
		})
	}
}

func TestDFS_SingleAndUnknown(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"solo", "other"}, nil)
			assert.Equal(t, []string{"solo"}, visit(g, 1))
			assert.Nil(t, dfs.DFS[string](g, 99))
			assert.Empty(t, visit(g, 99))
		})
	}
}

func TestDFS_LongChainNoRecursion(t *testing.T) {
	const n = 200000
	g := core.NewList[int](core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_, _ = g.AddVertex(i, i)
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	order := dfs.DFS[int](g, 0)
	require.Len(t, order, n)
	assert.Equal(t, n-1, order[n-1])
}

func TestDetectCycles(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]int
		want  [][]int
	}{
		{"acyclic", [][2]int{{1, 2}, {2, 3}, {1, 3}}, nil},
		{"triangle", [][2]int{{2, 3}, {3, 1}, {1, 2}}, [][]int{{0, 1, 2, 0}}},
		{"self-loop", [][2]int{{1, 2}, {3, 3}}, [][]int{{2, 2}}},
		{"two rings", [][2]int{{1, 2}, {2, 1}, {3, 4}, {4, 3}}, [][]int{{0, 1, 0}, {2, 3, 2}}},
		{"rotated start", [][2]int{{4, 2}, {2, 3}, {3, 4}}, [][]int{{1, 2, 3, 1}}},
	}
	for _, tc := range cases {
		for _, v := range variants {
			t.Run(tc.name+"/"+v.name, func(t *testing.T) {
				g := build(t, v.make, []string{"A", "B", "C", "D"}, tc.edges)
				has, cycles := dfs.DetectCycles[string](g)
				assert.Equal(t, tc.want != nil, has)
				assert.Equal(t, tc.want, cycles)
			})
		}
	}
}

func TestDetectCycles_ParallelArcsReportedOnce(t *testing.T) {
	g := build(t, newList, []string{"A", "B"}, [][2]int{{1, 2}, {2, 1}, {2, 1}})
	has, cycles := dfs.DetectCycles[string](g)
	require.True(t, has)
	assert.Equal(t, [][]int{{0, 1, 0}}, cycles)
}

func TestDetectCycles_MirroredLane(t *testing.T) {
	g := build(t, newList, []string{"A", "B"}, nil)
	require.NoError(t, g.AddEdge(1, 2, core.DefaultWeight, core.WithMirror()))

	has, cycles := dfs.DetectCycles[string](g)
	require.True(t, has)
	assert.Equal(t, [][]int{{0, 1, 0}}, cycles)
}

func TestTopologicalSort(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			// D -> B -> A, D -> C -> A
			g := build(t, tc.make, []string{"A", "B", "C", "D"}, [][2]int{{4, 2}, {4, 3}, {2, 1}, {3, 1}})
			order, err := dfs.TopologicalSort[string](g)
			require.NoError(t, err)
			require.Len(t, order, 4)

			pos := make(map[int]int, len(order))
			for i, u := range order {
				pos[u] = i
			}
			for u := range g.Order() {
				for v := range g.Neighbors(u) {
					assert.Less(t, pos[u], pos[v], "arc %d -> %d", u, v)
				}
			}
			assert.Equal(t, []int{3, 2, 1, 0}, order)
		})
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.make, []string{"A", "B", "C"}, [][2]int{{1, 2}, {2, 3}, {3, 2}})
			order, err := dfs.TopologicalSort[string](g)
			require.ErrorIs(t, err, dfs.ErrCycleDetected)
			assert.Contains(t, err.Error(), "arc 3 -> 2")
			assert.Nil(t, order)
		})
	}
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort[string](newList())
	require.NoError(t, err)
	assert.Empty(t, order)
}
