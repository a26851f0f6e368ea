package bfs_test

import (
	"testing"

	"github.com/katalvlaran/starlane/bfs"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/matrix"
)

const benchOrder = 100

// skipChain links i->i+1, i->i+2 and i->i+5 with weights 1, 2 and 5.
func skipChain(g core.MutableGraph[int]) {
	for i := 0; i < benchOrder; i++ {
		_, _ = g.AddVertex(i, i)
	}
	for i := 0; i < benchOrder; i++ {
		for _, skip := range []int{1, 2, 5} {
			if i+skip < benchOrder {
				_ = g.AddEdge(i, i+skip, int64(skip))
			}
		}
	}
}

func BenchmarkBFS_List(b *testing.B) {
	g := core.NewList[int](core.WithCapacity(benchOrder))
	skipChain(g)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.BFS[int](g, 0)
	}
}

func BenchmarkBFS_Matrix(b *testing.B) {
	g := matrix.New[int](core.WithCapacity(benchOrder))
	skipChain(g)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.BFS[int](g, 0)
	}
}
