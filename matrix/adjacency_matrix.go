// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/starlane/core"
)

// Matrix holds a graph as a vertex store plus a dense weight table.
//
// Invariant: len(rows) == store.Len() and every row has that same length.
type Matrix[T any] struct {
	store *core.VertexStore[T]
	rows  [][]int64
	arcs  int
}

// New returns an empty adjacency-matrix graph.
func New[T any](opts ...core.GraphOption) *Matrix[T] {
	o := core.ResolveGraphOptions(opts...)

	return &Matrix[T]{
		store: core.NewVertexStore[T](o.Capacity),
		rows:  make([][]int64, 0, o.Capacity),
	}
}

// AddVertex appends a vertex, growing the table to (n+1)×(n+1).
// Returns core.ErrDuplicateVertex if id already resolves.
//
// Time Complexity: O(V) amortized
func (m *Matrix[T]) AddVertex(id int, payload T) (int, error) {
	idx, err := m.store.Add(id, payload)
	if err != nil {
		return core.NotFound, err
	}
	for i := range m.rows {
		m.rows[i] = append(m.rows[i], 0)
	}
	m.rows = append(m.rows, make([]int64, idx+1))

	return idx, nil
}

// AddEdge stores weight in cell [from][to], overwriting any previous arc.
// weight 0 is rejected with ErrZeroWeight; unknown ids with core.ErrVertexNotFound.
// On error the table is untouched.
//
// Time Complexity: O(1)
func (m *Matrix[T]) AddEdge(from, to int, weight int64, opts ...core.EdgeOption) error {
	if weight == 0 {
		return fmt.Errorf("%w: %d→%d", ErrZeroWeight, from, to)
	}
	u, v, err := m.store.Resolve(from, to)
	if err != nil {
		return err
	}
	o := core.ResolveEdgeOptions(opts...)

	m.set(u, v, weight)
	if o.Mirror {
		m.set(v, u, weight)
	}

	return nil
}

// set writes a cell and keeps the arc counter in step.
func (m *Matrix[T]) set(u, v int, weight int64) {
	if m.rows[u][v] == 0 {
		m.arcs++
	}
	m.rows[u][v] = weight
}

// FindIndex resolves id to its index, or core.NotFound.
func (m *Matrix[T]) FindIndex(id int) int { return m.store.Find(id) }

// Vertices returns all vertices in index order.
func (m *Matrix[T]) Vertices() []core.Vertex[T] { return m.store.All() }

// Vertex returns the vertex at index.
func (m *Matrix[T]) Vertex(index int) (core.Vertex[T], bool) { return m.store.At(index) }

// Order returns the vertex count.
func (m *Matrix[T]) Order() int { return m.store.Len() }

// EdgeCount returns the number of non-zero cells.
func (m *Matrix[T]) EdgeCount() int { return m.arcs }

// Weight returns cell [u][v] by index; 0 means no arc (or index out of range).
func (m *Matrix[T]) Weight(u, v int) int64 {
	if u < 0 || u >= len(m.rows) || v < 0 || v >= len(m.rows) {
		return 0
	}

	return m.rows[u][v]
}

// Neighbors scans row index in ascending column order and yields every non-zero cell.
//
// Time Complexity: O(V)
func (m *Matrix[T]) Neighbors(index int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if index < 0 || index >= len(m.rows) {
			return
		}
		for v, w := range m.rows[index] {
			if w == 0 {
				continue
			}
			if !yield(v, w) {
				return
			}
		}
	}
}
