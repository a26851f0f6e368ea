// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: adjacency-list representation of a directed, weighted graph.
// Determinism:
//   - Neighbors(i) yields arcs in insertion order (row order).
// Concurrency:
//   - None. See Synchronized for a locked wrapper.

package core

import "iter"

// List stores a graph as a vertex store plus one adjacency row per vertex.
// Invariant: len(rows) == store.Len() at all times.
type List[T any] struct {
	store *VertexStore[T]
	rows  [][]Arc
	arcs  int
}

// NewList returns an empty adjacency-list graph.
func NewList[T any](opts ...GraphOption) *List[T] {
	o := ResolveGraphOptions(opts...)

	return &List[T]{
		store: NewVertexStore[T](o.Capacity),
		rows:  make([][]Arc, 0, o.Capacity),
	}
}

// AddVertex appends a vertex with an empty adjacency row.
// Returns ErrDuplicateVertex if id already resolves.
// Complexity: O(1) amortized.
func (g *List[T]) AddVertex(id int, payload T) (int, error) {
	idx, err := g.store.Add(id, payload)
	if err != nil {
		return NotFound, err
	}
	g.rows = append(g.rows, nil)

	return idx, nil
}

// AddEdge appends the arc from→to to the source row. Parallel arcs are kept.
// A mirrored self-loop is stored once.
// Any weight is accepted; Dijkstra requires non-negative weights but that is
// the caller's precondition, not checked here.
// Returns ErrVertexNotFound (graph untouched) if either ID is unknown.
// Complexity: O(1) amortized.
func (g *List[T]) AddEdge(from, to int, weight int64, opts ...EdgeOption) error {
	u, v, err := g.store.Resolve(from, to)
	if err != nil {
		return err
	}
	o := ResolveEdgeOptions(opts...)

	g.rows[u] = append(g.rows[u], Arc{To: v, Weight: weight})
	g.arcs++
	if o.Mirror && u != v {
		g.rows[v] = append(g.rows[v], Arc{To: u, Weight: weight})
		g.arcs++
	}

	return nil
}

// FindIndex resolves id to its index, or NotFound.
func (g *List[T]) FindIndex(id int) int { return g.store.Find(id) }

// Vertices returns all vertices in index order.
func (g *List[T]) Vertices() []Vertex[T] { return g.store.All() }

// Vertex returns the vertex at index.
func (g *List[T]) Vertex(index int) (Vertex[T], bool) { return g.store.At(index) }

// Order returns the vertex count.
func (g *List[T]) Order() int { return g.store.Len() }

// EdgeCount returns the number of stored arcs (mirrored arcs count twice).
func (g *List[T]) EdgeCount() int { return g.arcs }

// Neighbors iterates the stored adjacency row of index directly.
func (g *List[T]) Neighbors(index int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if index < 0 || index >= len(g.rows) {
			return
		}
		for _, a := range g.rows[index] {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}

// Row returns a copy of the adjacency row of index (nil if out of range).
func (g *List[T]) Row(index int) []Arc {
	if index < 0 || index >= len(g.rows) {
		return nil
	}
	out := make([]Arc, len(g.rows[index]))
	copy(out, g.rows[index])

	return out
}
