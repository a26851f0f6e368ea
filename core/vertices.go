// SPDX-License-Identifier: MIT
//
// File: vertices.go
// Role: append-only vertex table shared by the list and matrix representations.
// Determinism:
//   - All() returns vertices in index (insertion) order.

package core

import "fmt"

// VertexStore maps dense indices to caller identifiers and payloads.
// Lookup by ID goes through a hash map; indices never change once assigned.
type VertexStore[T any] struct {
	vertices []Vertex[T]
	index    map[int]int // ID → index
}

// NewVertexStore returns an empty store with room for capacity vertices.
func NewVertexStore[T any](capacity int) *VertexStore[T] {
	return &VertexStore[T]{
		vertices: make([]Vertex[T], 0, capacity),
		index:    make(map[int]int, capacity),
	}
}

// Add appends a vertex and returns its index.
// Returns ErrDuplicateVertex (and changes nothing) if id already resolves.
// Complexity: O(1) amortized.
func (s *VertexStore[T]) Add(id int, payload T) (int, error) {
	if _, exists := s.index[id]; exists {
		return NotFound, fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
	}
	idx := len(s.vertices)
	s.vertices = append(s.vertices, Vertex[T]{ID: id, Index: idx, Payload: payload})
	s.index[id] = idx

	return idx, nil
}

// Find resolves id to its index, or NotFound.
func (s *VertexStore[T]) Find(id int) int {
	if idx, ok := s.index[id]; ok {
		return idx
	}

	return NotFound
}

// Resolve looks up both endpoints of an arc, wrapping ErrVertexNotFound with
// the first ID that fails to resolve.
func (s *VertexStore[T]) Resolve(from, to int) (int, int, error) {
	u := s.Find(from)
	if u == NotFound {
		return NotFound, NotFound, fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	v := s.Find(to)
	if v == NotFound {
		return NotFound, NotFound, fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	return u, v, nil
}

// At returns the vertex stored at idx.
func (s *VertexStore[T]) At(idx int) (Vertex[T], bool) {
	if idx < 0 || idx >= len(s.vertices) {
		var zero Vertex[T]
		return zero, false
	}

	return s.vertices[idx], true
}

// All returns the vertices in index order. The slice is shared; callers must not modify it.
func (s *VertexStore[T]) All() []Vertex[T] { return s.vertices }

// Len returns the number of stored vertices.
func (s *VertexStore[T]) Len() int { return len(s.vertices) }
