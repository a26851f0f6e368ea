// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"iter"
)

// NotFound is the index returned by FindIndex for an identifier that was never inserted.
const NotFound = -1

// DefaultWeight is the weight callers use for "plain" connections.
const DefaultWeight int64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called with an ID that already resolves.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrVertexNotFound indicates an edge endpoint ID does not resolve to a vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex is a single entry of the vertex store.
type Vertex[T any] struct {
	// ID is the caller-assigned identifier.
	ID int

	// Index is the dense position assigned at insertion time.
	Index int

	// Payload is stored as given; the graph never inspects it.
	Payload T
}

// Arc is one outgoing adjacency entry: the neighbor's index and the arc weight.
type Arc struct {
	To     int
	Weight int64
}

// Graph is the read capability every traversal strategy depends on.
// Implementations must keep Vertices, FindIndex and Neighbors index-consistent.
type Graph[T any] interface {
	// FindIndex resolves an ID to its index, or NotFound.
	FindIndex(id int) int

	// Vertices returns all vertices in index order.
	Vertices() []Vertex[T]

	// Neighbors yields (neighborIndex, weight) for every arc leaving index.
	// An out-of-range index yields nothing.
	Neighbors(index int) iter.Seq2[int, int64]

	// Order returns the number of vertices.
	Order() int
}

// MutableGraph extends Graph with the build-phase operations.
type MutableGraph[T any] interface {
	Graph[T]

	// AddVertex appends a vertex and returns its index.
	AddVertex(id int, payload T) (int, error)

	// AddEdge installs a directed arc from→to carrying weight.
	AddEdge(from, to int, weight int64, opts ...EdgeOption) error
}

// EdgeOption tweaks a single AddEdge call.
type EdgeOption func(*EdgeOptions)

// EdgeOptions is the resolved form of a set of EdgeOption values.
type EdgeOptions struct {
	// Mirror also installs the reverse arc to→from with the same weight.
	Mirror bool
}

// WithMirror installs the reverse arc as well, giving an undirected connection in one call.
func WithMirror() EdgeOption {
	return func(o *EdgeOptions) { o.Mirror = true }
}

// ResolveEdgeOptions applies opts in order over the zero EdgeOptions.
// Graph implementations outside this package use it to honor EdgeOption.
func ResolveEdgeOptions(opts ...EdgeOption) EdgeOptions {
	var o EdgeOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// GraphOption configures a graph at construction.
type GraphOption func(*GraphOptions)

// GraphOptions is the resolved form of a set of GraphOption values.
type GraphOptions struct {
	// Capacity preallocates room for this many vertices.
	Capacity int
}

// WithCapacity preallocates storage for n vertices. Negative n panics.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}

	return func(o *GraphOptions) { o.Capacity = n }
}

// ResolveGraphOptions applies opts in order over the zero GraphOptions.
func ResolveGraphOptions(opts ...GraphOption) GraphOptions {
	var o GraphOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
