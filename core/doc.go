// SPDX-License-Identifier: MIT

// Package core defines the vertex store, the read/write capability contracts
// shared by every graph representation, and the adjacency-list representation.
//
// A graph G = (V,E) in starlane is built by explicit calls:
//
//	g := core.NewList[string]()
//	g.AddVertex(1, "Sun")   // index 0
//	g.AddVertex(2, "Earth") // index 1
//	g.AddEdge(1, 2, 4)      // directed arc 1→2, weight 4
//
// Identifiers vs. indices:
//
//   - ID is chosen by the caller, must be unique per graph and need not be
//     contiguous or ordered.
//   - Index is assigned once at insertion (0..n-1), never reused and never
//     renumbered. Every algorithm works on indices; FindIndex bridges the two.
//   - FindIndex returns NotFound (-1) for an unknown ID, never 0.
//
// Capability contract:
//
//	Graph[T]         FindIndex, Vertices, Neighbors, Order  (read-only, used by bfs/dfs/dijkstra)
//	MutableGraph[T]  Graph[T] + AddVertex, AddEdge           (build phase)
//
// core.List[T] and matrix.Matrix[T] both satisfy MutableGraph[T], so any
// traversal runs unmodified on either storage.
//
// Edges:
//
//   - AddEdge installs ONE directed arc. Undirected connections need two calls,
//     or a single call with WithMirror().
//   - Unresolved endpoints make AddEdge fail with ErrVertexNotFound; the graph
//     is left untouched.
//   - The list representation keeps parallel arcs in insertion order and
//     accepts any integer weight, including 0.
//
// Errors:
//
//	ErrDuplicateVertex - AddVertex with an ID that already resolves.
//	ErrVertexNotFound  - AddEdge with an unknown endpoint ID.
//
// Concurrency:
//
//	Graphs are NOT safe for concurrent mutation. Concurrent read-only
//	traversals over a graph that is no longer mutated are fine. Integrators
//	that need to interleave writers and readers wrap the graph in
//	Synchronized, which holds a sync.RWMutex across whole traversals.
package core
