// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over any core.Graph.
//
// What
//
//   - BFS visits every vertex reachable from a start vertex in non-decreasing
//     hop count and returns the visitation order as dense indices.
//   - WithOnVisit injects a callback invoked once per visited vertex, in order.
//   - WithMaxDepth bounds the hop count; WithFilter closes individual arcs.
//
// Semantics
//
//   - The frontier is a pqueue.Queue with a constant priority, i.e. a FIFO.
//   - Vertices are marked visited when enqueued, so no vertex is enqueued twice.
//   - Neighbors are expanded in the graph's natural order: insertion order for
//     core.List, ascending index for matrix.Matrix.
//   - An unknown start ID visits nothing and returns nil.
//
// Complexity: O(V + E) time and O(V) extra memory on a list; O(V²) on a matrix.
package bfs
