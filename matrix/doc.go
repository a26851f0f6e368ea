// SPDX-License-Identifier: MIT

// Package matrix provides the adjacency-matrix graph representation.
//
// Matrix[T] pairs a core.VertexStore with a dense N×N weight table:
//
//	rows[u][v] = weight of arc u→v, or 0 when there is no arc.
//
// It satisfies core.MutableGraph[T], so bfs, dfs, dijkstra and strategy run on
// it exactly as they run on core.List[T].
//
// Zero weight is reserved:
//
//	Because 0 means "absent", a zero-weight arc cannot be represented. AddEdge
//	rejects weight 0 with ErrZeroWeight instead of silently dropping the arc.
//	Use core.List when zero-weight arcs matter.
//
// Parallel arcs:
//
//	One cell per ordered pair. A second AddEdge(u, v, w) overwrites the cell.
//	FromGraph collapses parallel arcs of its source to the cheapest one.
//
// Neighbors(i) scans row i in ascending column order, which is the natural
// order DFS preserves.
//
// Complexity:
//
//   - AddVertex: O(V) (every row grows by one column, plus one new row).
//   - AddEdge / Weight: O(1).
//   - Neighbors: O(V) per row, so Dijkstra on a Matrix is O(V²).
//   - Memory: O(V²).
package matrix
