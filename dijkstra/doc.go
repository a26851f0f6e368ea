// SPDX-License-Identifier: MIT

// Package dijkstra computes single-pair shortest paths over any core.Graph.
//
// Two entry points share one relaxation loop:
//
//   - Distance returns the minimum total weight from start to end, or NoPath.
//     It runs until the queue drains.
//   - Path returns the vertex indices of one minimum-weight route, start and
//     end included, or nil. It stops as soon as end is settled.
//
// Reconstruct turns a parent table into a route; PathWeight re-prices a route
// against a graph, so Distance(g, s, e) == PathWeight(g, Path(g, s, e)) holds
// for every reachable pair.
//
// Queue discipline is "lazy decrease-key": an improved vertex is pushed again
// and stale pops (priority greater than the recorded distance) are skipped.
//
// Unknown start, unknown end and unreachable end are indistinguishable to the
// caller: all yield NoPath (Distance) or nil (Path).
//
// Weights must be non-negative. This is not checked; with negative arcs the
// results are unspecified.
//
// Complexity: O((V + E) log E) time, O(V + E) memory on a list.
package dijkstra
