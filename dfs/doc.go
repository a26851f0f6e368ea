// SPDX-License-Identifier: MIT

// Package dfs provides depth-first traversal over any core.Graph.
//
// DFS uses an explicit stack, so traversal depth is bounded by memory rather
// than by the goroutine stack. A vertex is marked when popped, not when pushed;
// the same index may therefore sit on the stack more than once, and later
// copies are skipped.
//
// Unvisited neighbors are pushed in reverse natural order, so the first
// natural neighbor is the next vertex visited. For the graph 1→2, 1→3 the
// order is 1, 2, 3 on both storage variants.
//
// An unknown start ID visits nothing and returns nil.
//
// DetectCycles and TopologicalSort walk the whole graph with three-colour
// marking: an arc into a vertex still on the current path closes a cycle.
// Arcs are directed, so a mirrored lane counts as a two-vertex cycle.
//
// Complexity: O(V + E) time and O(V + E) worst-case stack on a list.
package dfs
