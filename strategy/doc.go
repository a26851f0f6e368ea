// SPDX-License-Identifier: MIT

// Package strategy exposes the traversal algorithms behind one interface so
// callers can pick an algorithm by name at runtime and run it against either
// storage variant.
//
// Every Strategy reports a single int64:
//
//	BFS, DFS   number of vertices visited (0 for an unknown start); endID is ignored
//	Dijkstra   dijkstra.Distance, i.e. dijkstra.NoPath when there is no route
//
// PathFinder is kept separate because it returns a route, not a scalar.
package strategy
