// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/starlane/core"

// Reconstruct follows parent links from end back to start and returns the
// route in forward order. parent[v] < 0 means v has no predecessor.
// It returns nil when the chain never reaches start or an index is out of range.
func Reconstruct(parent []int, start, end int) []int {
	if start < 0 || start >= len(parent) || end < 0 || end >= len(parent) {
		return nil
	}
	var route []int
	for v := end; ; v = parent[v] {
		if v < 0 || v >= len(parent) || len(route) > len(parent) {
			return nil // broken chain or cycle
		}
		route = append(route, v)
		if v == start {
			break
		}
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// PathWeight sums, for each consecutive pair of route, the cheapest arc
// between them. It returns NoPath if some hop has no arc, and 0 for routes
// shorter than two vertices.
func PathWeight[T any](g core.Graph[T], route []int) int64 {
	var total int64
	for i := 0; i+1 < len(route); i++ {
		best, found := int64(0), false
		for to, w := range g.Neighbors(route[i]) {
			if to == route[i+1] && (!found || w < best) {
				best, found = w, true
			}
		}
		if !found {
			return NoPath
		}
		total += best
	}

	return total
}
