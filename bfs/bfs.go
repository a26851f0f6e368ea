// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/pqueue"
)

// level is the constant priority that turns pqueue.Queue into a FIFO.
const level = 0

// BFS traverses g breadth-first from the vertex with ID startID and returns
// the indices of visited vertices in visitation order.
// It returns nil when startID does not resolve.
func BFS[T any](g core.Graph[T], startID int, opts ...Option[T]) []int {
	start := g.FindIndex(startID)
	if start == core.NotFound {
		return nil
	}
	o := resolve(opts)

	n := g.Order()
	vertices := g.Vertices()
	visited := make([]bool, n)
	depth := make([]int, n)
	order := make([]int, 0, n)

	frontier := pqueue.New[int](n)
	frontier.Push(start, level)
	visited[start] = true

	for !frontier.Empty() {
		u, _, _ := frontier.PopMin()
		order = append(order, u)
		o.onVisit(vertices[u])
		if o.maxDepth > 0 && depth[u] >= o.maxDepth {
			continue
		}

		for v := range g.Neighbors(u) {
			if visited[v] || !o.filter(vertices[u], vertices[v]) {
				continue
			}
			visited[v] = true
			depth[v] = depth[u] + 1
			frontier.Push(v, level)
		}
	}

	return order
}
