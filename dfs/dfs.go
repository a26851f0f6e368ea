// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/starlane/core"

// DFS traverses g depth-first from the vertex with ID startID and returns the
// indices of visited vertices in visitation order.
// It returns nil when startID does not resolve.
func DFS[T any](g core.Graph[T], startID int, opts ...Option[T]) []int {
	start := g.FindIndex(startID)
	if start == core.NotFound {
		return nil
	}
	o := options[T]{onVisit: func(core.Vertex[T]) {}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n := g.Order()
	vertices := g.Vertices()
	visited := make([]bool, n)
	order := make([]int, 0, n)
	stack := make([]int, 0, n)
	var next []int // neighbor buffer, reused across pops

	stack = append(stack, start)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)
		o.onVisit(vertices[u])

		next = next[:0]
		for v := range g.Neighbors(u) {
			if !visited[v] {
				next = append(next, v)
			}
		}
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	return order
}
