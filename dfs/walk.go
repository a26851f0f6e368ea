// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/starlane/core"

type color uint8

const (
	white color = iota // not reached
	gray               // on the current path
	black              // finished
)

type frame struct {
	u    int
	next []int
	i    int
}

// walk runs a colored depth-first search over all of g, roots in index order.
// onBack is called for every arc into a gray vertex v with the current path,
// whose last element is the arc's tail; returning false stops the walk.
// onFinish is called as each vertex turns black.
func walk[T any](g core.Graph[T], onBack func(path []int, v int) bool, onFinish func(u int)) {
	n := g.Order()
	colors := make([]color, n)
	path := make([]int, 0, n)
	stack := make([]frame, 0, n)

	for root := range n {
		if colors[root] != white {
			continue
		}
		colors[root] = gray
		path = append(path, root)
		stack = append(stack, frame{u: root, next: successors(g, root)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i == len(top.next) {
				colors[top.u] = black
				onFinish(top.u)
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.next[top.i]
			top.i++

			switch colors[v] {
			case white:
				colors[v] = gray
				path = append(path, v)
				stack = append(stack, frame{u: v, next: successors(g, v)})
			case gray:
				if !onBack(path, v) {
					return
				}
			}
		}
	}
}

func successors[T any](g core.Graph[T], u int) []int {
	var out []int
	for v := range g.Neighbors(u) {
		out = append(out, v)
	}

	return out
}
