// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/starlane/core"
)

// ErrCycleDetected is returned by TopologicalSort when g is not acyclic.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// TopologicalSort returns the indices of g ordered so that every arc u→v has
// u before v. Ties follow reverse finishing order of a depth-first search
// rooted in index order. On a cycle it returns an error wrapping
// ErrCycleDetected that names the closing arc by vertex ID.
func TopologicalSort[T any](g core.Graph[T]) ([]int, error) {
	order := make([]int, 0, g.Order())
	from, to := core.NotFound, core.NotFound

	walk(g, func(path []int, v int) bool {
		from, to = path[len(path)-1], v

		return false
	}, func(u int) {
		order = append(order, u)
	})

	if from != core.NotFound {
		vertices := g.Vertices()

		return nil, fmt.Errorf("topological sort: arc %d -> %d: %w",
			vertices[from].ID, vertices[to].ID, ErrCycleDetected)
	}
	slices.Reverse(order)

	return order, nil
}
