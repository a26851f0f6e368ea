// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// addVertices inserts n vertices and returns their IDs in insertion order.
func addVertices[T any](method string, g core.MutableGraph[T], cfg Config[T], n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.ID(i)
		if _, err := g.AddVertex(ids[i], cfg.Payload(i)); err != nil {
			return nil, wrapVertex(method, ids[i], err)
		}
	}

	return ids, nil
}

func wrapVertex(method string, id int, err error) error {
	return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
}

// addEdge emits u->v with the next configured weight.
func addEdge[T any](method string, g core.MutableGraph[T], cfg Config[T], u, v int) error {
	return addWeightedEdge(method, g, cfg, u, v, cfg.Weight())
}

func addWeightedEdge[T any](method string, g core.MutableGraph[T], cfg Config[T], u, v int, w int64) error {
	if err := g.AddEdge(u, v, w, cfg.EdgeOptions()...); err != nil {
		return fmt.Errorf("%s: AddEdge(%d->%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
