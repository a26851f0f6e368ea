// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/starlane/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a hub (the first vertex) with n-1 spokes hub -> leaf.
func Star[T any](n int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		ids, err := addVertices(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = addEdge(methodStar, g, cfg, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
