// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/starlane/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: vertices 0..n-1 and edges i-1 -> i in increasing i.
func Path[T any](n int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
