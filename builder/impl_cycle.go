// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/starlane/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n: the path 0..n-1 closed by n-1 -> 0.
func Cycle[T any](n int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
