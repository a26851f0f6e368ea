// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/starlane/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n with an arc in both directions for every pair i<j,
// emitted as i->j then j->i. WithMirror has no further effect here.
func Complete[T any](n int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		cfg.mirror = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := cfg.Weight()
				if err = addWeightedEdge(methodComplete, g, cfg, ids[i], ids[j], w); err != nil {
					return err
				}
				if err = addWeightedEdge(methodComplete, g, cfg, ids[j], ids[i], w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
