// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

const (
	methodSkipChain   = "SkipChain"
	minSkipChainNodes = 2
)

// DefaultSkips are the hop lengths used when SkipChain gets none.
var DefaultSkips = []int{1, 2, 5}

// SkipChain builds vertices 0..n-1 and, for every i and every skip s with
// i+s < n, an arc i -> i+s of weight s. Arcs are emitted by increasing i,
// then in the order skips are given. The weight function is not consulted.
func SkipChain[T any](n int, skips ...int) Constructor[T] {
	if len(skips) == 0 {
		skips = DefaultSkips
	}

	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minSkipChainNodes {
			return tooFew(methodSkipChain, "n", n, minSkipChainNodes)
		}
		for _, s := range skips {
			if s < 1 {
				return fmt.Errorf("%s: skip=%d < 1: %w", methodSkipChain, s, ErrConstructFailed)
			}
		}
		ids, err := addVertices(methodSkipChain, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for _, s := range skips {
				if i+s >= n {
					continue
				}
				if err = addWeightedEdge(methodSkipChain, g, cfg, ids[i], ids[i+s], int64(s)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
