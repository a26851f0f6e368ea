// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples each ordered pair (i, j), i != j, independently with
// probability p. With WithMirror the unordered pairs i<j are sampled instead
// and each hit becomes a two-way lane.
//
// A source is required for 0 < p < 1. Trial order is i ascending, then j
// ascending, so results are reproducible for a fixed seed.
func RandomSparse[T any](n int, p float64) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.Rand()
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		hit := func() bool {
			if rng == nil {
				return p == probMax
			}

			return rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j := 0
			if cfg.mirror {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
