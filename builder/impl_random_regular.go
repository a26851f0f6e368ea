// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/starlane/core"
)

const (
	methodRandomRegular   = "RandomRegular"
	minRandomRegularNodes = 1
	maxRegularRestarts    = 100
	maxRegularDraws       = 64 // stub draws per pair before a restart
)

// RandomRegular builds a simple undirected d-regular graph on n vertices:
// every vertex gets exactly d two-way lanes, with no self-loops and no
// parallel lanes. Lanes are always mirrored.
//
// Stubs are paired by random draws; a draw that would create a loop or a
// parallel lane is retried, and a pairing that gets stuck restarts from
// scratch. The pairing is complete before g is touched, so a failure leaves
// g unchanged. Requires 0 <= d < n with n*d even, and a source when d > 0.
func RandomRegular[T any](n, d int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minRandomRegularNodes {
			return tooFew(methodRandomRegular, "n", n, minRandomRegularNodes)
		}
		if d < 0 || d >= n || n*d%2 != 0 {
			return fmt.Errorf("%s: n=%d d=%d: need 0 <= d < n and n*d even: %w",
				methodRandomRegular, n, d, ErrInvalidDegree)
		}
		rng := cfg.Rand()
		if rng == nil && d > 0 {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		var pairs [][2]int
		ok := d == 0
		for attempt := 0; !ok && attempt < maxRegularRestarts; attempt++ {
			pairs, ok = matchStubs(rng, n, d)
		}
		if !ok {
			return fmt.Errorf("%s: n=%d d=%d: no simple pairing after %d restarts: %w",
				methodRandomRegular, n, d, maxRegularRestarts, ErrConstructFailed)
		}

		ids, err := addVertices(methodRandomRegular, g, cfg, n)
		if err != nil {
			return err
		}
		for _, p := range pairs {
			u, v, w := ids[p[0]], ids[p[1]], cfg.Weight()
			if err = g.AddEdge(u, v, w, core.WithMirror()); err != nil {
				return fmt.Errorf("%s: AddEdge(%d<->%d, w=%d): %w", methodRandomRegular, u, v, w, err)
			}
		}

		return nil
	}
}

// matchStubs pairs d stubs per vertex into n*d/2 distinct non-loop pairs
// (u<v), or reports false when the draws get stuck.
func matchStubs(rng *rand.Rand, n, d int) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}
	pairs := make([][2]int, 0, len(stubs)/2)
	seen := make(map[[2]int]struct{}, len(stubs)/2)

	for len(stubs) > 0 {
		placed := false
		for draw := 0; draw < maxRegularDraws && !placed; draw++ {
			i, j := rng.Intn(len(stubs)), rng.Intn(len(stubs))
			u, v := stubs[i], stubs[j]
			if u == v {
				continue
			}
			key := [2]int{min(u, v), max(u, v)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
			if i < j {
				i, j = j, i
			}
			stubs = removeAt(removeAt(stubs, i), j)
			placed = true
		}
		if !placed {
			return nil, false
		}
	}

	return pairs, true
}

// removeAt drops stubs[i] by moving the last stub into its slot.
func removeAt(stubs []int, i int) []int {
	last := len(stubs) - 1
	stubs[i] = stubs[last]

	return stubs[:last]
}
