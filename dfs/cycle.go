// SPDX-License-Identifier: MIT

package dfs

import (
	"slices"

	"github.com/katalvlaran/starlane/core"
)

// DetectCycles reports whether g has a directed cycle and returns one cycle
// per distinct back arc found by a colored depth-first search. Each cycle is
// a closed index sequence starting and ending at its smallest index, e.g.
// [0 2 1 0]. A self-loop yields [u u]; a mirrored lane yields [u v u].
// Cycles are sorted lexicographically and contain no duplicates.
//
// Not every elementary cycle is listed: a cycle that shares its closing arc
// with one already found is covered by that one.
func DetectCycles[T any](g core.Graph[T]) (bool, [][]int) {
	var cycles [][]int
	walk(g, func(path []int, v int) bool {
		at := slices.Index(path, v)
		cycles = append(cycles, canonical(path[at:]))

		return true
	}, func(int) {})

	if len(cycles) == 0 {
		return false, nil
	}
	slices.SortFunc(cycles, slices.Compare[[]int])

	return true, slices.CompactFunc(cycles, slices.Equal[[]int])
}

// canonical rotates the open cycle ring to start at its smallest index and
// closes it.
func canonical(ring []int) []int {
	at := 0
	for i, u := range ring {
		if u < ring[at] {
			at = i
		}
	}
	out := make([]int, 0, len(ring)+1)
	out = append(out, ring[at:]...)
	out = append(out, ring[:at]...)

	return append(out, ring[at])
}
