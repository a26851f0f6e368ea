// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// FromGraph copies any core.Graph into a new Matrix with the same IDs,
// indices and payloads. Parallel arcs collapse to the cheapest weight.
// A zero-weight arc in g cannot be represented and yields ErrZeroWeight.
//
// Time Complexity: O(V² + E)
// Memory: O(V²)
func FromGraph[T any](g core.Graph[T]) (*Matrix[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	verts := g.Vertices()
	m := New[T](core.WithCapacity(len(verts)))
	for _, v := range verts {
		if _, err := m.AddVertex(v.ID, v.Payload); err != nil {
			return nil, fmt.Errorf("FromGraph: %w", err)
		}
	}
	for _, v := range verts {
		for to, w := range g.Neighbors(v.Index) {
			if w == 0 {
				return nil, fmt.Errorf("FromGraph: arc %d→%d: %w", v.ID, verts[to].ID, ErrZeroWeight)
			}
			if cur := m.rows[v.Index][to]; cur != 0 && cur <= w {
				continue
			}
			m.set(v.Index, to, w)
		}
	}

	return m, nil
}

// ToList copies m into a new core.List, emitting arcs in ascending column order.
//
// Time Complexity: O(V²)
func (m *Matrix[T]) ToList() *core.List[T] {
	verts := m.store.All()
	l := core.NewList[T](core.WithCapacity(len(verts)))
	for _, v := range verts {
		// ids are unique in m, so AddVertex cannot fail here.
		_, _ = l.AddVertex(v.ID, v.Payload)
	}
	for _, v := range verts {
		for to, w := range m.Neighbors(v.Index) {
			_ = l.AddEdge(v.ID, verts[to].ID, w)
		}
	}

	return l
}
