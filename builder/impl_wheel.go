// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/starlane/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds W_n: a ring over the first n-1 vertices plus a hub (the last
// vertex) joined to every rim vertex. Without WithMirror each spoke is
// emitted in both directions with one shared weight, so the hub stays
// reachable from the rim.
func Wheel[T any](n int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle[T](n-1)(g, cfg); err != nil {
			return err
		}
		hub := cfg.ID(n - 1)
		if _, err := g.AddVertex(hub, cfg.Payload(n-1)); err != nil {
			return wrapVertex(methodWheel, hub, err)
		}
		for i := 0; i < n-1; i++ {
			rim := cfg.ID(i)
			w := cfg.Weight()
			if err := addWeightedEdge(methodWheel, g, cfg, hub, rim, w); err != nil {
				return err
			}
			if cfg.mirror {
				continue
			}
			if err := addWeightedEdge(methodWheel, g, cfg, rim, hub, w); err != nil {
				return err
			}
		}

		return nil
	}
}
