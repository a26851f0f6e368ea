// SPDX-License-Identifier: MIT

package proximity

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/starlane/core"
)

// R-tree fan-out, as used for 2D polygon indexes.
const (
	treeDim         = 2
	treeMinChildren = 25
	treeMaxChildren = 50

	// pointTolerance is the half-side of the box a body occupies in the index.
	pointTolerance = 1e-9
)

var (
	// ErrNoBodies is returned when Connect gets an empty body list.
	ErrNoBodies = errors.New("proximity: no bodies")

	// ErrBadNeighbors is returned for a neighbor count below 1.
	ErrBadNeighbors = errors.New("proximity: neighbor count must be positive")
)

// Body is a vertex with a position on the plane. ID must already exist in
// the target graph.
type Body struct {
	ID       int
	Position orb.Point
}

// indexed is the rtreego.Spatial stored per body.
type indexed struct {
	pos  int // position in the input slice
	body Body
	rect rtreego.Rect
}

func (e *indexed) Bounds() rtreego.Rect { return e.rect }

// Connect links every body to its nearest neighbors in g and returns the
// number of arcs installed.
func Connect[T any](g core.MutableGraph[T], bodies []Body, opts ...Option) (int, error) {
	o := resolve(opts)
	if o.neighbors < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadNeighbors, o.neighbors)
	}
	if len(bodies) == 0 {
		return 0, ErrNoBodies
	}

	entries := make([]*indexed, len(bodies))
	tree := rtreego.NewTree(treeDim, treeMinChildren, treeMaxChildren)
	for i, b := range bodies {
		entries[i] = &indexed{
			pos:  i,
			body: b,
			rect: rtreego.Point{b.Position.X(), b.Position.Y()}.ToRect(pointTolerance),
		}
		tree.Insert(entries[i])
	}

	linked := make(map[[2]int]struct{})
	arcs := 0
	for _, e := range entries {
		self := e.pos
		origin := e.body.Position
		skip := func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
			other := obj.(*indexed)
			if other.pos == self {
				return true, false
			}

			return o.maxDistance > 0 && planar.Distance(origin, other.body.Position) > o.maxDistance, false
		}

		near := rtreego.Point{origin.X(), origin.Y()}
		for _, obj := range tree.NearestNeighbors(o.neighbors, near, skip) {
			other := obj.(*indexed)
			key := [2]int{min(self, other.pos), max(self, other.pos)}
			if _, ok := linked[key]; ok {
				continue
			}
			linked[key] = struct{}{}

			w := o.weight(planar.Distance(origin, other.body.Position))
			var edgeOpts []core.EdgeOption
			if !o.directed {
				edgeOpts = append(edgeOpts, core.WithMirror())
			}
			if err := g.AddEdge(e.body.ID, other.body.ID, w, edgeOpts...); err != nil {
				return arcs, fmt.Errorf("proximity: link %d-%d: %w", e.body.ID, other.body.ID, err)
			}
			arcs++
			if !o.directed {
				arcs++
			}
		}
	}

	return arcs, nil
}

// weight converts a planar distance into a lane weight.
func (o options) weight(d float64) int64 {
	w := int64(math.Round(d * o.scale))
	if w < 1 {
		return 1
	}

	return w
}
