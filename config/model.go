// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/matrix"
	"github.com/katalvlaran/starlane/proximity"
	"github.com/katalvlaran/starlane/strategy"
)

// Storage variants.
const (
	StorageList   = "list"
	StorageMatrix = "matrix"
)

// AlgorithmPath names routes answered by the shortest-path finder.
const AlgorithmPath = "path"

// Model is a fully evaluated graph definition.
type Model struct {
	Storage  string
	Vertices []Vertex
	Edges    []Edge
	Routes   []Route

	// Bodies are vertices with a position. When Proximity is set they are
	// linked to their nearest neighbors after the explicit edges.
	Bodies    []Body
	Proximity *Proximity
}

// Vertex is one "vertex" block.
type Vertex struct {
	Name string
	ID   int
}

// Edge is one "edge" block with its weight evaluated.
type Edge struct {
	From   int
	To     int
	Weight int64
	Mirror bool
}

// Body is one "body" block.
type Body struct {
	Name string
	ID   int
	X    float64
	Y    float64
}

// Proximity holds the settings of the "proximity" block, defaults applied.
type Proximity struct {
	Neighbors   int
	Scale       float64
	MaxDistance float64
	Directed    bool
}

func (p *Proximity) options() []proximity.Option {
	opts := []proximity.Option{
		proximity.WithNeighbors(p.Neighbors),
		proximity.WithScale(p.Scale),
		proximity.WithMaxDistance(p.MaxDistance),
	}
	if p.Directed {
		opts = append(opts, proximity.WithDirected())
	}

	return opts
}

// Route is one named query. To is strategy.NoTarget when omitted.
type Route struct {
	Name      string
	Algorithm string
	From      int
	To        int
}

// NewGraph returns an empty graph of the named storage variant.
func NewGraph(storage string, opts ...core.GraphOption) (core.MutableGraph[string], error) {
	switch storage {
	case "", StorageList:
		return core.NewList[string](opts...), nil
	case StorageMatrix:
		return matrix.New[string](opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, storage)
	}
}

// Build constructs the graph the model describes.
func (m *Model) Build() (core.MutableGraph[string], error) {
	g, err := NewGraph(m.Storage, core.WithCapacity(len(m.Vertices)+len(m.Bodies)))
	if err != nil {
		return nil, err
	}
	for _, v := range m.Vertices {
		if _, err = g.AddVertex(v.ID, v.Name); err != nil {
			return nil, fmt.Errorf("config: vertex %q: %w", v.Name, err)
		}
	}
	for _, b := range m.Bodies {
		if _, err = g.AddVertex(b.ID, b.Name); err != nil {
			return nil, fmt.Errorf("config: body %q: %w", b.Name, err)
		}
	}
	for _, e := range m.Edges {
		var opts []core.EdgeOption
		if e.Mirror {
			opts = append(opts, core.WithMirror())
		}
		if err = g.AddEdge(e.From, e.To, e.Weight, opts...); err != nil {
			return nil, fmt.Errorf("config: edge %d->%d: %w", e.From, e.To, err)
		}
	}
	if m.Proximity != nil {
		bodies := make([]proximity.Body, len(m.Bodies))
		for i, b := range m.Bodies {
			bodies[i] = proximity.Body{ID: b.ID, Position: orb.Point{b.X, b.Y}}
		}
		if _, err = proximity.Connect[string](g, bodies, m.Proximity.options()...); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return g, nil
}

// Route returns the route called name.
func (m *Model) Route(name string) (Route, bool) {
	for _, r := range m.Routes {
		if r.Name == name {
			return r, true
		}
	}

	return Route{}, false
}

func validAlgorithm(name string) bool {
	switch name {
	case strategy.NameBFS, strategy.NameDFS, strategy.NameDijkstra, AlgorithmPath:
		return true
	}

	return false
}

func needsTarget(name string) bool {
	return name == strategy.NameDijkstra || name == AlgorithmPath
}
