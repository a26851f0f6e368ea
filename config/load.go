// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/internal/ctxlog"
	"github.com/katalvlaran/starlane/proximity"
	"github.com/katalvlaran/starlane/strategy"
)

// hclFile is the decoding target for one file.
type hclFile struct {
	Storage  *string     `hcl:"storage,optional"`
	Vertices []hclVertex `hcl:"vertex,block"`
	Edges    []hclEdge   `hcl:"edge,block"`
	Routes   []hclRoute  `hcl:"route,block"`

	Bodies    []hclBody     `hcl:"body,block"`
	Proximity *hclProximity `hcl:"proximity,block"`
}

type hclVertex struct {
	Name string `hcl:"name,label"`
	ID   int    `hcl:"id"`
}

type hclEdge struct {
	From   int            `hcl:"from"`
	To     int            `hcl:"to"`
	Weight hcl.Expression `hcl:"weight,optional"`
	Mirror bool           `hcl:"mirror,optional"`
}

type hclRoute struct {
	Name      string `hcl:"name,label"`
	Algorithm string `hcl:"algorithm"`
	From      int    `hcl:"from"`
	To        *int   `hcl:"to,optional"`
}

type hclBody struct {
	Name string  `hcl:"name,label"`
	ID   int     `hcl:"id"`
	X    float64 `hcl:"x"`
	Y    float64 `hcl:"y"`
}

type hclProximity struct {
	Neighbors   *int     `hcl:"neighbors,optional"`
	Scale       *float64 `hcl:"scale,optional"`
	MaxDistance *float64 `hcl:"max_distance,optional"`
	Directed    bool     `hcl:"directed,optional"`
}

// evalContext is shared by every expression in a definition.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_weight": cty.NumberIntVal(core.DefaultWeight),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
			"max":   stdlib.MaxFunc,
			"min":   stdlib.MinFunc,
		},
	}
}

// Load parses and merges the given HCL files. Directories are searched
// recursively for files ending in Extension.
func Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	files, err := findFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	parser := hclparse.NewParser()
	m := &Model{}
	for _, path := range files {
		logger.Debug("Loading graph definition", "path", path)
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		if err := m.merge(file.Body, path); err != nil {
			return nil, err
		}
	}
	if err := m.finish(); err != nil {
		return nil, err
	}
	logger.Debug("Graph definition loaded",
		"files", len(files), "vertices", len(m.Vertices), "bodies", len(m.Bodies),
		"edges", len(m.Edges), "routes", len(m.Routes))

	return m, nil
}

// Parse decodes a single in-memory definition; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Model, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	m := &Model{}
	if err := m.merge(file.Body, filename); err != nil {
		return nil, err
	}
	if err := m.finish(); err != nil {
		return nil, err
	}

	return m, nil
}

// merge decodes body and appends its blocks to m.
func (m *Model) merge(body hcl.Body, filename string) error {
	evalCtx := evalContext()
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, evalCtx, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if parsed.Storage != nil {
		if m.Storage != "" && m.Storage != *parsed.Storage {
			return fmt.Errorf("%w: %q in %s, %q before", ErrStorageConflict, *parsed.Storage, filename, m.Storage)
		}
		m.Storage = *parsed.Storage
	}
	for _, v := range parsed.Vertices {
		m.Vertices = append(m.Vertices, Vertex(v))
	}
	for _, e := range parsed.Edges {
		w, err := evalWeight(e.Weight, evalCtx)
		if err != nil {
			return fmt.Errorf("%s: edge %d->%d: %w", filename, e.From, e.To, err)
		}
		m.Edges = append(m.Edges, Edge{From: e.From, To: e.To, Weight: w, Mirror: e.Mirror})
	}
	for _, r := range parsed.Routes {
		route := Route{Name: r.Name, Algorithm: r.Algorithm, From: r.From, To: strategy.NoTarget}
		if r.To != nil {
			route.To = *r.To
		}
		if !validAlgorithm(route.Algorithm) {
			return fmt.Errorf("%s: route %q: %w: %q", filename, r.Name, ErrUnknownAlgorithm, r.Algorithm)
		}
		if needsTarget(route.Algorithm) && r.To == nil {
			return fmt.Errorf("%s: route %q: %w", filename, r.Name, ErrMissingTarget)
		}
		m.Routes = append(m.Routes, route)
	}
	for _, b := range parsed.Bodies {
		m.Bodies = append(m.Bodies, Body(b))
	}
	if parsed.Proximity != nil {
		if m.Proximity != nil {
			return fmt.Errorf("%s: %w", filename, ErrDuplicateProximity)
		}
		p, err := proximitySettings(parsed.Proximity)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		m.Proximity = p
	}

	return nil
}

// proximitySettings applies defaults and rejects values Connect cannot use.
func proximitySettings(in *hclProximity) (*Proximity, error) {
	p := &Proximity{Neighbors: proximity.DefaultNeighbors, Scale: 1, Directed: in.Directed}
	if in.Neighbors != nil {
		p.Neighbors = *in.Neighbors
	}
	if in.Scale != nil {
		p.Scale = *in.Scale
	}
	if in.MaxDistance != nil {
		p.MaxDistance = *in.MaxDistance
	}
	switch {
	case p.Neighbors < 1:
		return nil, fmt.Errorf("%w: neighbors = %d", ErrInvalidProximity, p.Neighbors)
	case p.Scale <= 0:
		return nil, fmt.Errorf("%w: scale = %g", ErrInvalidProximity, p.Scale)
	case p.MaxDistance < 0:
		return nil, fmt.Errorf("%w: max_distance = %g", ErrInvalidProximity, p.MaxDistance)
	}

	return p, nil
}

// finish applies defaults and validates the merged model.
func (m *Model) finish() error {
	if m.Storage == "" {
		m.Storage = StorageList
	}
	if m.Storage != StorageList && m.Storage != StorageMatrix {
		return fmt.Errorf("%w: %q", ErrUnknownStorage, m.Storage)
	}

	return nil
}

// evalWeight evaluates an optional weight expression, falling back to default_weight.
func evalWeight(expr hcl.Expression, evalCtx *hcl.EvalContext) (int64, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: %w", ErrInvalidWeight, diags)
	}
	if val.IsNull() {
		val = evalCtx.Variables["default_weight"]
	}
	var w int64
	if err := gocty.FromCtyValue(val, &w); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	return w, nil
}
