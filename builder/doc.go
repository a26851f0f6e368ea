// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures on any
// core.MutableGraph: paths, rings, stars, wheels, complete graphs, grids,
// skip chains, and seeded random sparse or d-regular graphs.
//
// A Constructor is a closure that adds vertices and edges to a graph using a
// resolved Config. Build resolves options once and applies constructors in
// order, stopping at the first error:
//
//	g := core.NewList[string]()
//	err := builder.Build(g, []builder.Option[string]{
//		builder.WithSeed[string](7),
//		builder.WithMirror[string](),
//	}, builder.Grid[string](3, 4))
//
// Determinism: for equal options, seed and constructor order the resulting
// graphs are identical, including vertex indices and neighbor order.
//
// Vertex IDs come from the ID function (default: the index itself), payloads
// from the payload function (default: the zero value). Composing two
// constructors on one graph therefore needs distinct ID ranges, e.g. via
// WithIDFn; otherwise the second one fails with core.ErrDuplicateVertex.
//
// Errors are the sentinels in errors.go wrapped with the constructor name;
// branch with errors.Is. Option constructors panic on nil arguments.
package builder
