// Package starlane is a small graph engine for maps of star systems joined
// by weighted lanes: build a graph, traverse it, route across it.
//
// The packages, bottom up:
//
//	core/         Graph and MutableGraph interfaces, the vertex store and the
//	              adjacency-list variant (List)
//	matrix/       adjacency-matrix variant (weight 0 means "no lane")
//	pqueue/       min-priority queue with duplicate keys (lazy decrease-key)
//	bfs/, dfs/    traversals reporting visitation order through OnVisit
//	dijkstra/     shortest distance, shortest path and path reconstruction
//	strategy/     the algorithms behind one Run(g, start, end) interface
//	builder/      deterministic and seeded-random graph constructors
//	proximity/    links positioned bodies to their nearest neighbors (R-tree)
//	config/       HCL graph definitions with named routes
//	store/        named graphs persisted in SQLite
//	cmd/starlane  command-line front end
//
// Every graph resolves caller ids to dense indices once, at insertion; the
// algorithms work on indices and map back only when reporting.
//
// Quick ASCII example:
//
//	Sol ──4── Alpha
//	 │          │
//	 10         5
//	 │          │
//	Sirius ─────┘
//
// Dijkstra from Sol to Sirius takes the detour through Alpha: 9 beats 10.
//
// Graphs are not safe for concurrent mutation; read-only graphs may be
// traversed from many goroutines, and core.Synchronized guards the rest.
package starlane
