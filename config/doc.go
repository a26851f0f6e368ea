// SPDX-License-Identifier: MIT

// Package config loads graph definitions written in HCL.
//
// A definition names the storage variant, the vertices, the lanes between
// them and any number of named routes to evaluate:
//
//	storage = "list"                  # or "matrix"; default "list"
//
//	vertex "sol"    { id = 1 }         # the label becomes the payload
//	vertex "alpha"  { id = 2 }
//
//	edge {
//	  from   = 1
//	  to     = 2
//	  weight = default_weight * 4      # optional, default_weight when omitted
//	  mirror = true                    # optional, install both arcs
//	}
//
//	route "home" {
//	  algorithm = "dijkstra"           # bfs, dfs, dijkstra or path
//	  from      = 1
//	  to        = 2                    # optional for bfs and dfs
//	}
//
// Bodies are vertices placed on a plane. A proximity block links every body
// to its nearest neighbors, weighting each lane by distance:
//
//	body "barnard" {
//	  id = 3
//	  x  = 6.0
//	  y  = 8.0
//	}
//
//	proximity {
//	  neighbors    = 2                 # optional, default 3
//	  scale        = 10                # optional, weight = round(distance * scale)
//	  max_distance = 50                # optional, 0 means unlimited
//	  directed     = false             # optional
//	}
//
// Expressions are evaluated with the variable default_weight and the
// functions abs, ceil, floor, max and min.
//
// Several files or directories may be loaded together; their blocks are
// concatenated in argument order, at most one distinct storage value may
// appear and at most one proximity block.
package config
