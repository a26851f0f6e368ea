// SPDX-License-Identifier: MIT

// Package proximity wires lanes between bodies laid out on a plane.
//
// Connect indexes every body in an R-tree and links each one to its k nearest
// neighbors. Lane weight is the planar distance scaled and rounded to an
// integer, never below 1, so the result also fits the matrix variant where 0
// means "no arc".
//
// Each unordered pair is linked at most once. By default a link installs both
// arcs; WithDirected installs only the arc from the body whose neighbors were
// being searched.
package proximity
