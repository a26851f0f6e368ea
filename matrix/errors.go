// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.
// Endpoint resolution failures surface core.ErrVertexNotFound unchanged so
// both representations report the same sentinel.

package matrix

import "errors"

var (
	// ErrZeroWeight is returned when an arc of weight 0 is requested; 0 encodes "no arc".
	ErrZeroWeight = errors.New("matrix: zero weight is reserved for absent arcs")

	// ErrNilGraph is returned by FromGraph when the source graph is nil.
	ErrNilGraph = errors.New("matrix: graph is nil")
)
