// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownStorage is returned for a storage value other than "list" or "matrix".
	ErrUnknownStorage = errors.New("config: unknown storage")

	// ErrStorageConflict is returned when loaded files disagree on storage.
	ErrStorageConflict = errors.New("config: conflicting storage")

	// ErrUnknownAlgorithm is returned for a route naming an unsupported algorithm.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")

	// ErrMissingTarget is returned for a dijkstra or path route without "to".
	ErrMissingTarget = errors.New("config: route needs a target")

	// ErrInvalidWeight is returned when an edge weight does not evaluate to an integer.
	ErrInvalidWeight = errors.New("config: invalid edge weight")

	// ErrNoFiles is returned when Load finds no definition files.
	ErrNoFiles = errors.New("config: no definition files")

	// ErrDuplicateProximity is returned for a second proximity block.
	ErrDuplicateProximity = errors.New("config: more than one proximity block")

	// ErrInvalidProximity is returned for proximity settings Connect cannot use.
	ErrInvalidProximity = errors.New("config: invalid proximity settings")
)
