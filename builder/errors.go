// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure, e.g. a nil constructor
// or an invalid skip length.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidDegree indicates a regular degree that no simple graph of the
// requested order can realize.
var ErrInvalidDegree = errors.New("builder: invalid degree")
