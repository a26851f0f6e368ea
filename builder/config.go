// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/starlane/core"
)

// Config is the resolved, read-only set of knobs a Constructor works with.
// It is passed by value.
type Config[T any] struct {
	idFn      func(int) int
	payloadFn func(int) T
	weightFn  func(*rand.Rand) int64
	rng       *rand.Rand
	mirror    bool
}

func zeroPayload[T any](int) T {
	var zero T
	return zero
}

func newConfig[T any](opts ...Option[T]) Config[T] {
	cfg := Config[T]{
		idFn:      func(i int) int { return i },
		payloadFn: zeroPayload[T],
		weightFn:  func(*rand.Rand) int64 { return core.DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ID returns the vertex ID for the i-th vertex a constructor adds.
func (c Config[T]) ID(i int) int { return c.idFn(i) }

// Payload returns the payload for the i-th vertex a constructor adds.
func (c Config[T]) Payload(i int) T { return c.payloadFn(i) }

// Weight draws the next edge weight.
func (c Config[T]) Weight() int64 { return c.weightFn(c.rng) }

// Rand returns the seeded source, or nil when none was configured.
func (c Config[T]) Rand() *rand.Rand { return c.rng }

// EdgeOptions returns the per-edge options implied by the config.
func (c Config[T]) EdgeOptions() []core.EdgeOption {
	if c.mirror {
		return []core.EdgeOption{core.WithMirror()}
	}

	return nil
}
