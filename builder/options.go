// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes the Config handed to constructors.
type Option[T any] func(*Config[T])

// WithIDFn sets the vertex ID scheme: i-th added vertex -> ID. Panics on nil.
func WithIDFn[T any](fn func(int) int) Option[T] {
	if fn == nil {
		panic("builder: WithIDFn(nil)")
	}

	return func(c *Config[T]) { c.idFn = fn }
}

// WithIDOffset shifts the default ID scheme so the i-th vertex gets offset+i.
func WithIDOffset[T any](offset int) Option[T] {
	return WithIDFn[T](func(i int) int { return offset + i })
}

// WithPayloadFn sets the payload for the i-th added vertex. Panics on nil.
func WithPayloadFn[T any](fn func(int) T) Option[T] {
	if fn == nil {
		panic("builder: WithPayloadFn(nil)")
	}

	return func(c *Config[T]) { c.payloadFn = fn }
}

// WithWeightFn overrides the edge weight generator. The function receives the
// configured source, which may be nil. Panics on nil.
func WithWeightFn[T any](fn func(*rand.Rand) int64) Option[T] {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *Config[T]) { c.weightFn = fn }
}

// WithRand provides an explicit source for stochastic constructors. Panics on nil.
func WithRand[T any](r *rand.Rand) Option[T] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *Config[T]) { c.rng = r }
}

// WithSeed attaches a new source seeded with seed.
func WithSeed[T any](seed int64) Option[T] {
	return func(c *Config[T]) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMirror makes every emitted edge bidirectional.
func WithMirror[T any]() Option[T] {
	return func(c *Config[T]) { c.mirror = true }
}
