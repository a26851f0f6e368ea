// SPDX-License-Identifier: MIT

package proximity

// DefaultNeighbors is the number of nearest bodies each body links to.
const DefaultNeighbors = 3

// Option configures Connect.
type Option func(*options)

type options struct {
	neighbors   int
	scale       float64
	maxDistance float64
	directed    bool
}

func resolve(opts []Option) options {
	o := options{neighbors: DefaultNeighbors, scale: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithNeighbors sets how many nearest bodies each body links to.
// Values below 1 make Connect fail with ErrBadNeighbors.
func WithNeighbors(k int) Option {
	return func(o *options) { o.neighbors = k }
}

// WithScale multiplies distances before rounding them to weights.
// Panics if f is not positive.
func WithScale(f float64) Option {
	if f <= 0 {
		panic("proximity: WithScale(f<=0)")
	}

	return func(o *options) { o.scale = f }
}

// WithMaxDistance drops candidates farther than d. Zero disables the limit.
// Panics on negative d.
func WithMaxDistance(d float64) Option {
	if d < 0 {
		panic("proximity: WithMaxDistance(d<0)")
	}

	return func(o *options) { o.maxDistance = d }
}

// WithDirected installs only the searching body's outbound arc per link.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}
