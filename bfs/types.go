// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/starlane/core"

// Option configures a single BFS run.
type Option[T any] func(*options[T])

type options[T any] struct {
	onVisit  func(core.Vertex[T])
	maxDepth int
	filter   func(from, to core.Vertex[T]) bool
}

// WithOnVisit registers fn to be called with each vertex as it is visited.
// A nil fn is ignored.
func WithOnVisit[T any](fn func(core.Vertex[T])) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops expanding vertices d hops from the start; they are still
// visited. Zero means no limit. Panics on negative d.
func WithMaxDepth[T any](d int) Option[T] {
	if d < 0 {
		panic("bfs: WithMaxDepth(d<0)")
	}

	return func(o *options[T]) { o.maxDepth = d }
}

// WithFilter skips the arc from→to when fn returns false. A skipped neighbor
// stays unvisited and may still be reached over another arc.
// A nil fn is ignored.
func WithFilter[T any](fn func(from, to core.Vertex[T]) bool) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.filter = fn
		}
	}
}

func resolve[T any](opts []Option[T]) options[T] {
	o := options[T]{
		onVisit: func(core.Vertex[T]) {},
		filter:  func(_, _ core.Vertex[T]) bool { return true },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
