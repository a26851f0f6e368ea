// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/starlane/core"

// Option configures a single DFS run.
type Option[T any] func(*options[T])

type options[T any] struct {
	onVisit func(core.Vertex[T])
}

// WithOnVisit registers fn to be called with each vertex as it is visited.
func WithOnVisit[T any](fn func(core.Vertex[T])) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}
