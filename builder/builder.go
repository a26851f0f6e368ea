// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// Constructor applies a deterministic mutation to g using cfg.
// Implementations validate parameters before touching g.
type Constructor[T any] func(g core.MutableGraph[T], cfg Config[T]) error

// Build resolves opts and applies cons to g in order. The first failure is
// returned wrapped; g keeps whatever earlier constructors added.
func Build[T any](g core.MutableGraph[T], opts []Option[T], cons ...Constructor[T]) error {
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}
