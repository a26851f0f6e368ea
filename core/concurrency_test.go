// Package core_test verifies that Synchronized serializes writers against whole-graph readers.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
)

// TestSynchronized_ConcurrentWritersAndReaders interleaves vertex/edge batches
// with readers that check the index-consistency invariant inside Read.
func TestSynchronized_ConcurrentWritersAndReaders(t *testing.T) {
	s := core.NewSynchronized[int](core.NewList[int]())
	const writers = 50
	var wg sync.WaitGroup
	wg.Add(2 * writers)

	errs := make(chan error, writers)
	broken := make(chan int, writers)
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- s.Write(func(g core.MutableGraph[int]) error {
				if _, err := g.AddVertex(id, id); err != nil {
					return err
				}
				if id > 0 {
					return g.AddEdge(id, 0, 1)
				}
				return nil
			})
		}(i)
		go func() {
			defer wg.Done()
			s.Read(func(g core.Graph[int]) {
				n := g.Order()
				for idx := 0; idx < n; idx++ {
					for to := range g.Neighbors(idx) {
						if to < 0 || to >= n {
							broken <- to
						}
					}
				}
			})
		}()
	}
	wg.Wait()
	close(errs)
	close(broken)

	// vertex 0 may be added after some writers, whose AddEdge then fails; only
	// ErrVertexNotFound is acceptable.
	for err := range errs {
		if err != nil {
			require.ErrorIs(t, err, core.ErrVertexNotFound)
		}
	}
	require.Empty(t, broken, "readers observed an arc pointing outside the vertex table")

	s.Read(func(g core.Graph[int]) {
		require.Equal(t, writers, g.Order())
	})
}
