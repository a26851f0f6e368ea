// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/starlane/config"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/strategy"
)

// ErrEmptyGraph is returned by the benchmark for a graph without vertices.
var ErrEmptyGraph = errors.New("bench: graph has no vertices")

type benchResult struct {
	algorithm string
	result    int64
	elapsed   time.Duration
}

// runFunc is one benchmarked call; it returns the strategy's result.
type runFunc func(g core.Graph[string], from, to int) int64

func runnerFor(name string) (runFunc, error) {
	if name == config.AlgorithmPath {
		return func(g core.Graph[string], from, to int) int64 {
			return int64(len(strategy.PathFinder[string]{}.FindShortestPath(g, from, to)))
		}, nil
	}
	s, err := strategy.New[string](name, nil)
	if err != nil {
		return nil, err
	}

	return s.Run, nil
}

// bench runs every algorithm cfg.Bench times, one goroutine per algorithm,
// all sharing g read-only. Unset endpoints default to the first and last vertex.
func (a *App) bench(ctx context.Context, g core.Graph[string]) error {
	vs := g.Vertices()
	if len(vs) == 0 {
		return ErrEmptyGraph
	}
	from, to := a.cfg.From, a.cfg.To
	if from == Unset {
		from = vs[0].ID
	}
	if to == Unset {
		to = vs[len(vs)-1].ID
	}

	names := Algorithms()
	results := make([]benchResult, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			run, err := runnerFor(name)
			if err != nil {
				return err
			}
			var last int64
			start := time.Now()
			for range a.cfg.Bench {
				if err := ctx.Err(); err != nil {
					return err
				}
				last = run(g, from, to)
			}
			results[i] = benchResult{algorithm: name, result: last, elapsed: time.Since(start)}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	a.logger.Info("Benchmark finished.", "runs", a.cfg.Bench, "from", from, "to", to)
	for _, r := range results {
		fmt.Fprintf(a.outW, "bench %s %d->%d: result %d, %d runs in %s (%s/run)\n",
			r.algorithm, from, to, r.result, a.cfg.Bench, r.elapsed, r.elapsed/time.Duration(a.cfg.Bench))
	}

	return nil
}
