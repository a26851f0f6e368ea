// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/starlane/builder"
	"github.com/katalvlaran/starlane/config"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/store"
)

// loadGraph obtains the graph from the configured source. The model is nil
// unless the graph came from definition files.
func (a *App) loadGraph(ctx context.Context, db *store.DB) (core.MutableGraph[string], *config.Model, error) {
	switch {
	case a.cfg.LoadName != "":
		snap, err := db.Snapshot(ctx, a.cfg.LoadName)
		if err != nil {
			return nil, nil, err
		}
		storage := a.cfg.Storage
		if storage == "" {
			storage = snap.Storage
		}
		g, err := config.NewGraph(storage, core.WithCapacity(len(snap.Vertices)))
		if err != nil {
			return nil, nil, err
		}
		if err = snap.Apply(g); err != nil {
			return nil, nil, fmt.Errorf("load %q: %w", a.cfg.LoadName, err)
		}

		return g, nil, nil

	case a.cfg.Chain > 0:
		g, err := config.NewGraph(a.cfg.Storage, core.WithCapacity(a.cfg.Chain))
		if err != nil {
			return nil, nil, err
		}
		opts := []builder.Option[string]{builder.WithPayloadFn(chainName)}
		if err = builder.Build[string](g, opts, builder.SkipChain[string](a.cfg.Chain)); err != nil {
			return nil, nil, err
		}

		return g, nil, nil

	default:
		model, err := config.Load(ctx, a.cfg.GraphPaths...)
		if err != nil {
			return nil, nil, err
		}
		if a.cfg.Storage != "" {
			model.Storage = a.cfg.Storage
		}
		g, err := model.Build()
		if err != nil {
			return nil, nil, err
		}

		return g, model, nil
	}
}

func chainName(i int) string { return "v" + strconv.Itoa(i) }

func countArcs(g core.Graph[string]) int {
	n := 0
	for i := range g.Order() {
		for range g.Neighbors(i) {
			n++
		}
	}

	return n
}
