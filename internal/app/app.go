// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/starlane/internal/ctxlog"
	"github.com/katalvlaran/starlane/store"
)

// App runs one invocation described by a Config.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp returns an App printing results to outW and logging to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Run executes the configured workflow.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	var db *store.DB
	if a.cfg.DSN != "" {
		var err error
		if db, err = store.Open(ctx, a.cfg.DSN); err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				a.logger.Warn("Closing graph store failed.", "error", err)
			}
		}()
	}

	if a.cfg.List {
		if err := a.list(ctx, db); err != nil {
			return err
		}
		if !a.hasSource() {
			return nil
		}
	}

	g, model, err := a.loadGraph(ctx, db)
	if err != nil {
		return err
	}
	storage := store.StorageOf(g)
	arcs := countArcs(g)
	a.logger.Info("Graph ready.", "storage", storage, "vertices", g.Order(), "arcs", arcs)
	fmt.Fprintf(a.outW, "graph: %s, %d vertices, %d arcs\n", storage, g.Order(), arcs)

	if a.cfg.SaveName != "" {
		if err = db.Save(ctx, a.cfg.SaveName, g); err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "saved %q\n", a.cfg.SaveName)
	}

	queries, err := a.queries(model)
	if err != nil {
		return err
	}
	for _, q := range queries {
		a.logger.Debug("Answering query.", "algorithm", q.algorithm, "from", q.from, "to", q.to)
		line, err := answer(g, q)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.outW, line)
	}

	if a.cfg.Bench > 0 {
		return a.bench(ctx, g)
	}

	return nil
}

func (a *App) hasSource() bool {
	return len(a.cfg.GraphPaths) > 0 || a.cfg.LoadName != "" || a.cfg.Chain > 0
}

// list prints the graphs held by db.
func (a *App) list(ctx context.Context, db *store.DB) error {
	summaries, err := db.List(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(a.outW, "no stored graphs")
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(a.outW, "stored %s: %s, %d vertices, %d arcs, saved %s\n",
			s.Name, s.Storage, s.Vertices, s.Arcs, s.SavedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
