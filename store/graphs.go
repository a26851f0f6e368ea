// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/internal/ctxlog"
	"github.com/katalvlaran/starlane/matrix"
)

// Storage labels recorded with each graph.
const (
	StorageList   = "list"
	StorageMatrix = "matrix"
)

// Summary describes one saved graph.
type Summary struct {
	Name     string
	Storage  string
	Vertices int
	Arcs     int
	SavedAt  time.Time
}

// Arc is one stored arc, by vertex index.
type Arc struct {
	From, To int
	Weight   int64
}

// Snapshot is the stored form of a graph. It is shared between concurrent
// readers and must not be modified.
type Snapshot struct {
	Summary
	Vertices []core.Vertex[string]
	Arcs     []Arc
}

// StorageOf reports the storage label for g.
func StorageOf(g core.Graph[string]) string {
	if _, ok := g.(*matrix.Matrix[string]); ok {
		return StorageMatrix
	}

	return StorageList
}

// Save stores g under name, replacing any earlier graph with that name.
func (d *DB) Save(ctx context.Context, name string, g core.Graph[string]) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO graphs (name, storage, saved_at) VALUES (?, ?, ?)`,
		name, StorageOf(g), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	graphID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	vstmt, err := tx.PrepareContext(ctx, `INSERT INTO vertices (graph_id, idx, id, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	defer vstmt.Close()
	astmt, err := tx.PrepareContext(ctx, `INSERT INTO arcs (graph_id, seq, from_idx, to_idx, weight) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	defer astmt.Close()

	seq := 0
	for _, v := range g.Vertices() {
		if _, err = vstmt.ExecContext(ctx, graphID, v.Index, v.ID, v.Payload); err != nil {
			return fmt.Errorf("save %q: vertex %d: %w", name, v.ID, err)
		}
		for to, w := range g.Neighbors(v.Index) {
			if _, err = astmt.ExecContext(ctx, graphID, seq, v.Index, to, w); err != nil {
				return fmt.Errorf("save %q: arc %d->%d: %w", name, v.Index, to, err)
			}
			seq++
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Saved graph", "name", name, "vertices", g.Order(), "arcs", seq)

	return nil
}

// Snapshot reads the stored form of the graph called name.
func (d *DB) Snapshot(ctx context.Context, name string) (*Snapshot, error) {
	v, err, shared := d.group.Do(name, func() (any, error) {
		return d.readSnapshot(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		ctxlog.FromContext(ctx).Debug("Shared snapshot read", "name", name)
	}

	return v.(*Snapshot), nil
}

func (d *DB) readSnapshot(ctx context.Context, name string) (*Snapshot, error) {
	var (
		graphID int64
		savedAt string
		snap    = &Snapshot{}
	)
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, name, storage, saved_at FROM graphs WHERE name = ?`, name,
	).Scan(&graphID, &snap.Name, &snap.Storage, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	if snap.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt); err != nil {
		return nil, fmt.Errorf("load %q: saved_at: %w", name, err)
	}

	rows, err := d.sql.QueryContext(ctx,
		`SELECT idx, id, payload FROM vertices WHERE graph_id = ? ORDER BY idx`, graphID)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	for rows.Next() {
		var v core.Vertex[string]
		if err = rows.Scan(&v.Index, &v.ID, &v.Payload); err != nil {
			rows.Close()
			return nil, fmt.Errorf("load %q: %w", name, err)
		}
		snap.Vertices = append(snap.Vertices, v)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}

	rows, err = d.sql.QueryContext(ctx,
		`SELECT from_idx, to_idx, weight FROM arcs WHERE graph_id = ? ORDER BY seq`, graphID)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var a Arc
		if err = rows.Scan(&a.From, &a.To, &a.Weight); err != nil {
			return nil, fmt.Errorf("load %q: %w", name, err)
		}
		snap.Arcs = append(snap.Arcs, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	snap.Summary.Vertices = len(snap.Vertices)
	snap.Summary.Arcs = len(snap.Arcs)

	return snap, nil
}

// Load rebuilds the graph called name into dst, which should be empty.
// It returns the storage label the graph was saved with.
func (d *DB) Load(ctx context.Context, name string, dst core.MutableGraph[string]) (string, error) {
	snap, err := d.Snapshot(ctx, name)
	if err != nil {
		return "", err
	}
	if err = snap.Apply(dst); err != nil {
		return "", fmt.Errorf("load %q: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Loaded graph", "name", name, "vertices", len(snap.Vertices), "arcs", len(snap.Arcs))

	return snap.Storage, nil
}

// Apply adds the snapshot's vertices and arcs to dst. A matrix holds one
// arc per ordered pair, so parallel arcs are folded to the cheapest, as
// matrix.FromGraph does.
func (s *Snapshot) Apply(dst core.MutableGraph[string]) error {
	for _, v := range s.Vertices {
		if _, err := dst.AddVertex(v.ID, v.Payload); err != nil {
			return err
		}
	}
	arcs := s.Arcs
	if _, ok := dst.(*matrix.Matrix[string]); ok {
		arcs = cheapestArcs(arcs)
	}
	for _, a := range arcs {
		if a.From < 0 || a.From >= len(s.Vertices) || a.To < 0 || a.To >= len(s.Vertices) {
			return fmt.Errorf("arc %d->%d: %w", a.From, a.To, core.ErrVertexNotFound)
		}
		if err := dst.AddEdge(s.Vertices[a.From].ID, s.Vertices[a.To].ID, a.Weight); err != nil {
			return err
		}
	}

	return nil
}

// cheapestArcs keeps one arc per (From, To), the lightest, in first-seen order.
func cheapestArcs(arcs []Arc) []Arc {
	out := make([]Arc, 0, len(arcs))
	pos := make(map[[2]int]int, len(arcs))
	for _, a := range arcs {
		key := [2]int{a.From, a.To}
		if i, ok := pos[key]; ok {
			out[i].Weight = min(out[i].Weight, a.Weight)
			continue
		}
		pos[key] = len(out)
		out = append(out, a)
	}

	return out
}

// List returns a summary of every saved graph, ordered by name.
func (d *DB) List(ctx context.Context) ([]Summary, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT g.name, g.storage, g.saved_at,
		       (SELECT COUNT(*) FROM vertices v WHERE v.graph_id = g.id),
		       (SELECT COUNT(*) FROM arcs a WHERE a.graph_id = g.id)
		FROM graphs g
		ORDER BY g.name`)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			s       Summary
			savedAt string
		)
		if err = rows.Scan(&s.Name, &s.Storage, &savedAt, &s.Vertices, &s.Arcs); err != nil {
			return nil, fmt.Errorf("list graphs: %w", err)
		}
		if s.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt); err != nil {
			return nil, fmt.Errorf("list graphs: %q saved_at: %w", s.Name, err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// Delete removes the graph called name.
func (d *DB) Delete(ctx context.Context, name string) error {
	res, err := d.sql.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return nil
}
