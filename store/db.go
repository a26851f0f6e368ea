// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/starlane/internal/ctxlog"
)

// ErrGraphNotFound is returned when no graph is saved under the requested name.
var ErrGraphNotFound = errors.New("store: graph not found")

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// DB wraps a SQLite database holding saved graphs.
type DB struct {
	sql   *sql.DB
	group singleflight.Group
}

// Open opens (or creates) the database at dsn and runs migrations.
// dsn is a file path or MemoryDSN; pragmas for WAL and a busy timeout are appended.
func Open(ctx context.Context, dsn string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dsn+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps :memory: databases shared and serializes writers.
	sqlDB.SetMaxOpenConns(1)
	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err = d.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Opened graph store", "dsn", dsn)

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	version, err := d.schemaVersion(ctx)
	if err != nil {
		return err
	}

	if version < 1 {
		_, err = d.sql.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS graphs (
				id       INTEGER PRIMARY KEY AUTOINCREMENT,
				name     TEXT NOT NULL UNIQUE,
				storage  TEXT NOT NULL,
				saved_at TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS vertices (
				graph_id INTEGER NOT NULL REFERENCES graphs(id) ON DELETE CASCADE,
				idx      INTEGER NOT NULL,
				id       INTEGER NOT NULL,
				payload  TEXT NOT NULL,
				PRIMARY KEY (graph_id, idx)
			);

			CREATE TABLE IF NOT EXISTS arcs (
				graph_id INTEGER NOT NULL REFERENCES graphs(id) ON DELETE CASCADE,
				seq      INTEGER NOT NULL,
				from_idx INTEGER NOT NULL,
				to_idx   INTEGER NOT NULL,
				weight   INTEGER NOT NULL,
				PRIMARY KEY (graph_id, seq)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		logger.Debug("Applied migration v1")
	}

	return nil
}

// schemaVersion returns the applied schema version; a database without the
// schema_version table is at version 0.
func (d *DB) schemaVersion(ctx context.Context) (int, error) {
	var tables int
	err := d.sql.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`,
	).Scan(&tables)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if tables == 0 {
		return 0, nil
	}
	var version int
	err = d.sql.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}

	return version, nil
}
