// Package history stores completed search runs in a local SQLite database.
// It records outcomes only, never the grids themselves.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at  TEXT NOT NULL,
    source      TEXT NOT NULL,
    rows        INTEGER NOT NULL,
    cols        INTEGER NOT NULL,
    walls       INTEGER NOT NULL,
    heuristic   TEXT NOT NULL,
    found       INTEGER NOT NULL,
    path_cost   INTEGER NOT NULL,
    expanded    INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL
);
`

// Run is one recorded search outcome.
type Run struct {
	ID         int64
	StartedAt  time.Time
	Source     string // grid file path, or "generated"/"tui"
	Rows       int
	Cols       int
	Walls      int
	Heuristic  string
	Found      bool
	PathCost   int
	Expanded   int
	DurationMS int64
}

// Store is a run-history database. A nil *Store is a valid no-op store, so
// callers can disable history without branching.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if it does not exist. Parent
// directories are created as needed.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// One connection: SQLite supports a single writer, and a lone pooled
	// connection keeps the PRAGMA setup applied everywhere.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one run. Calling Record on a nil Store is a no-op.
func (s *Store) Record(ctx context.Context, r Run) error {
	if s == nil {
		return nil
	}
	const q = `
		INSERT INTO runs (started_at, source, rows, cols, walls, heuristic, found, path_cost, expanded, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		r.StartedAt.UTC().Format(time.RFC3339), r.Source, r.Rows, r.Cols, r.Walls,
		r.Heuristic, r.Found, r.PathCost, r.Expanded, r.DurationMS)
	if err != nil {
		return fmt.Errorf("history: record run: %w", err)
	}
	return nil
}

// Recent returns up to n runs, newest first. Calling Recent on a nil Store
// returns an empty slice.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	if s == nil {
		return nil, nil
	}
	const q = `
		SELECT id, started_at, source, rows, cols, walls, heuristic, found, path_cost, expanded, duration_ms
		FROM runs ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.Source, &r.Rows, &r.Cols, &r.Walls,
			&r.Heuristic, &r.Found, &r.PathCost, &r.Expanded, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		started, parseErr := time.Parse(time.RFC3339, ts)
		if parseErr != nil {
			return nil, fmt.Errorf("history: parse run timestamp: %w", parseErr)
		}
		r.StartedAt = started
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}
	return out, nil
}

// Close closes the underlying database. Calling Close on a nil Store is a
// no-op.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("history: close: %w", err)
	}
	return nil
}
