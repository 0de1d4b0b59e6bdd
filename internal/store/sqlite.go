// Package store keeps a local SQLite record of generation runs and a cache
// of externally fetched candidate points.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/poiforge/internal/dataset"
	"github.com/sells-group/poiforge/internal/geo"
)

// Store wraps a SQLite database. It implements the assembler's optional
// CandidateCache and RunRecorder collaborators.
type Store struct {
	db *sql.DB
}

// New opens a SQLite database at the given path and configures WAL mode.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	fetched     INTEGER NOT NULL,
	synthesized INTEGER NOT NULL,
	duplicates  INTEGER NOT NULL,
	final       INTEGER NOT NULL,
	elapsed_ms  INTEGER NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS candidate_cache (
	category   TEXT NOT NULL,
	latitude   REAL NOT NULL,
	longitude  REAL NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_category ON runs(category);
CREATE INDEX IF NOT EXISTS idx_candidate_cache_category ON candidate_cache(category);
`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun implements dataset.RunRecorder.
func (s *Store) RecordRun(ctx context.Context, sum dataset.Summary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, category, fetched, synthesized, duplicates, final, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.RunID, string(sum.Category), sum.Fetched, sum.Synthesized,
		sum.Duplicates, sum.Final, sum.Elapsed.Milliseconds(), time.Now().UTC(),
	)
	return eris.Wrapf(err, "store: insert run %s", sum.RunID)
}

// RunRecord is one row of the run log.
type RunRecord struct {
	ID          string
	Category    dataset.Category
	Fetched     int
	Synthesized int
	Duplicates  int
	Final       int
	ElapsedMS   int64
	CreatedAt   time.Time
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, fetched, synthesized, duplicates, final, elapsed_ms, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "store: list runs")
	}
	defer rows.Close() //nolint:errcheck

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var cat string
		if err := rows.Scan(&r.ID, &cat, &r.Fetched, &r.Synthesized,
			&r.Duplicates, &r.Final, &r.ElapsedMS, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "store: scan run row")
		}
		r.Category = dataset.Category(cat)
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "store: iterate runs")
}

// SaveCandidates implements dataset.CandidateCache. It replaces the cached
// set for the category wholesale.
func (s *Store) SaveCandidates(ctx context.Context, c dataset.Category, points []geo.Point) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "store: begin cache tx")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM candidate_cache WHERE category = ?`, string(c)); err != nil {
		return eris.Wrap(err, "store: clear cache")
	}

	now := time.Now().UTC()
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO candidate_cache (category, latitude, longitude, fetched_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return eris.Wrap(err, "store: prepare cache insert")
	}
	defer stmt.Close() //nolint:errcheck

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, string(c), p.Latitude, p.Longitude, now); err != nil {
			return eris.Wrap(err, "store: insert cache row")
		}
	}

	return eris.Wrap(tx.Commit(), "store: commit cache tx")
}

// Candidates implements dataset.CandidateCache.
func (s *Store) Candidates(ctx context.Context, c dataset.Category) ([]geo.Point, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT latitude, longitude FROM candidate_cache WHERE category = ? ORDER BY rowid`, string(c))
	if err != nil {
		return nil, eris.Wrap(err, "store: query cache")
	}
	defer rows.Close() //nolint:errcheck

	var out []geo.Point
	for rows.Next() {
		var p geo.Point
		if err := rows.Scan(&p.Latitude, &p.Longitude); err != nil {
			return nil, eris.Wrap(err, "store: scan cache row")
		}
		out = append(out, p)
	}
	return out, eris.Wrap(rows.Err(), "store: iterate cache")
}
