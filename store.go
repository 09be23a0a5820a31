package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ErrRunNotFound is returned by LoadRun for an unknown id.
var ErrRunNotFound = errors.New("run not found")

// RunStore keeps the survivors of past searches in a SQLite file.
type RunStore struct {
	db *sql.DB
}

// RunRecord is one stored search.
type RunRecord struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	MaxLinks  int            `json:"maxLinks"`
	Ignore    []string       `json:"ignore"`
	Stats     RunStats       `json:"stats"`
	Survivors []SolutionView `json:"survivors"`
}

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RunSummary is a RunRecord without its survivors.
type RunSummary struct {
	ID        string
	CreatedAt time.Time
	MaxLinks  int
	Survivors int
}

const runSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	max_links INTEGER NOT NULL,
	ignored TEXT NOT NULL,
	stats BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS solutions (
	run_id TEXT NOT NULL REFERENCES runs(id),
	position INTEGER NOT NULL,
	foci TEXT NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (run_id, position)
);`

// OpenRunStore opens or creates the history database at path.
func OpenRunStore(path string) (*RunStore, error) {
	if path == "" {
		path = "usi-runs.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(runSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &RunStore{db: db}, nil
}

func (s *RunStore) Close() error {
	return s.db.Close()
}

// SaveRun stores rec under a fresh id and returns it.
func (s *RunStore) SaveRun(ctx context.Context, rec RunRecord) (retID string, retErr error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	stats, err := json.Marshal(rec.Stats)
	if err != nil {
		return "", fmt.Errorf("encode stats: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, max_links, ignored, stats) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.UTC().Format(timeLayout), rec.MaxLinks, strings.Join(rec.Ignore, ","), stats,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	for i, sv := range rec.Survivors {
		payload, err := json.Marshal(sv)
		if err != nil {
			return "", fmt.Errorf("encode solution %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO solutions (run_id, position, foci, payload) VALUES (?, ?, ?, ?)`,
			rec.ID, i, strings.Join(sv.Foci, ","), payload,
		); err != nil {
			return "", fmt.Errorf("insert solution %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return rec.ID, nil
}

// ListRuns returns the most recent runs first, at most limit of them.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.created_at, r.max_links, COUNT(so.position)
		FROM runs r LEFT JOIN solutions so ON so.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunSummary
	for rows.Next() {
		var (
			sum     RunSummary
			created string
		)
		if err := rows.Scan(&sum.ID, &created, &sum.MaxLinks, &sum.Survivors); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if sum.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// LoadRun reads a stored run with its survivors in their original order.
func (s *RunStore) LoadRun(ctx context.Context, id string) (RunRecord, error) {
	var (
		rec     RunRecord
		created string
		ignore  string
		stats   []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, max_links, ignored, stats FROM runs WHERE id = ?`, id,
	).Scan(&rec.ID, &created, &rec.MaxLinks, &ignore, &stats)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("select run: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return RunRecord{}, fmt.Errorf("parse created_at: %w", err)
	}
	if ignore != "" {
		rec.Ignore = strings.Split(ignore, ",")
	}
	if err := json.Unmarshal(stats, &rec.Stats); err != nil {
		return RunRecord{}, fmt.Errorf("decode stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM solutions WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("select solutions: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return RunRecord{}, fmt.Errorf("scan: %w", err)
		}
		var sv SolutionView
		if err := json.Unmarshal(payload, &sv); err != nil {
			return RunRecord{}, fmt.Errorf("decode solution: %w", err)
		}
		rec.Survivors = append(rec.Survivors, sv)
	}
	return rec, rows.Err()
}
