// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MoayyadShahid/MVPXiv/internal/rowmap"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// Store reads batches and ideas from a SQLite database populated by the
// upstream generation run. The store itself never writes content;
// string-list columns hold JSON text and are decoded by the row mapper.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the content database at dbPath and ensures
// the schema exists. Creating the schema is idempotent; an empty
// database simply serves the "no batches yet" state.
func OpenStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS batches (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			sources TEXT,
			research_themes TEXT,
			counts_backlog INTEGER NOT NULL DEFAULT 0,
			counts_considerable INTEGER NOT NULL DEFAULT 0,
			counts_promising INTEGER NOT NULL DEFAULT 0,
			counts_lucrative INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS ideas (
			id TEXT PRIMARY KEY,
			batch_date TEXT NOT NULL,
			category TEXT NOT NULL,
			startup_name TEXT NOT NULL,
			value_proposition TEXT NOT NULL,
			technical_core TEXT NOT NULL,
			implementation TEXT NOT NULL,
			tech_stack TEXT,
			resume_bullets TEXT,
			why_this_paper TEXT NOT NULL,
			paper_title TEXT NOT NULL,
			paper_url TEXT NOT NULL,
			paper_authors TEXT,
			paper_abstract TEXT,
			paper_arxiv_id TEXT,
			paper_published_at TEXT,
			paper_primary_category TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ideas_batch_date ON ideas(batch_date)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// LatestBatch fetches the newest batch row, then its idea rows ordered
// by ascending creation time. Idea resolution runs strictly after the
// batch fetch succeeds; an idea query failure fails the whole call, so
// a partial batch is never returned. An empty store yields (nil, nil).
func (s *Store) LatestBatch(ctx context.Context) (*BatchWithIdeas, error) {
	row, err := s.queryOneRow(ctx, `SELECT * FROM batches ORDER BY id DESC LIMIT 1`)
	if err != nil {
		return nil, &BackendError{Op: "fetching latest batch", Err: err}
	}
	if row == nil {
		return nil, nil
	}
	return s.assembleBatch(ctx, row)
}

// Batches fetches all batch rows newest-first, then for each batch only
// the identifiers of its ideas. The per-batch lookups run sequentially
// so the result keeps the descending-date order of the initial query.
func (s *Store) Batches(ctx context.Context) ([]types.Batch, error) {
	rows, err := s.queryRows(ctx, `SELECT * FROM batches ORDER BY id DESC`)
	if err != nil {
		return nil, &BackendError{Op: "fetching batches", Err: err}
	}

	batches := make([]types.Batch, 0, len(rows))
	for _, row := range rows {
		date, _ := row["id"].(string)
		ids, err := s.ideaIDsForBatch(ctx, date)
		if err != nil {
			return nil, &BackendError{Op: "fetching idea ids for batch " + date, Err: err}
		}
		batch, err := rowmap.Batch(row, ids)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

// BatchByDate fetches the batch row keyed by date, then its idea rows
// ordered by ascending creation time. A missing date wraps ErrNotFound.
func (s *Store) BatchByDate(ctx context.Context, date string) (*BatchWithIdeas, error) {
	row, err := s.queryOneRow(ctx, `SELECT * FROM batches WHERE id = ? LIMIT 1`, date)
	if err != nil {
		return nil, &BackendError{Op: "fetching batch " + date, Err: err}
	}
	if row == nil {
		return nil, fmt.Errorf("batch %s: %w", date, ErrNotFound)
	}
	return s.assembleBatch(ctx, row)
}

// IdeaByID fetches a single idea row. A missing id wraps ErrNotFound.
func (s *Store) IdeaByID(ctx context.Context, id string) (*types.Idea, error) {
	row, err := s.queryOneRow(ctx, `SELECT * FROM ideas WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return nil, &BackendError{Op: "fetching idea " + id, Err: err}
	}
	if row == nil {
		return nil, fmt.Errorf("idea %s: %w", id, ErrNotFound)
	}
	idea, err := rowmap.Idea(row)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// assembleBatch turns a fetched batch row into a BatchWithIdeas by
// loading and mapping the batch's idea rows. The batch's IdeaIDs come
// from the idea rows themselves; the batches table does not store them.
func (s *Store) assembleBatch(ctx context.Context, batchRow rowmap.Row) (*BatchWithIdeas, error) {
	date, _ := batchRow["id"].(string)

	ideaRows, err := s.queryRows(ctx,
		`SELECT * FROM ideas WHERE batch_date = ? ORDER BY created_at ASC`, date)
	if err != nil {
		return nil, &BackendError{Op: "fetching ideas for batch " + date, Err: err}
	}

	ids := make([]string, 0, len(ideaRows))
	ideas := make([]types.Idea, 0, len(ideaRows))
	for _, row := range ideaRows {
		idea, err := rowmap.Idea(row)
		if err != nil {
			return nil, err
		}
		ids = append(ids, idea.ID)
		ideas = append(ideas, idea)
	}

	batch, err := rowmap.Batch(batchRow, ids)
	if err != nil {
		return nil, err
	}
	return &BatchWithIdeas{Batch: batch, Ideas: ideas}, nil
}

func (s *Store) ideaIDsForBatch(ctx context.Context, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM ideas WHERE batch_date = ? ORDER BY created_at ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// queryOneRow runs query and returns the single result as a column map,
// or nil when there is no row.
func (s *Store) queryOneRow(ctx context.Context, query string, args ...any) (rowmap.Row, error) {
	rows, err := s.queryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// queryRows runs query and scans every result generically into a
// column-name map, the shape the row mapper consumes. BLOB and TEXT
// values arrive as []byte from the driver and are kept as strings.
func (s *Store) queryRows(ctx context.Context, query string, args ...any) ([]rowmap.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []rowmap.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(rowmap.Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
