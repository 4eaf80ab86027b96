// Package history keeps the session's ordered chat log. The log lives in an
// in-memory SQLite database: process-local, discarded on exit, never written
// to disk. Turns only grow for the lifetime of the session.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver.

	"github.com/hoanghai1803/newsgenie/internal/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS turns (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		role       TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
`

// Store records and replays session turns.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory turn log. SQLite allows only one concurrent
// writer, so the connection pool is capped at a single connection; that also
// keeps the :memory: database from silently splitting into one database per
// connection.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing session schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database, discarding all turns.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one turn at the end of the session log and returns its ID.
func (s *Store) Append(ctx context.Context, role, content string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (role, content, created_at) VALUES (?, ?, ?)`,
		role, content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("appending turn: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting turn id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit turns in chronological order, ending with the
// most recent. A limit <= 0 returns the whole session.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.Turn, error) {
	query := `SELECT id, role, content, created_at FROM turns ORDER BY id`
	var args []any
	if limit > 0 {
		// Take the newest N, then flip back to chronological order.
		query = `SELECT id, role, content, created_at FROM
			(SELECT id, role, content, created_at FROM turns ORDER BY id DESC LIMIT ?)
			ORDER BY id`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying turns: %w", err)
	}
	defer rows.Close()

	var turns []models.Turn
	for rows.Next() {
		var (
			turn      models.Turn
			createdAt string
		)
		if err := rows.Scan(&turn.ID, &turn.Role, &turn.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning turn row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			turn.CreatedAt = t
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turn rows: %w", err)
	}
	return turns, nil
}
