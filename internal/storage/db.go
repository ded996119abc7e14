// Package storage keeps an audit log of resolved wiki lookups in sqlite.
// The pipeline never reads from it; session state stays in memory.
package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"game-wiki-overlay/pkg/logger"
)

type DB struct {
	db  *sql.DB
	log *logger.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS lookups (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp DATETIME NOT NULL,
    game_key TEXT NOT NULL,
    search_term TEXT NOT NULL,
    url TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Lookup is one recorded wiki resolution.
type Lookup struct {
	Timestamp  time.Time
	GameKey    string
	SearchTerm string
	URL        string
}

// Open creates or opens history.db inside the given directory.
func Open(dir string, log *logger.Logger) (*DB, error) {
	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps the write path cheap next to the UI-facing pipeline.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db: db, log: log}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Record stores one resolved lookup.
func (d *DB) Record(l Lookup) error {
	_, err := d.db.Exec(
		"INSERT INTO lookups (timestamp, game_key, search_term, url) VALUES (?, ?, ?, ?)",
		l.Timestamp, l.GameKey, l.SearchTerm, l.URL)
	if err != nil {
		return fmt.Errorf("failed to insert lookup: %w", err)
	}
	return nil
}

// Recent returns the latest n lookups, newest first.
func (d *DB) Recent(n int) ([]Lookup, error) {
	rows, err := d.db.Query(
		"SELECT timestamp, game_key, search_term, url FROM lookups ORDER BY timestamp DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		var l Lookup
		if err := rows.Scan(&l.Timestamp, &l.GameKey, &l.SearchTerm, &l.URL); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// Cleanup removes lookups older than the given duration.
func (d *DB) Cleanup(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	res, err := d.db.Exec("DELETE FROM lookups WHERE timestamp < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup old lookups: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		d.log.Debug("Cleaned up old lookups", "removed", n)
	}
	return nil
}
