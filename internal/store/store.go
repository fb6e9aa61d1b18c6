package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/migtoonz/fasttrack/internal/tracker"
)

// Key is the fixed key the full application state is stored under.
const Key = "migtoonz-fasting-tracker-v1"

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store persists the application state as a single JSON blob in a
// SQLite key-value table. Use ":memory:" for tests.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save snapshots the full application state under the fixed key. Saves
// are best-effort: marshal or write failures are swallowed and the
// caller keeps running with its in-memory state.
func (s *Store) Save(snap tracker.Snapshot) {
	blob, err := json.Marshal(toRecord(snap))
	if err != nil {
		return
	}
	_, _ = s.db.Exec(
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		Key, string(blob))
}

// Load returns the persisted state, or nil when no record exists or
// the stored blob is malformed. Callers supply defaults on nil.
func (s *Store) Load() *tracker.Snapshot {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, Key).Scan(&blob)
	if err != nil {
		// Missing row and read errors alike fall back to defaults.
		return nil
	}

	var rec record
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		return nil
	}

	snap := rec.toSnapshot()
	return &snap
}
