// Package cache implements the local snapshot store: the last-known-good
// application state persisted per scope key, serving as the fallback source
// of truth whenever the remote store is unreachable or empty.
//
// The store is a single-table SQLite database. It holds exactly the last
// value written per key and has no concept of conflicts.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/snapshot"

	_ "modernc.org/sqlite"
)

// KeyPrefix namespaces cache rows. Bumping the version segment on deploy
// invalidates every previously cached record, the only schema-migration
// strategy this store needs.
const KeyPrefix = "tf_v12_cache_"

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    cache_key   TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    captured_at INTEGER NOT NULL
);`

// Store persists one snapshot per scope key.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the cache database at path. The parent directory is
// created when missing. Callers must Close the store when done.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists the snapshot under the scope key, replacing any previous
// value. The write is synchronous and total; a capture timestamp is recorded
// alongside the payload.
func (s *Store) Save(key string, snap snapshot.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (cache_key, payload, captured_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, captured_at = excluded.captured_at`,
		KeyPrefix+key, string(payload), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save snapshot for %q: %w", key, err)
	}
	return nil
}

// Load returns the most recently saved snapshot for the scope key, or
// ErrCacheMiss when nothing has been cached.
func (s *Store) Load(key string) (snapshot.Snapshot, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE cache_key = ?`, KeyPrefix+key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return snapshot.Snapshot{}, apperrors.ErrCacheMiss
	}
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("load snapshot for %q: %w", key, err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		// A corrupt row is treated as absent; the next save overwrites it.
		return snapshot.Snapshot{}, apperrors.ErrCacheMiss
	}
	return snap, nil
}

// CapturedAt returns when the snapshot for key was last saved.
func (s *Store) CapturedAt(key string) (time.Time, error) {
	var ms int64
	err := s.db.QueryRow(`SELECT captured_at FROM snapshots WHERE cache_key = ?`, KeyPrefix+key).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, apperrors.ErrCacheMiss
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("load capture time for %q: %w", key, err)
	}
	return time.UnixMilli(ms), nil
}

// Delete removes the cached snapshot for the scope key. Missing keys are a
// no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE cache_key = ?`, KeyPrefix+key); err != nil {
		return fmt.Errorf("delete snapshot for %q: %w", key, err)
	}
	return nil
}
