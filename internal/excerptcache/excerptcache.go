// Package excerptcache persists document excerpts (abstracts) across runs.
// It is the only state the synthesis keeps between builds: a text-keyed map
// from document content hash to extracted excerpt, so unchanged documents
// skip tree parsing on subsequent runs.
package excerptcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed excerpt cache.
// Use ":memory:" for an in-memory cache, or a file path for persistence.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the cache at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open excerpt cache: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize excerpt cache schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS excerpts (
		key TEXT PRIMARY KEY,
		excerpt TEXT NOT NULL,
		updated INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Key derives the cache key for a document's content.
func Key(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached excerpt for a key, and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var excerpt string
	err := s.db.QueryRow("SELECT excerpt FROM excerpts WHERE key = ?", key).Scan(&excerpt)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query excerpt: %w", err)
	}
	return excerpt, true, nil
}

// Put stores or replaces the excerpt for a key.
func (s *Store) Put(key, excerpt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO excerpts (key, excerpt, updated) VALUES (?, ?, ?) "+
			"ON CONFLICT(key) DO UPDATE SET excerpt = excluded.excerpt, updated = excluded.updated",
		key, excerpt, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store excerpt: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
