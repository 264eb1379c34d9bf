// Package store is the relational system of record for the controlled
// vocabulary: word roots and standard fields live in SQLite, which
// exclusively owns persistent identity and content. The vector index and
// the segmenter dictionary are derived, best-effort replicas keyed by the
// integer identifiers this store assigns.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Config represents configuration options for the vocabulary store
type Config struct {
	Path string `json:"path"` // Database file path
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{Path: "vocab.db"}
}

// Store persists word roots and standard fields in SQLite
type Store struct {
	db     *sql.DB
	config Config
	mu     sync.RWMutex
	closed bool
}

// New creates a vocabulary store at the given path
func New(path string) (*Store, error) {
	config := DefaultConfig()
	if path != "" {
		config.Path = path
	}
	return NewWithConfig(config)
}

// NewWithConfig creates a vocabulary store with custom configuration
func NewWithConfig(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, wrapError("init", fmt.Errorf("database path cannot be empty"))
	}
	return &Store{config: config}, nil
}

// Init opens the database and creates the schema
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return wrapError("init", ErrStoreClosed)
	}

	// _journal_mode=WAL: Better concurrency
	// _busy_timeout=5000: Wait up to 5s for lock instead of failing immediately
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", s.config.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return wrapError("init", fmt.Errorf("failed to open database: %w", err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(2 * time.Hour)

	s.db = db

	if err := s.createTables(ctx); err != nil {
		return wrapError("init", err)
	}
	return nil
}

// createTables creates the necessary database tables
func (s *Store) createTables(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS standard_word_roots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cn_name TEXT NOT NULL UNIQUE,
		en_abbr TEXT NOT NULL,
		en_full_name TEXT,
		associated_terms TEXT,
		remark TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS standard_fields (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		field_cn_name TEXT NOT NULL,
		field_en_name TEXT NOT NULL,
		composition_ids TEXT NOT NULL DEFAULT '[]',
		data_type TEXT NOT NULL,
		associated_terms TEXT,
		is_standard INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_word_roots_cn_name ON standard_word_roots(cn_name);
	CREATE INDEX IF NOT EXISTS idx_fields_cn_name ON standard_fields(field_cn_name);
	CREATE INDEX IF NOT EXISTS idx_word_roots_created_at ON standard_word_roots(created_at);
	CREATE INDEX IF NOT EXISTS idx_fields_created_at ON standard_fields(created_at);
	`

	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Close closes the store and releases resources
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return wrapError("close", err)
		}
	}
	return nil
}

// guard takes the read lock and reports whether the store is usable.
// Callers must defer s.mu.RUnlock() when err is nil.
func (s *Store) guard(op string) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return wrapError(op, ErrStoreClosed)
	}
	return nil
}

// likePattern builds a case-insensitive substring LIKE argument.
// Matching lowercases both sides, so ASCII behaves like ILIKE and CJK
// text (caseless anyway) matches verbatim.
func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

// nullable maps empty strings to NULL so optional columns stay NULL
// instead of accumulating empty-string rows.
func nullable(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
