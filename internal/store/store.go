// Package store is the persistence collaborator: it keeps the category tree
// as flat materialized-path rows in SQLite and hands them out in the sorted
// order the builder requires.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Config holds store initialization parameters.
type Config struct {
	DBPath string // path to SQLite file
}

// Store provides persistent category storage backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the category store at the configured path.
func Open(cfg Config) (*Store, error) {
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
