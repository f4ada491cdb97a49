package kv

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLite persists payloads in the collections table, one row per key.
type SQLite struct {
	DB *sql.DB
}

// NewSQLite returns a Store backed by the given database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{DB: db}
}

// Load returns the payload stored under key, or nil if the key is absent.
func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading collection %q: %w", key, err)
	}
	return value, nil
}

// Save replaces the payload stored under key.
func (s *SQLite) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO collections (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("saving collection %q: %w", key, err)
	}
	return nil
}
