package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Entity collections are persisted as
// whole JSON documents under fixed keys (one row per collection), mirroring
// the key-value layout the data layer expects. Settings holds single
// server-side values such as the JWT secret and admin credentials.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
