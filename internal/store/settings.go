package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// GetJWTSecret retrieves the JWT secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	// Try to generate and insert first (safe against races).
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES ('jwt_secret', ?)`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt_secret: %w", err)
	}

	// Always read back (either our insert or the existing value).
	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'jwt_secret'`,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying jwt_secret: %w", err)
	}

	return secret, nil
}

// SaveAdminCredentials stores the admin username and password hash. There is
// a single static admin credential, set on first run.
func SaveAdminCredentials(ctx context.Context, db *sql.DB, username, passwordHash string) error {
	for key, value := range map[string]string{
		"admin_user":          username,
		"admin_password_hash": passwordHash,
	} {
		_, err := db.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("storing %s: %w", key, err)
		}
	}
	return nil
}

// AdminCredentials returns the stored admin username and password hash, or
// empty strings if none have been set.
func AdminCredentials(ctx context.Context, db *sql.DB) (username, passwordHash string, err error) {
	read := func(key string) (string, error) {
		var value string
		err := db.QueryRowContext(ctx,
			`SELECT value FROM settings WHERE key = ?`, key,
		).Scan(&value)
		if err == sql.ErrNoRows {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("querying %s: %w", key, err)
		}
		return value, nil
	}

	username, err = read("admin_user")
	if err != nil {
		return "", "", err
	}
	passwordHash, err = read("admin_password_hash")
	if err != nil {
		return "", "", err
	}
	return username, passwordHash, nil
}
