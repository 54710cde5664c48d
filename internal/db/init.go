// Package db opens the PostgreSQL database, creates the catalog and
// session schema and seeds the catalog on first start.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/criptopedia/internal/models"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS algorithms (
    position BIGSERIAL,
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    encryption_example TEXT NOT NULL DEFAULT '',
    decryption_example TEXT NOT NULL DEFAULT '',
    key_type TEXT NOT NULL DEFAULT '',
    difficulty TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sessions (
    token TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at);
`

// InitPostgres connects to dsn, verifies the connection and creates the schema.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}

// SeedAlgorithms inserts seed in order when the algorithms table is empty.
// It reports how many rows were inserted; an already populated table is left alone.
func SeedAlgorithms(ctx context.Context, db *sql.DB, seed []models.Algorithm) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM algorithms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count algorithms: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, a := range seed {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO algorithms (id, name, category, description, encryption_example, decryption_example, key_type, difficulty)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, a.ID, a.Name, a.Category, a.Description, a.EncryptionExample, a.DecryptionExample, a.KeyType, a.Difficulty)
		if err != nil {
			return 0, fmt.Errorf("seed algorithm %q: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return len(seed), nil
}
