package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/atinyakov/criptopedia/internal/service"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a duplicate primary key.
const uniqueViolation = "23505"

var _ service.CatalogRepository = (*PostgresCatalogRepository)(nil)

// PostgresCatalogRepository implements catalog operations against a PostgreSQL database.
// Rows are ordered by the serial position column, which keeps insertion order
// across updates.
type PostgresCatalogRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a repository on top of db.
// db must be a valid *sql.DB whose schema was created by db.InitPostgres.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// List fetches every algorithm in insertion order.
func (r *PostgresCatalogRepository) List(ctx context.Context) ([]models.Algorithm, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, category, description, encryption_example, decryption_example, key_type, difficulty
		FROM algorithms ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("list algorithms: %w", err)
	}
	defer rows.Close()

	algorithms := make([]models.Algorithm, 0)
	for rows.Next() {
		var a models.Algorithm
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Description,
			&a.EncryptionExample, &a.DecryptionExample, &a.KeyType, &a.Difficulty); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		algorithms = append(algorithms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list algorithms: %w", err)
	}
	return algorithms, nil
}

// Get fetches a single algorithm by ID.
// Returns models.ErrNotFound when no row matches.
func (r *PostgresCatalogRepository) Get(ctx context.Context, id string) (*models.Algorithm, error) {
	var a models.Algorithm
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, category, description, encryption_example, decryption_example, key_type, difficulty
		FROM algorithms WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Category, &a.Description,
		&a.EncryptionExample, &a.DecryptionExample, &a.KeyType, &a.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("algorithm %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get algorithm: %w", err)
	}
	return &a, nil
}

// Create inserts a new algorithm at the end of the catalog.
// A duplicate ID is reported as models.ErrAlreadyExists.
func (r *PostgresCatalogRepository) Create(ctx context.Context, a models.Algorithm) (*models.Algorithm, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO algorithms (id, name, category, description, encryption_example, decryption_example, key_type, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.Name, a.Category, a.Description, a.EncryptionExample, a.DecryptionExample, a.KeyType, a.Difficulty)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("algorithm %q: %w", a.ID, models.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("insert algorithm: %w", err)
	}
	return &a, nil
}

// Update overwrites every column of the row stored under id.
// The position column is untouched, so the record keeps its place.
func (r *PostgresCatalogRepository) Update(ctx context.Context, id string, a models.Algorithm) (*models.Algorithm, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE algorithms SET
			id = $1, name = $2, category = $3, description = $4,
			encryption_example = $5, decryption_example = $6, key_type = $7, difficulty = $8
		WHERE id = $9
	`, a.ID, a.Name, a.Category, a.Description, a.EncryptionExample, a.DecryptionExample, a.KeyType, a.Difficulty, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("algorithm %q: %w", a.ID, models.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("update algorithm: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update algorithm: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("algorithm %q: %w", id, models.ErrNotFound)
	}
	return &a, nil
}

// Delete removes the row stored under id and returns it.
func (r *PostgresCatalogRepository) Delete(ctx context.Context, id string) (*models.Algorithm, error) {
	var a models.Algorithm
	err := r.DB.QueryRowContext(ctx, `
		DELETE FROM algorithms WHERE id = $1
		RETURNING id, name, category, description, encryption_example, decryption_example, key_type, difficulty
	`, id).Scan(&a.ID, &a.Name, &a.Category, &a.Description,
		&a.EncryptionExample, &a.DecryptionExample, &a.KeyType, &a.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("algorithm %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete algorithm: %w", err)
	}
	return &a, nil
}
