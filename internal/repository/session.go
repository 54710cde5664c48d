package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/atinyakov/criptopedia/internal/service"
	"github.com/google/uuid"
)

var _ service.SessionStore = (*PostgresSessionStore)(nil)

// PostgresSessionStore keeps admin sessions in PostgreSQL so they survive restarts.
type PostgresSessionStore struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
	// TTL is the lifetime of newly created sessions.
	TTL time.Duration
	// Now returns the current time; time.Now when nil.
	Now func() time.Time
}

// NewPostgresSessionStore creates a session store issuing sessions valid for ttl.
// db must be a valid *sql.DB whose schema was created by db.InitPostgres.
func NewPostgresSessionStore(db *sql.DB, ttl time.Duration) *PostgresSessionStore {
	return &PostgresSessionStore{DB: db, TTL: ttl, Now: time.Now}
}

func (s *PostgresSessionStore) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Create issues a session with a random token for username.
func (s *PostgresSessionStore) Create(ctx context.Context, username string) (models.Session, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return models.Session{}, err
	}
	sess := models.Session{
		Token:     token.String(),
		Username:  username,
		ExpiresAt: s.now().Add(s.TTL).UTC(),
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO sessions (token, username, expires_at) VALUES ($1, $2, $3)`,
		sess.Token, sess.Username, sess.ExpiresAt,
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// Get returns the live session for token.
// Unknown and expired tokens yield models.ErrNotFound.
func (s *PostgresSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	sess := models.Session{Token: token}
	err := s.DB.QueryRowContext(ctx,
		`SELECT username, expires_at FROM sessions WHERE token = $1 AND expires_at > $2`,
		token, s.now().UTC(),
	).Scan(&sess.Username, &sess.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// Delete revokes token. Unknown tokens are not an error.
func (s *PostgresSessionStore) Delete(ctx context.Context, token string) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired drops every expired session and reports how many were removed.
func (s *PostgresSessionStore) DeleteExpired(ctx context.Context) (int, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
