package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/atinyakov/criptopedia/internal/models"
)

// SessionStore defines the session persistence operations
// required by the authentication service.
type SessionStore interface {
	// Create issues a new session for username.
	Create(ctx context.Context, username string) (models.Session, error)
	// Get returns a live session or models.ErrNotFound.
	Get(ctx context.Context, token string) (models.Session, error)
	// Delete revokes the session; unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
}

// Credentials is the single admin account allowed to log in.
type Credentials struct {
	Username string
	Password string
}

// AuthService verifies admin credentials and manages session tokens.
type AuthService struct {
	sessions SessionStore
	admin    Credentials
}

// NewAuthService constructs an AuthService checking logins against admin.
func NewAuthService(sessions SessionStore, admin Credentials) *AuthService {
	return &AuthService{sessions: sessions, admin: admin}
}

// Login checks the username/password pair and opens a session on success.
// A mismatch is reported as models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !userOK || !passOK {
		return models.Session{}, models.ErrInvalidCredentials
	}
	session, err := s.sessions.Create(ctx, username)
	if err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Authenticate returns the username owning token.
// Missing, unknown and expired tokens yield models.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", models.ErrUnauthorized
	}
	session, err := s.sessions.Get(ctx, token)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return session.Username, nil
}

// Logout revokes token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
