// Package session keeps admin sessions in memory and expires them.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/atinyakov/criptopedia/internal/service"
	"github.com/google/uuid"
)

var _ service.SessionStore = (*MemoryStore)(nil)

// MemoryStore is a mutex-guarded in-memory session store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a store issuing sessions valid for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a session with a random token for username.
func (s *MemoryStore) Create(_ context.Context, username string) (models.Session, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return models.Session{}, err
	}
	sess := models.Session{
		Token:     token.String(),
		Username:  username,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return sess, nil
}

// Get returns the live session for token.
// Unknown and expired tokens yield models.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || sess.Expired(s.now()) {
		return models.Session{}, models.ErrNotFound
	}
	return sess, nil
}

// Delete revokes token.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// DeleteExpired drops every expired session and reports how many were removed.
func (s *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}
