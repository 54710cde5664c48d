package http

import (
	"context"
	"net/http"
	"time"

	"github.com/atinyakov/criptopedia/internal/middleware"
	"github.com/atinyakov/criptopedia/internal/models"
	"go.uber.org/zap"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login verifies credentials and opens a session.
	Login(ctx context.Context, username, password string) (models.Session, error)
	// Authenticate resolves a session token to its username.
	Authenticate(ctx context.Context, token string) (string, error)
	// Logout revokes a session token.
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles HTTP requests for admin login, session checks and logout.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	Logger      *zap.Logger
}

// LoginRequest represents the JSON payload for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userInfo struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Success   bool      `json:"success"`
	User      userInfo  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type checkResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *userInfo `json:"user,omitempty"`
}

// Login handles POST /auth/login.
// On success it returns the bearer token to send on /admin requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		User:      userInfo{Username: session.Username},
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Check handles GET /auth/check. It never fails: an absent or stale token
// simply reports authenticated=false.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Authenticate(r.Context(), middleware.BearerToken(r))
	if err != nil {
		writeJSON(w, http.StatusOK, checkResponse{Authenticated: false})
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{
		Authenticated: true,
		User:          &userInfo{Username: user},
	})
}

// Logout handles POST /auth/logout by revoking the bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), middleware.BearerToken(r)); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
