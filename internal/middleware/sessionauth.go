// Package middleware provides HTTP middlewares for authentication, CORS and logging.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atinyakov/criptopedia/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// Authenticator resolves a bearer token to a username.
type Authenticator interface {
	// Authenticate returns models.ErrUnauthorized for unknown or expired tokens.
	Authenticate(ctx context.Context, token string) (string, error)
}

// SessionAuth is a middleware that requires a valid admin session.
//
// The token is read from the "Authorization: Bearer <token>" header. On
// success the username is stored in the request context, so it can be used
// downstream via GetUserFromContext. Otherwise the request is rejected with
// 401 and a JSON {"detail": ...} body.
func SessionAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), BearerToken(r))
			if err != nil {
				status, detail := http.StatusUnauthorized, "No autenticado"
				if !errors.Is(err, models.ErrUnauthorized) {
					status, detail = http.StatusInternalServerError, "Error interno"
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from the Authorization header, or "".
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetUserFromContext extracts the authenticated username from the request
// context. Returns an empty string if not found.
func GetUserFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
