package http

import (
	"net/http"

	"github.com/atinyakov/criptopedia/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Status  *StatusHandler
	Catalog *CatalogHandler
	Auth    *AuthHandler
	Videos  *VideoHandler
	// Authenticator guards the /admin group.
	Authenticator middleware.Authenticator
	// AllowedOrigins are the browser origins accepted by CORS.
	AllowedOrigins []string
}

// NewRouter constructs and returns an HTTP handler that serves
// the Criptopedia API.
//
// Routes:
//
//	GET    /                        → Status.Root
//	GET    /health                  → Status.Health
//	GET    /algorithms              → Catalog.List
//	GET    /algorithms/{id}         → Catalog.Get
//	POST   /auth/login              → Auth.Login
//	GET    /auth/check              → Auth.Check
//	POST   /auth/logout             → Auth.Logout
//	POST   /videos/search           → Videos.Search
//	POST   /admin/algorithms        → Catalog.Create (session required)
//	PUT    /admin/algorithms/{id}   → Catalog.Update (session required)
//	DELETE /admin/algorithms/{id}   → Catalog.Delete (session required)
//
// Middleware chain (applied in order):
//  1. CORS(AllowedOrigins)
//  2. AllowContentType("application/json") for requests with a body
//  3. WithRequestLogging(logger)
//  4. SessionAuth on /admin
func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(h.AllowedOrigins))
	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", h.Status.Root)
	r.Get("/health", h.Status.Health)

	r.Get("/algorithms", h.Catalog.List)
	r.Get("/algorithms/{id}", h.Catalog.Get)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)
		r.Get("/check", h.Auth.Check)
		r.Post("/logout", h.Auth.Logout)
	})

	r.Post("/videos/search", h.Videos.Search)

	// Protected group: requires a live admin session
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.SessionAuth(h.Authenticator))
		r.Post("/algorithms", h.Catalog.Create)
		r.Put("/algorithms/{id}", h.Catalog.Update)
		r.Delete("/algorithms/{id}", h.Catalog.Delete)
	})

	return r
}
