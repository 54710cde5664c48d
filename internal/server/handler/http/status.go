package http

import "net/http"

// APIVersion is reported by the root endpoint.
const APIVersion = "3.0"

// StatusHandler serves the liveness endpoints.
type StatusHandler struct{}

// Root handles GET / with a short banner.
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Criptopedia API funcionando en producción",
		"status":  "active",
		"version": APIVersion,
	})
}

// Health handles GET /health.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Criptopedia API",
	})
}
