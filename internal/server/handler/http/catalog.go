// Package http provides the HTTP handlers and routing for the
// Criptopedia catalog, admin and video search API.
package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atinyakov/criptopedia/internal/middleware"
	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService defines the catalog operations required by the CatalogHandler.
type CatalogService interface {
	List(ctx context.Context) ([]models.Algorithm, error)
	Get(ctx context.Context, id string) (*models.Algorithm, error)
	Create(ctx context.Context, algo models.Algorithm) (*models.Algorithm, error)
	Update(ctx context.Context, id string, algo models.Algorithm) (*models.Algorithm, error)
	Delete(ctx context.Context, id string) (*models.Algorithm, error)
}

// CatalogHandler handles the public catalog reads and the admin mutations.
type CatalogHandler struct {
	CatalogService CatalogService
	Logger         *zap.Logger
}

// mutationResponse is the body returned by every admin mutation.
type mutationResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Algorithm *models.Algorithm `json:"algorithm"`
}

// List handles GET /algorithms.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	algos, err := h.CatalogService.List(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, algos)
}

// Get handles GET /algorithms/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	algo, err := h.CatalogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, algo)
}

// Create handles POST /admin/algorithms and answers 201 on success.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Algorithm
	if !decodeBody(w, r, &req) {
		return
	}
	algo, err := h.CatalogService.Create(r.Context(), req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	h.logMutation(r, "algorithm created", algo.ID)
	writeJSON(w, http.StatusCreated, mutationResponse{
		Success:   true,
		Message:   "Algoritmo creado exitosamente",
		Algorithm: algo,
	})
}

// Update handles PUT /admin/algorithms/{id}.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req models.Algorithm
	if !decodeBody(w, r, &req) {
		return
	}
	algo, err := h.CatalogService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	h.logMutation(r, "algorithm updated", id)
	writeJSON(w, http.StatusOK, mutationResponse{
		Success:   true,
		Message:   fmt.Sprintf("Algoritmo %s actualizado", id),
		Algorithm: algo,
	})
}

// Delete handles DELETE /admin/algorithms/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	algo, err := h.CatalogService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	h.logMutation(r, "algorithm deleted", id)
	writeJSON(w, http.StatusOK, mutationResponse{
		Success:   true,
		Message:   fmt.Sprintf("Algoritmo %s eliminado", id),
		Algorithm: algo,
	})
}

// logMutation records which admin changed which algorithm.
func (h *CatalogHandler) logMutation(r *http.Request, msg, id string) {
	if h.Logger == nil {
		return
	}
	h.Logger.Info(msg,
		zap.String("admin", middleware.GetUserFromContext(r.Context())),
		zap.String("algorithm", id),
	)
}
