package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/criptopedia/internal/models"
)

// NameResolver maps an algorithm ID to its display name.
type NameResolver interface {
	ResolveName(ctx context.Context, id string) string
}

// VideoFinder returns suggested videos for an algorithm.
type VideoFinder interface {
	FindVideos(ctx context.Context, id, name string) []models.VideoResult
}

// VideoHandler handles explanatory video searches.
type VideoHandler struct {
	Names  NameResolver
	Videos VideoFinder
	// ProviderEnabled reports whether a real video provider is configured.
	ProviderEnabled bool
}

// VideoRequest is the body of POST /videos/search.
type VideoRequest struct {
	Algorithm string `json:"algorithm"`
}

type videoResponse struct {
	Status        string               `json:"status"`
	Algorithm     string               `json:"algorithm"`
	AlgorithmName string               `json:"algorithm_name"`
	Videos        []models.VideoResult `json:"videos"`
	TotalResults  int                  `json:"total_results"`
	YouTubeAPI    string               `json:"youtube_api"`
}

// Search handles POST /videos/search. The algorithm need not exist in
// the catalog; unknown IDs are searched under their raw ID, as sent.
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id := req.Algorithm
	if strings.TrimSpace(id) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "El campo algorithm es obligatorio")
		return
	}

	name := h.Names.ResolveName(r.Context(), id)
	videos := h.Videos.FindVideos(r.Context(), id, name)

	apiState := "INACTIVA"
	if h.ProviderEnabled {
		apiState = "ACTIVA"
	}
	writeJSON(w, http.StatusOK, videoResponse{
		Status:        "success",
		Algorithm:     id,
		AlgorithmName: name,
		Videos:        videos,
		TotalResults:  len(videos),
		YouTubeAPI:    apiState,
	})
}
