package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/criptopedia/internal/models"
	"go.uber.org/zap"
)

// Detail messages returned in {"detail": ...} error bodies.
const (
	detailNotFound     = "Algoritmo no encontrado"
	detailDuplicateID  = "El ID del algoritmo ya existe"
	detailIDMismatch   = "El ID del cuerpo no coincide con el de la ruta"
	detailInvalidInput = "Datos del algoritmo incompletos"
	detailBadCreds     = "Credenciales incorrectas"
	detailUnauthorized = "No autenticado"
	detailInvalidBody  = "Cuerpo de la petición inválido"
	detailInternal     = "Error interno"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps a service error onto its HTTP status and detail message.
// Unclassified errors are logged and reported as 500.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeDetail(w, http.StatusNotFound, detailNotFound)
	case errors.Is(err, models.ErrAlreadyExists):
		writeDetail(w, http.StatusBadRequest, detailDuplicateID)
	case errors.Is(err, models.ErrIDMismatch):
		writeDetail(w, http.StatusBadRequest, detailIDMismatch)
	case errors.Is(err, models.ErrInvalidInput):
		writeDetail(w, http.StatusUnprocessableEntity, detailInvalidInput)
	case errors.Is(err, models.ErrInvalidCredentials):
		writeDetail(w, http.StatusUnauthorized, detailBadCreds)
	case errors.Is(err, models.ErrUnauthorized):
		writeDetail(w, http.StatusUnauthorized, detailUnauthorized)
	default:
		if log != nil {
			log.Error("request failed", zap.Error(err))
		}
		writeDetail(w, http.StatusInternalServerError, detailInternal)
	}
}

// decodeBody decodes the JSON request body into v, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, detailInvalidBody)
		return false
	}
	return true
}
