package handler

import (
	"encoding/json"
	"net/http"

	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/moodreel/recommendation-service/internal/session"
)

type Handler struct {
	sessions *session.Manager
	history  domain.ViewingHistory
}

func NewHandler(sessions *session.Manager, history domain.ViewingHistory) *Handler {
	return &Handler{sessions: sessions, history: history}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
