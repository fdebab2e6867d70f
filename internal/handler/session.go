package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/moodreel/recommendation-service/internal/session"
)

// POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	writeJSON(w, http.StatusCreated, SessionResponse{
		SessionID: s.ID,
		Mood:      s.Store.Mood(),
		Context:   s.Store.Context(),
		Moods:     domain.Moods(),
		Contexts:  domain.SocialContexts(),
	})
}

// DELETE /sessions/{sessionID}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.sessions.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "session_not_found", "Session does not exist")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PUT /sessions/{sessionID}/query
func (h *Handler) SetQuery(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Expected JSON body with a query field")
		return
	}

	s.Coordinator.SetQuery(body.Query)
	w.WriteHeader(http.StatusNoContent)
}

// PUT /sessions/{sessionID}/mood
func (h *Handler) SetMood(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var body struct {
		Mood string `json:"mood"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Expected JSON body with a mood field")
		return
	}

	mood, err := domain.ParseMood(body.Mood)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	s.Coordinator.SetMood(mood)
	w.WriteHeader(http.StatusNoContent)
}

// PUT /sessions/{sessionID}/context
func (h *Handler) SetContext(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var body struct {
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Expected JSON body with a context field")
		return
	}

	sc, err := domain.ParseSocialContext(body.Context)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	s.Coordinator.SetContext(sc)
	w.WriteHeader(http.StatusNoContent)
}

// GET /sessions/{sessionID}/recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	ranked := s.Store.Ranked()
	writeJSON(w, http.StatusOK, RecommendationsResponse{
		SessionID:       s.ID,
		Query:           s.Store.Query(),
		Recommendations: ranked,
		Metadata: RecommendationsMeta{
			Loading:     s.Store.Loading(),
			Message:     s.Store.Message(),
			TotalCount:  len(ranked),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found", "Session does not exist")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return nil, false
	}
	return s, true
}
