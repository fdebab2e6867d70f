package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/moodreel/recommendation-service/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Post("/sessions", h.CreateSession)
	r.Delete("/sessions/{sessionID}", h.DeleteSession)
	r.Put("/sessions/{sessionID}/query", h.SetQuery)
	r.Put("/sessions/{sessionID}/mood", h.SetMood)
	r.Put("/sessions/{sessionID}/context", h.SetContext)
	r.Get("/sessions/{sessionID}/recommendations", h.GetRecommendations)
	r.Get("/api/dynamic-price", h.GetDynamicPrice)
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
