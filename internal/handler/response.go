package handler

import "github.com/moodreel/recommendation-service/internal/domain"

type SessionResponse struct {
	SessionID string                 `json:"session_id"`
	Mood      domain.Mood            `json:"mood"`
	Context   domain.SocialContext   `json:"context"`
	Moods     []domain.Mood          `json:"moods"`
	Contexts  []domain.SocialContext `json:"contexts"`
}

type RecommendationsResponse struct {
	SessionID       string               `json:"session_id"`
	Query           string               `json:"query"`
	Recommendations []domain.RankedMovie `json:"recommendations"`
	Metadata        RecommendationsMeta  `json:"metadata"`
}

type RecommendationsMeta struct {
	Loading     bool   `json:"loading"`
	Message     string `json:"message,omitempty"`
	TotalCount  int    `json:"total_count"`
	GeneratedAt string `json:"generated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
