package engine

import (
	"time"

	"github.com/moodreel/recommendation-service/internal/domain"
)

// MoodScore rates how well a movie's attributes fit the selected mood.
// Unavailable enrichment scores 0. The per-mood affinity terms are
// evaluated independently, summed, and floored at 0; there is no upper
// clamp (typical range 0-1.5).
func MoodScore(details *domain.MovieDetails, mood domain.Mood, now time.Time) float64 {
	if !details.Usable() {
		return 0
	}

	score := 0.0
	runtime := details.RuntimeMinutes
	rating := details.ImdbRating
	currentYear := now.Year()

	// Fresh releases get a small bonus regardless of mood.
	if details.ReleaseYear >= currentYear-2 {
		score += 0.20
	}

	switch mood {
	case domain.MoodGoodCry:
		if details.HasAnyGenre("Drama", "Romance") {
			score += 0.8
		}
		if details.HasAnyGenre("Comedy", "Action") {
			score -= 0.5
		}
		if rating > 7.5 {
			score += 0.1
		}
	case domain.MoodBrainFood:
		if details.HasAnyGenre("Documentary", "Mystery", "Sci-Fi", "Thriller") {
			score += 0.9
		}
		if rating > 8.0 {
			score += 0.2
		}
		if runtime < 90 {
			score -= 0.3
		}
	case domain.MoodMindlessFun:
		if details.HasAnyGenre("Action", "Comedy", "Adventure") {
			score += 1.0
		}
		if runtime > 180 {
			score -= 0.15
		}
		if rating < 6.0 {
			score += 0.1
		}
	case domain.MoodEdgeOfSeat:
		if details.HasAnyGenre("Thriller", "Horror", "Action", "Mystery") {
			score += 1.0
		}
		if rating > 7.0 {
			score += 0.2
		}
		if runtime < 90 {
			score -= 0.2
		}
	case domain.MoodFeelGood:
		if details.HasAnyGenre("Comedy", "Musical", "Family", "Romance") {
			score += 1.0
		}
		if rating > 7.0 {
			score += 0.1
		}
		if details.ContentRating == "R" {
			score -= 0.3
		}
	case domain.MoodDeepThoughts:
		if details.HasAnyGenre("Drama", "Sci-Fi", "Mystery", "Documentary") {
			score += 0.9
		}
		if rating > 7.8 {
			score += 0.2
		}
		if runtime < 100 {
			score -= 0.2
		}
	}

	return max(0, score)
}

// MoodMatchPercent is the rounded percentage shown next to each
// recommendation. 0 when details are missing.
func MoodMatchPercent(details *domain.MovieDetails, mood domain.Mood, now time.Time) int {
	if details == nil {
		return 0
	}
	return int(MoodScore(details, mood, now)*100 + 0.5)
}
