package engine

import "github.com/moodreel/recommendation-service/internal/domain"

// ContextAdmits is the hard admission gate for a social viewing
// context. Movies without usable enrichment are always admitted — the
// gate cannot evaluate them, so it fails open and the score floor in
// the aggregator ranks them near the bottom instead.
func ContextAdmits(details *domain.MovieDetails, context domain.SocialContext) bool {
	if !details.Usable() {
		return true
	}

	switch context {
	case domain.ContextDateNight:
		// Keep the evening on track: mid-length only, no horror or
		// documentaries.
		if details.RuntimeMinutes < 90 || details.RuntimeMinutes > 150 {
			return false
		}
		if details.HasAnyGenre("Horror", "Documentary") {
			return false
		}
		return true
	case domain.ContextFamilyTime:
		switch details.ContentRating {
		case "R", "NC-17", "X", "Adult":
			return false
		}
		return true
	default:
		// Solo Night, Friend Group, Background Noise admit everything.
		return true
	}
}

// ContextModifier is the soft ranking nudge for a social context,
// deliberately decoupled from ContextAdmits so a context can bias the
// order without hiding borderline movies.
func ContextModifier(details *domain.MovieDetails, context domain.SocialContext) float64 {
	if !details.Usable() {
		return 0
	}

	modifier := 0.0
	switch context {
	case domain.ContextDateNight:
		if details.HasAnyGenre("Romance", "Comedy", "Thriller") {
			modifier += 0.25
		}
	case domain.ContextFamilyTime:
		if details.HasAnyGenre("Animation", "Family", "Kids") {
			modifier += 0.2
		}
	}
	return modifier
}
