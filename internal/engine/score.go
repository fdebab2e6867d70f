package engine

import (
	"time"

	"github.com/moodreel/recommendation-service/internal/domain"
)

// Signal weights for the overall recommendation score.
const (
	moodWeight    = 0.40
	contextWeight = 0.25
	priceWeight   = 0.20
	recencyWeight = 0.15

	// diversityMultiplier rewards movies whose genres are all outside
	// the viewer's recent history.
	diversityMultiplier = 1.25

	// fuzzyTieBreakWeight nudges better text matches ahead of ties.
	fuzzyTieBreakWeight = 0.05

	// unenrichedFloorWeight keeps movies without enrichment visible but
	// near the bottom of the ranking.
	unenrichedFloorWeight = 0.1
)

// ScoreInput carries every signal feeding the overall score for one
// movie. All fields are read-only; Score is a pure function of them.
type ScoreInput struct {
	Mood       domain.Mood
	Context    domain.SocialContext
	History    domain.ViewingHistory
	Price      *domain.PriceQuote
	FuzzyScore float64
	Now        time.Time
}

// Score combines mood fit, social-context fit, price sensitivity and
// recency into one open-ended ranking key. Only relative order matters;
// there is no clamping.
func Score(details *domain.MovieDetails, in ScoreInput) float64 {
	if !details.Usable() {
		return in.FuzzyScore * unenrichedFloorWeight
	}

	total := 0.0
	total += MoodScore(details, in.Mood, in.Now) * moodWeight
	total += ContextModifier(details, in.Context) * contextWeight
	if in.Price != nil {
		total += PriceSensitivity(in.Price.RentalPrice, DefaultPriceCeiling) * priceWeight
	}
	total += RecencyBias(details.Released, in.Now) * recencyWeight

	// Reward novelty: a movie sharing no genre with recent viewing gets
	// the full multiplier.
	if genres := details.GenreList(); len(genres) > 0 {
		seenRecently := false
		for _, g := range genres {
			if in.History.HasRecentGenre(g) {
				seenRecently = true
				break
			}
		}
		if !seenRecently {
			total *= diversityMultiplier
		}
	}

	total += in.FuzzyScore * fuzzyTieBreakWeight

	return total
}
