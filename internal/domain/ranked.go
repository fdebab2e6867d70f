package domain

// RankedMovie is a fully derived recommendation row. It never outlives
// a recompute cycle: every cycle rebuilds the slice from scratch so no
// stale score can survive an input change.
type RankedMovie struct {
	Movie            Movie         `json:"movie"`
	Details          *MovieDetails `json:"details,omitempty"`
	Price            *PriceQuote   `json:"price,omitempty"`
	FuzzyScore       float64       `json:"fuzzy_score"`
	MoodMatchPercent int           `json:"mood_match_percent"`
	Score            float64       `json:"score"`
}
