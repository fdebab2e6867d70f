package seeds

import "github.com/moodreel/recommendation-service/internal/domain"

// DefaultViewingHistory is the static seed every session starts from.
// It feeds the diversity multiplier and the watched-before pricing
// discount; there is no real per-user history store behind it.
func DefaultViewingHistory() domain.ViewingHistory {
	return domain.ViewingHistory{
		RecentGenres: []string{"Action", "Comedy"},
		WatchedIDs: []string{
			"tt0133093", // The Matrix
			"tt0111161", // The Shawshank Redemption
		},
	}
}
