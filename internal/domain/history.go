package domain

// ViewingHistory is the viewer's recent activity used by the diversity
// multiplier and the pricing discount. Read-only for the engine.
type ViewingHistory struct {
	RecentGenres []string `json:"recent_genres"`
	WatchedIDs   []string `json:"watched_ids"`
}

// HasWatched reports whether the viewer has already watched the movie.
func (h ViewingHistory) HasWatched(imdbID string) bool {
	for _, id := range h.WatchedIDs {
		if id == imdbID {
			return true
		}
	}
	return false
}

// HasRecentGenre reports whether the genre appears in the viewer's
// recent history. Comparison is case-sensitive on purpose: genre labels
// come from a single upstream and are stable.
func (h ViewingHistory) HasRecentGenre(genre string) bool {
	for _, g := range h.RecentGenres {
		if g == genre {
			return true
		}
	}
	return false
}
