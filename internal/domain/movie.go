package domain

import "strings"

// Movie is a single catalog search hit. Immutable once produced; the
// IMDb id is the stable key every enrichment is merged under.
type Movie struct {
	ImdbID string `json:"imdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
	Kind   string `json:"kind"`
}

// MovieDetails is the per-movie enrichment record fetched after search.
// A failed fetch still produces a record with Available=false so the
// movie is never refetched within a session.
type MovieDetails struct {
	ImdbID         string  `json:"imdb_id"`
	Genres         string  `json:"genres"` // comma-delimited, e.g. "Action, Sci-Fi"
	RuntimeMinutes int     `json:"runtime_minutes"`
	ContentRating  string  `json:"content_rating"`
	Released       string  `json:"released"` // e.g. "31 Mar 1999"
	ReleaseYear    int     `json:"release_year"`
	ImdbRating     float64 `json:"imdb_rating"`
	Plot           string  `json:"plot"`
	Available      bool    `json:"available"`
	ErrorMessage   string  `json:"error_message,omitempty"`
}

// HasAnyGenre reports whether any of the target genres appears in the
// comma-delimited genre list, case-insensitively.
func (d *MovieDetails) HasAnyGenre(targets ...string) bool {
	if d == nil || d.Genres == "" {
		return false
	}
	for _, g := range strings.Split(d.Genres, ",") {
		g = strings.ToLower(strings.TrimSpace(g))
		for _, t := range targets {
			if g == strings.ToLower(t) {
				return true
			}
		}
	}
	return false
}

// GenreList returns the trimmed genres, original casing preserved.
func (d *MovieDetails) GenreList() []string {
	if d == nil || d.Genres == "" {
		return nil
	}
	parts := strings.Split(d.Genres, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Usable reports whether the enrichment resolved successfully and can
// feed the scoring heuristics.
func (d *MovieDetails) Usable() bool {
	return d != nil && d.Available
}
