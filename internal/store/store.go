package store

import (
	"sort"
	"sync"
	"time"

	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/moodreel/recommendation-service/internal/engine"
)

// Store owns every piece of session state: the raw search results, the
// enrichment and price caches, the selected filters and the derived
// ranking. All mutations flow through its methods; each one runs a
// full recompute under the lock so the ranked list is always a pure
// function of the current inputs. Construction is the caller's job —
// there is no package-level instance.
type Store struct {
	mu sync.Mutex

	query   string
	movies  []domain.Movie
	details map[string]*domain.MovieDetails
	prices  map[string]*domain.PriceQuote
	mood    domain.Mood
	context domain.SocialContext
	history domain.ViewingHistory

	ranked  []domain.RankedMovie
	loading bool
	message string

	now    func() time.Time
	notify func()
}

func New(history domain.ViewingHistory, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		details: make(map[string]*domain.MovieDetails),
		prices:  make(map[string]*domain.PriceQuote),
		mood:    domain.MoodFeelGood,
		context: domain.ContextSoloNight,
		history: history,
		now:     now,
	}
}

// OnChange registers a callback fired after every recompute, outside
// the lock. The coordinator uses it to scan for missing enrichment.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

func (s *Store) SetQuery(query string) {
	s.update(func() {
		s.query = query
	})
}

// SetMovies replaces the raw result set. Existing enrichment is kept:
// merges key on the stable IMDb id, so data for movies that reappear in
// a later search is still valid.
func (s *Store) SetMovies(movies []domain.Movie) {
	s.update(func() {
		s.movies = movies
		s.message = ""
	})
}

// ClearMovies empties the result set and records an advisory message,
// used when the query drops below the minimum length or a search fails.
func (s *Store) ClearMovies(message string) {
	s.update(func() {
		s.movies = nil
		s.message = message
	})
}

// MergeDetails merges one enrichment record, success or terminal
// failure. Last write wins per id, which makes late responses from
// stale fetches harmless.
func (s *Store) MergeDetails(details *domain.MovieDetails) {
	if details == nil {
		return
	}
	s.update(func() {
		s.details[details.ImdbID] = details
	})
}

// MergePrice merges one price quote, keyed by the stable id.
func (s *Store) MergePrice(imdbID string, quote *domain.PriceQuote) {
	if quote == nil {
		return
	}
	s.update(func() {
		s.prices[imdbID] = quote
	})
}

func (s *Store) SetMood(mood domain.Mood) {
	s.update(func() {
		s.mood = mood
	})
}

func (s *Store) SetContext(context domain.SocialContext) {
	s.update(func() {
		s.context = context
	})
}

func (s *Store) SetLoading(loading bool) {
	s.update(func() {
		s.loading = loading
	})
}

// update applies a mutation, recomputes the ranking and fires the
// change callback outside the lock.
func (s *Store) update(mutate func()) {
	s.mu.Lock()
	mutate()
	s.recompute()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// recompute derives the ranked list from scratch: context gate, then
// per-movie scoring, then a descending sort. Pure and cheap, safe to
// run redundantly. Caller holds the lock.
func (s *Store) recompute() {
	now := s.now()
	ranked := make([]domain.RankedMovie, 0, len(s.movies))

	for _, movie := range s.movies {
		details := s.details[movie.ImdbID]
		if !engine.ContextAdmits(details, s.context) {
			continue
		}

		fuzzy := engine.FuzzyScore(s.query, movie.Title)
		score := engine.Score(details, engine.ScoreInput{
			Mood:       s.mood,
			Context:    s.context,
			History:    s.history,
			Price:      s.prices[movie.ImdbID],
			FuzzyScore: fuzzy,
			Now:        now,
		})

		ranked = append(ranked, domain.RankedMovie{
			Movie:            movie,
			Details:          details,
			Price:            s.prices[movie.ImdbID],
			FuzzyScore:       fuzzy,
			MoodMatchPercent: engine.MoodMatchPercent(details, s.mood, now),
			Score:            score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	s.ranked = ranked
}

// Ranked returns a copy of the current recommendation list.
func (s *Store) Ranked() []domain.RankedMovie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RankedMovie, len(s.ranked))
	copy(out, s.ranked)
	return out
}

func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Store) Mood() domain.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood
}

func (s *Store) Context() domain.SocialContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context
}

func (s *Store) History() domain.ViewingHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Message returns the current advisory or error message, empty when
// there is none.
func (s *Store) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// DetailsFor returns the enrichment for an id; ok is false while the
// detail has never resolved (success or failure).
func (s *Store) DetailsFor(imdbID string) (*domain.MovieDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[imdbID]
	return d, ok
}

// MoviesNeedingDetails returns movies in the current result set with no
// enrichment record at all.
func (s *Store) MoviesNeedingDetails() []domain.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Movie
	for _, m := range s.movies {
		if _, ok := s.details[m.ImdbID]; !ok {
			out = append(out, m)
		}
	}
	return out
}

// MoviesNeedingPrices returns resolved, successful enrichments whose
// movies have no price quote yet.
func (s *Store) MoviesNeedingPrices() []*domain.MovieDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.MovieDetails
	for _, m := range s.movies {
		d := s.details[m.ImdbID]
		if !d.Usable() {
			continue
		}
		if _, ok := s.prices[m.ImdbID]; !ok {
			out = append(out, d)
		}
	}
	return out
}
