package coordinator

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/moodreel/recommendation-service/internal/catalog"
	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/moodreel/recommendation-service/internal/pricing"
	"github.com/moodreel/recommendation-service/internal/store"
)

const (
	minQueryLength      = 3
	defaultDebounceWait = 500 * time.Millisecond

	narrowQueryAdvice = `Please enter a more specific search query (e.g., "La La Land" instead of "La").`
)

// Catalog is the external movie catalog the coordinator searches and
// enriches from.
type Catalog interface {
	Search(ctx context.Context, query string) ([]domain.Movie, error)
	GetDetails(ctx context.Context, imdbID string) (*domain.MovieDetails, error)
}

// PriceFetcher produces dynamic price quotes, normally over the network.
type PriceFetcher interface {
	FetchQuote(ctx context.Context, in pricing.QuoteInput) (*domain.PriceQuote, error)
}

// CatalogCache is the optional cross-session read-through cache.
// *cache.Cache satisfies it; nil disables caching.
type CatalogCache interface {
	GetSearch(ctx context.Context, query string) ([]domain.Movie, bool, error)
	SetSearch(ctx context.Context, query string, movies []domain.Movie) error
	GetDetails(ctx context.Context, imdbID string) (*domain.MovieDetails, bool, error)
	SetDetails(ctx context.Context, details *domain.MovieDetails) error
	GetPrice(ctx context.Context, imdbID string) (*domain.PriceQuote, bool, error)
	SetPrice(ctx context.Context, imdbID string, quote *domain.PriceQuote) error
}

// Config wires a Coordinator. Store, Catalog and Prices are required;
// Cache and Now are optional.
type Config struct {
	Store        *store.Store
	Catalog      Catalog
	Prices       PriceFetcher
	Cache        CatalogCache
	DebounceWait time.Duration
	Now          func() time.Time
}

// Coordinator drives all asynchronous data flow: debounced catalog
// searches, deduplicated per-movie detail and price fetches, and the
// recompute cascade after every merge. The store is the only writer of
// shared state; the two in-flight sets below are the only mutable state
// the coordinator touches directly, always add-before-dispatch and
// remove-in-defer.
type Coordinator struct {
	store   *store.Store
	catalog Catalog
	prices  PriceFetcher
	cache   CatalogCache
	now     func() time.Time

	debounce *Debouncer

	mu             sync.Mutex
	detailInFlight map[string]struct{}
	priceInFlight  map[string]struct{}
}

func New(cfg Config) *Coordinator {
	wait := cfg.DebounceWait
	if wait <= 0 {
		wait = defaultDebounceWait
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	c := &Coordinator{
		store:          cfg.Store,
		catalog:        cfg.Catalog,
		prices:         cfg.Prices,
		cache:          cfg.Cache,
		now:            now,
		debounce:       NewDebouncer(wait),
		detailInFlight: make(map[string]struct{}),
		priceInFlight:  make(map[string]struct{}),
	}
	c.store.OnChange(c.onStateChange)
	return c
}

// Stop cancels any pending debounced search. In-flight fetches are not
// cancelled; their merges are idempotent and keyed by stable id, so a
// late response is harmless.
func (c *Coordinator) Stop() {
	c.debounce.Cancel()
}

// SetQuery records the query and schedules a debounced search. Queries
// below the minimum length bypass the debounce entirely: results clear
// immediately and an advisory replaces them.
func (c *Coordinator) SetQuery(query string) {
	c.store.SetQuery(query)

	if len(query) < minQueryLength {
		c.debounce.Cancel()
		c.store.ClearMovies(domain.ErrQueryTooShort.Error())
		return
	}

	c.debounce.Schedule(func() {
		c.runSearch(query)
	})
}

func (c *Coordinator) SetMood(mood domain.Mood) {
	c.store.SetMood(mood)
}

func (c *Coordinator) SetContext(context domain.SocialContext) {
	c.store.SetContext(context)
}

// onStateChange runs after every store mutation. It is cheap and
// idempotent: both scans skip anything already resolved or in flight.
func (c *Coordinator) onStateChange() {
	c.ensureDetails()
	c.ensurePrices()
}

func (c *Coordinator) runSearch(query string) {
	ctx := context.Background()

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	if c.cache != nil {
		if movies, found, err := c.cache.GetSearch(ctx, query); err != nil {
			log.Printf("[coordinator] search cache get %q: %v", query, err)
		} else if found {
			c.store.SetMovies(movies)
			return
		}
	}

	movies, err := c.catalog.Search(ctx, query)
	if err != nil {
		if errors.Is(err, catalog.ErrTooManyResults) {
			c.store.ClearMovies(narrowQueryAdvice)
			return
		}
		log.Printf("[coordinator] search %q: %v", query, err)
		c.store.ClearMovies(err.Error())
		return
	}

	c.store.SetMovies(movies)

	if c.cache != nil && len(movies) > 0 {
		if err := c.cache.SetSearch(ctx, query, movies); err != nil {
			log.Printf("[coordinator] search cache set %q: %v", query, err)
		}
	}
}

// ensureDetails dispatches exactly one detail fetch per movie that has
// no enrichment record and none in flight.
func (c *Coordinator) ensureDetails() {
	for _, movie := range c.store.MoviesNeedingDetails() {
		if c.acquire(c.detailInFlight, movie.ImdbID) {
			go c.fetchDetails(movie.ImdbID)
		}
	}
}

func (c *Coordinator) fetchDetails(imdbID string) {
	defer c.release(c.detailInFlight, imdbID)
	ctx := context.Background()

	if c.cache != nil {
		if details, found, err := c.cache.GetDetails(ctx, imdbID); err != nil {
			log.Printf("[coordinator] detail cache get %s: %v", imdbID, err)
		} else if found {
			c.store.MergeDetails(details)
			return
		}
	}

	details, err := c.catalog.GetDetails(ctx, imdbID)
	if err != nil || details == nil {
		// Terminal failure record: the movie stays visible at the
		// low-confidence floor and is never refetched this session.
		msg := "Details not found"
		if err != nil {
			log.Printf("[coordinator] details %s: %v", imdbID, err)
			msg = err.Error()
		}
		c.store.MergeDetails(&domain.MovieDetails{
			ImdbID:       imdbID,
			Available:    false,
			ErrorMessage: msg,
		})
		return
	}

	c.store.MergeDetails(details)

	if c.cache != nil {
		if err := c.cache.SetDetails(ctx, details); err != nil {
			log.Printf("[coordinator] detail cache set %s: %v", imdbID, err)
		}
	}
}

// ensurePrices dispatches one price fetch per movie whose details
// resolved successfully and which has no quote yet.
func (c *Coordinator) ensurePrices() {
	for _, details := range c.store.MoviesNeedingPrices() {
		if c.acquire(c.priceInFlight, details.ImdbID) {
			go c.fetchPrice(details)
		}
	}
}

func (c *Coordinator) fetchPrice(details *domain.MovieDetails) {
	defer c.release(c.priceInFlight, details.ImdbID)
	ctx := context.Background()

	if c.cache != nil {
		if quote, found, err := c.cache.GetPrice(ctx, details.ImdbID); err != nil {
			log.Printf("[coordinator] price cache get %s: %v", details.ImdbID, err)
		} else if found {
			c.store.MergePrice(details.ImdbID, quote)
			return
		}
	}

	now := c.now()
	quote, err := c.prices.FetchQuote(ctx, pricing.QuoteInput{
		ImdbID:     details.ImdbID,
		HourOfDay:  now.Hour(),
		DayOfWeek:  now.Format("Mon"),
		Popularity: details.ImdbRating,
	})
	if err != nil {
		// No terminal marker for prices: the quote stays absent and a
		// later recompute pass may try again.
		log.Printf("[coordinator] price %s: %v", details.ImdbID, err)
		return
	}

	c.store.MergePrice(details.ImdbID, quote)

	if c.cache != nil {
		if err := c.cache.SetPrice(ctx, details.ImdbID, quote); err != nil {
			log.Printf("[coordinator] price cache set %s: %v", details.ImdbID, err)
		}
	}
}

// acquire marks an id in flight; false means someone else already has
// it. Always paired with release in a defer on the fetch goroutine.
func (c *Coordinator) acquire(set map[string]struct{}, imdbID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := set[imdbID]; ok {
		return false
	}
	set[imdbID] = struct{}{}
	return true
}

func (c *Coordinator) release(set map[string]struct{}, imdbID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(set, imdbID)
}
