package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/moodreel/recommendation-service/internal/catalog"
	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/moodreel/recommendation-service/internal/pricing"
	"github.com/moodreel/recommendation-service/internal/store"
)

type fakeCatalog struct {
	mu          sync.Mutex
	searchCalls int
	lastQuery   string
	searchErr   error
	movies      []domain.Movie
	details     map[string]*domain.MovieDetails
	detailCalls map[string]int
	block       chan struct{} // when set, GetDetails waits on it
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		details:     make(map[string]*domain.MovieDetails),
		detailCalls: make(map[string]int),
	}
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	f.mu.Lock()
	f.searchCalls++
	f.lastQuery = query
	err := f.searchErr
	movies := f.movies
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (f *fakeCatalog) GetDetails(ctx context.Context, imdbID string) (*domain.MovieDetails, error) {
	f.mu.Lock()
	f.detailCalls[imdbID]++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details[imdbID], nil
}

func (f *fakeCatalog) detailCallCount(imdbID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detailCalls[imdbID]
}

type fakePrices struct {
	mu    sync.Mutex
	calls []pricing.QuoteInput
	quote *domain.PriceQuote
}

func (f *fakePrices) FetchQuote(ctx context.Context, in pricing.QuoteInput) (*domain.PriceQuote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, in)
	return f.quote, nil
}

func (f *fakePrices) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func matrixMovie() domain.Movie {
	return domain.Movie{ImdbID: "tt0133093", Title: "The Matrix", Year: "1999", Kind: "movie"}
}

func matrixDetails() *domain.MovieDetails {
	return &domain.MovieDetails{
		ImdbID:         "tt0133093",
		Genres:         "Action, Sci-Fi",
		RuntimeMinutes: 136,
		ContentRating:  "R",
		Released:       "31 Mar 1999",
		ReleaseYear:    1999,
		ImdbRating:     8.7,
		Available:      true,
	}
}

func newTestRig(cat *fakeCatalog, prices *fakePrices) (*store.Store, *Coordinator) {
	st := store.New(domain.ViewingHistory{RecentGenres: []string{"Action", "Comedy"}}, nil)
	c := New(Config{
		Store:        st,
		Catalog:      cat,
		Prices:       prices,
		DebounceWait: 20 * time.Millisecond,
	})
	return st, c
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestDebouncedSearchFiresOnce(t *testing.T) {
	cat := newFakeCatalog()
	cat.movies = []domain.Movie{matrixMovie()}
	cat.details["tt0133093"] = matrixDetails()
	prices := &fakePrices{quote: &domain.PriceQuote{RentalPrice: 4.49}}
	st, c := newTestRig(cat, prices)
	defer c.Stop()

	// A burst of keystrokes within the quiet window: only the last
	// query may reach the catalog.
	c.SetQuery("mat")
	c.SetQuery("matri")
	c.SetQuery("matrix")

	waitFor(t, "search results", func() bool { return len(st.Ranked()) == 1 })

	cat.mu.Lock()
	calls, last := cat.searchCalls, cat.lastQuery
	cat.mu.Unlock()
	if calls != 1 {
		t.Errorf("expected exactly 1 search, got %d", calls)
	}
	if last != "matrix" {
		t.Errorf("expected the settled query to win, got %q", last)
	}
}

func TestShortQueryClearsImmediately(t *testing.T) {
	cat := newFakeCatalog()
	st, c := newTestRig(cat, &fakePrices{})
	defer c.Stop()

	c.SetQuery("ma")

	if msg := st.Message(); msg != domain.ErrQueryTooShort.Error() {
		t.Errorf("expected advisory, got %q", msg)
	}
	if len(st.Ranked()) != 0 {
		t.Error("expected empty ranking")
	}

	// Past the debounce window, still no search.
	time.Sleep(60 * time.Millisecond)
	cat.mu.Lock()
	calls := cat.searchCalls
	cat.mu.Unlock()
	if calls != 0 {
		t.Errorf("short query must never search, got %d calls", calls)
	}
}

func TestShortQueryCancelsPendingSearch(t *testing.T) {
	cat := newFakeCatalog()
	st, c := newTestRig(cat, &fakePrices{})
	defer c.Stop()

	c.SetQuery("matrix")
	c.SetQuery("ma") // backspaced below the minimum before the timer fired

	time.Sleep(60 * time.Millisecond)
	cat.mu.Lock()
	calls := cat.searchCalls
	cat.mu.Unlock()
	if calls != 0 {
		t.Errorf("superseded timer should be cancelled, got %d searches", calls)
	}
	if msg := st.Message(); msg != domain.ErrQueryTooShort.Error() {
		t.Errorf("expected advisory, got %q", msg)
	}
}

func TestDetailFetchDeduplicated(t *testing.T) {
	cat := newFakeCatalog()
	cat.details["tt0133093"] = matrixDetails()
	cat.block = make(chan struct{})
	st, c := newTestRig(cat, &fakePrices{quote: &domain.PriceQuote{RentalPrice: 4.49}})
	defer c.Stop()

	st.SetMovies([]domain.Movie{matrixMovie()})
	waitFor(t, "fetch dispatch", func() bool { return cat.detailCallCount("tt0133093") == 1 })

	// More state changes while the fetch hangs: the in-flight set must
	// suppress a second dispatch for the same id.
	st.SetMood(domain.MoodEdgeOfSeat)
	st.SetContext(domain.ContextFriendGroup)
	time.Sleep(30 * time.Millisecond)
	if n := cat.detailCallCount("tt0133093"); n != 1 {
		t.Errorf("expected 1 in-flight fetch, got %d", n)
	}

	close(cat.block)
	waitFor(t, "detail merge", func() bool {
		d, ok := st.DetailsFor("tt0133093")
		return ok && d.Usable()
	})
	if n := cat.detailCallCount("tt0133093"); n != 1 {
		t.Errorf("expected exactly 1 fetch and 1 merge, got %d", n)
	}
}

func TestFailedDetailIsTerminal(t *testing.T) {
	cat := newFakeCatalog() // no details registered: GetDetails returns nil
	st, c := newTestRig(cat, &fakePrices{})
	defer c.Stop()

	st.SetMovies([]domain.Movie{matrixMovie()})
	waitFor(t, "terminal failure record", func() bool {
		d, ok := st.DetailsFor("tt0133093")
		return ok && !d.Available
	})

	// Further state changes must not trigger a refetch.
	st.SetMood(domain.MoodBrainFood)
	st.SetContext(domain.ContextDateNight)
	time.Sleep(30 * time.Millisecond)
	if n := cat.detailCallCount("tt0133093"); n != 1 {
		t.Errorf("failed enrichment refetched: %d calls", n)
	}

	// Fail-open: the movie is still ranked, at the low-confidence floor.
	if len(st.Ranked()) != 1 {
		t.Error("movie with failed enrichment should stay visible")
	}
}

func TestPriceFetchFollowsDetails(t *testing.T) {
	cat := newFakeCatalog()
	cat.movies = []domain.Movie{matrixMovie()}
	cat.details["tt0133093"] = matrixDetails()
	prices := &fakePrices{quote: &domain.PriceQuote{RentalPrice: 4.49, Suggestion: "deal"}}
	st, c := newTestRig(cat, prices)
	defer c.Stop()

	c.SetQuery("matrix")
	waitFor(t, "price merge", func() bool {
		ranked := st.Ranked()
		return len(ranked) == 1 && ranked[0].Price != nil
	})

	prices.mu.Lock()
	in := prices.calls[0]
	prices.mu.Unlock()
	if in.ImdbID != "tt0133093" {
		t.Errorf("unexpected price request id %q", in.ImdbID)
	}
	if in.Popularity != 8.7 {
		t.Errorf("popularity should come from the enrichment, got %f", in.Popularity)
	}

	// Once the quote is merged nothing re-requests it.
	st.SetMood(domain.MoodMindlessFun)
	time.Sleep(30 * time.Millisecond)
	if n := prices.callCount(); n != 1 {
		t.Errorf("expected exactly 1 price fetch, got %d", n)
	}
}

func TestTooManyResultsAdvisory(t *testing.T) {
	cat := newFakeCatalog()
	cat.searchErr = catalog.ErrTooManyResults
	st, c := newTestRig(cat, &fakePrices{})
	defer c.Stop()

	c.SetQuery("la la")
	waitFor(t, "advisory", func() bool { return st.Message() != "" })

	if msg := st.Message(); msg != narrowQueryAdvice {
		t.Errorf("expected narrow-query advice, got %q", msg)
	}
	if len(st.Ranked()) != 0 {
		t.Error("results should clear on upstream refusal")
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var mu sync.Mutex
	fired := 0

	for i := 0; i < 5; i++ {
		d.Schedule(func() {
			mu.Lock()
			fired++
			mu.Unlock()
		})
	}

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	n := fired
	mu.Unlock()
	if n != 1 {
		t.Errorf("expected 1 firing for a burst, got %d", n)
	}

	d.Schedule(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	d.Cancel()
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	n = fired
	mu.Unlock()
	if n != 1 {
		t.Errorf("cancelled timer must not fire, got %d", n)
	}
}
