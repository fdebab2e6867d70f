package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moodreel/recommendation-service/internal/domain"
)

// ErrTooManyResults signals the upstream refused an over-broad query.
// Callers should ask the user to narrow the search rather than treat it
// as a hard failure.
var ErrTooManyResults = errors.New("too many results")

// UpstreamError wraps any other error message reported by the catalog.
type UpstreamError struct {
	Msg string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OMDb Error: %s", e.Msg)
}

// Client talks to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Search []struct {
		Title  string `json:"Title"`
		Year   string `json:"Year"`
		ImdbID string `json:"imdbID"`
		Type   string `json:"Type"`
		Poster string `json:"Poster"`
	} `json:"Search"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

type detailResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Search runs a free-text title search. An empty result set is not an
// error; "Movie not found" from upstream maps to an empty slice too.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	if query == "" {
		return nil, nil
	}

	var data searchResponse
	if err := c.get(ctx, url.Values{"s": {query}}, &data); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if data.Response != "True" {
		if data.Error == "" || strings.Contains(data.Error, "not found") {
			return nil, nil
		}
		if strings.Contains(data.Error, "Too many results") {
			return nil, ErrTooManyResults
		}
		return nil, &UpstreamError{Msg: data.Error}
	}

	movies := make([]domain.Movie, 0, len(data.Search))
	for _, r := range data.Search {
		movies = append(movies, domain.Movie{
			ImdbID: r.ImdbID,
			Title:  r.Title,
			Year:   r.Year,
			Poster: r.Poster,
			Kind:   r.Type,
		})
	}
	return movies, nil
}

// GetDetails fetches the full record for one movie. A "False" upstream
// response returns (nil, nil); the coordinator synthesizes a terminal
// failed record so the id is never refetched.
func (c *Client) GetDetails(ctx context.Context, imdbID string) (*domain.MovieDetails, error) {
	if imdbID == "" {
		return nil, nil
	}

	var data detailResponse
	if err := c.get(ctx, url.Values{"i": {imdbID}, "plot": {"full"}}, &data); err != nil {
		return nil, fmt.Errorf("details %s: %w", imdbID, err)
	}

	if data.Response != "True" {
		return nil, nil
	}

	return &domain.MovieDetails{
		ImdbID:         data.ImdbID,
		Genres:         data.Genre,
		RuntimeMinutes: parseRuntime(data.Runtime),
		ContentRating:  data.Rated,
		Released:       data.Released,
		ReleaseYear:    parseYear(data.Year),
		ImdbRating:     parseRating(data.ImdbRating),
		Plot:           data.Plot,
		Available:      true,
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, v any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// parseRuntime extracts the minutes from OMDb's "136 min" shape.
// Anything unparseable counts as 0.
func parseRuntime(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseYear handles plain years and series ranges like "1999-2003".
func parseYear(s string) int {
	if len(s) > 4 {
		s = s[:4]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseRating(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
