package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moodreel/recommendation-service/internal/domain"
)

// Client consumes the dynamic-price endpoint over HTTP. The rule engine
// lives behind a network hop so it stays swappable for an external
// pricing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchQuote requests a price for one movie at the given moment.
func (c *Client) FetchQuote(ctx context.Context, in QuoteInput) (*domain.PriceQuote, error) {
	params := url.Values{}
	params.Set("imdbID", in.ImdbID)
	params.Set("timeOfDay", strconv.Itoa(in.HourOfDay))
	params.Set("dayOfWeek", in.DayOfWeek)
	params.Set("moviePopularity", strconv.FormatFloat(in.Popularity, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build price request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch price for %s: %w", in.ImdbID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price endpoint returned status %d for %s", resp.StatusCode, in.ImdbID)
	}

	var quote domain.PriceQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("decode price response for %s: %w", in.ImdbID, err)
	}

	return &quote, nil
}
