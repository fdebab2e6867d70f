package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// Cache is a cross-session read-through cache for catalog data. It only
// ever holds successful lookups; session-level "never refetch" state
// lives in the store, not here.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func searchKey(query string) string {
	return fmt.Sprintf("catalog:search:%s", query)
}

func detailKey(imdbID string) string {
	return fmt.Sprintf("catalog:detail:%s", imdbID)
}

func priceKey(imdbID string) string {
	return fmt.Sprintf("pricing:quote:%s", imdbID)
}

// GetSearch returns cached search results, (nil, false, nil) on a miss.
func (c *Cache) GetSearch(ctx context.Context, query string) ([]domain.Movie, bool, error) {
	var movies []domain.Movie
	found, err := c.get(ctx, searchKey(query), &movies)
	return movies, found, err
}

func (c *Cache) SetSearch(ctx context.Context, query string, movies []domain.Movie) error {
	return c.set(ctx, searchKey(query), movies)
}

func (c *Cache) GetDetails(ctx context.Context, imdbID string) (*domain.MovieDetails, bool, error) {
	var details domain.MovieDetails
	found, err := c.get(ctx, detailKey(imdbID), &details)
	if !found || err != nil {
		return nil, false, err
	}
	return &details, true, nil
}

func (c *Cache) SetDetails(ctx context.Context, details *domain.MovieDetails) error {
	return c.set(ctx, detailKey(details.ImdbID), details)
}

func (c *Cache) GetPrice(ctx context.Context, imdbID string) (*domain.PriceQuote, bool, error) {
	var quote domain.PriceQuote
	found, err := c.get(ctx, priceKey(imdbID), &quote)
	if !found || err != nil {
		return nil, false, err
	}
	return &quote, true, nil
}

func (c *Cache) SetPrice(ctx context.Context, imdbID string, quote *domain.PriceQuote) error {
	return c.set(ctx, priceKey(imdbID), quote)
}

func (c *Cache) get(ctx context.Context, key string, v any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), v); err != nil {
		return false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
