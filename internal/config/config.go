package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	OMDbAPIKey   string
	OMDbBaseURL  string
	PriceURL     string
	RedisURL     string
	CacheTTL     time.Duration
	DebounceWait time.Duration
}

// Load configuration from .env (when present) and env
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := getEnvInt("PORT", 8080)
	apiKey := os.Getenv("OMDB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OMDB_API_KEY is required")
	}
	baseURL := getEnv("OMDB_BASE_URL", "https://www.omdbapi.com/")
	priceURL := getEnv("PRICE_URL", fmt.Sprintf("http://localhost:%d/api/dynamic-price", port))
	redisURL := getEnv("REDIS_URL", "")
	cacheTTL := getEnvDuration("CACHE_TTL", 10*time.Minute)
	debounceWait := getEnvDuration("DEBOUNCE_WAIT", 500*time.Millisecond)

	return &Config{
		Port:         port,
		OMDbAPIKey:   apiKey,
		OMDbBaseURL:  baseURL,
		PriceURL:     priceURL,
		RedisURL:     redisURL,
		CacheTTL:     cacheTTL,
		DebounceWait: debounceWait,
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
