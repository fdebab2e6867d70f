package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/moodreel/recommendation-service/internal/cache"
	"github.com/moodreel/recommendation-service/internal/catalog"
	"github.com/moodreel/recommendation-service/internal/config"
	"github.com/moodreel/recommendation-service/internal/coordinator"
	"github.com/moodreel/recommendation-service/internal/handler"
	"github.com/moodreel/recommendation-service/internal/pricing"
	"github.com/moodreel/recommendation-service/internal/router"
	"github.com/moodreel/recommendation-service/internal/session"
	"github.com/moodreel/recommendation-service/internal/store"
	"github.com/moodreel/recommendation-service/seeds"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	// ------------ Redis (optional) ---------------
	var catalogCache *cache.Cache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to parse redis url %v", err)
		}
		client := redis.NewClient(opts)
		catalogCache = cache.NewCache(client, cfg.CacheTTL)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := catalogCache.Ping(ctx); err != nil {
			log.Printf("redis not reachable, running without catalog cache: %v", err)
			catalogCache = nil
		} else {
			log.Println("connected to Redis")
		}
		cancel()
	}

	// ------------ Collaborators ---------------
	omdb := catalog.NewClient(cfg.OMDbAPIKey, cfg.OMDbBaseURL)
	prices := pricing.NewClient(cfg.PriceURL)
	history := seeds.DefaultViewingHistory()

	// ------------ Sessions ---------------
	sessions := session.NewManager(func() (*store.Store, *coordinator.Coordinator) {
		st := store.New(history, nil)
		coordCfg := coordinator.Config{
			Store:        st,
			Catalog:      omdb,
			Prices:       prices,
			DebounceWait: cfg.DebounceWait,
		}
		if catalogCache != nil {
			coordCfg.Cache = catalogCache
		}
		return st, coordinator.New(coordCfg)
	})

	// ---------------- Server --------------------
	h := handler.NewHandler(sessions, history)
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.Setup(h),
	}

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(srv.ListenAndServe())
}
