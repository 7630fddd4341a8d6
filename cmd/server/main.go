package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"group-trip-planner/internal/adapters/cache"
	"group-trip-planner/internal/adapters/providers"
	"group-trip-planner/internal/adapters/repositories"
	"group-trip-planner/internal/api"
	"group-trip-planner/internal/api/handlers"
	"group-trip-planner/internal/config"
	"group-trip-planner/internal/logging"
	"group-trip-planner/internal/platform/db"
	"group-trip-planner/internal/ports"
	"group-trip-planner/internal/services"
)

// main is the application composition root.
// It wires synthetic mode providers, the Redis option cache, and the
// Postgres plan repository behind their ports and starts the HTTP
// server.
func main() {
	// Missing .env is fine; environment variables alone apply.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		slog.Error("load config failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.Log.Level))

	ctx := context.Background()

	pool, err := db.Open(ctx, cfg.Postgres.URL)
	if err != nil {
		logger.Error("open postgres failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := repositories.InitSchema(ctx, pool); err != nil {
		logger.Error("init schema failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	optionCache := cache.NewRedisOptionCache(redisClient, time.Duration(cfg.Redis.OptionTTLMinutes)*time.Minute)

	seed := cfg.Planner.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := providers.NewRandSource(seed)

	// Each mode adapter gets bounded retry (for when real provider
	// integrations replace the synthetic ones) and a read-through
	// option cache.
	all := providers.All(rng, cfg.Planner.Currency)
	wired := make([]ports.OptionProvider, 0, len(all))
	for _, p := range all {
		retried := providers.WithRetry(p, cfg.Planner.RetryAttempts, 200*time.Millisecond)
		wired = append(wired, cache.NewCachedProvider(retried, optionCache, logger))
	}

	aggregator := services.NewAggregator(logger, wired...)
	scoring := services.ScoringConfig{
		CostCapCents:       cfg.Planner.CostCapCents,
		DurationCapMinutes: cfg.Planner.DurationCapMinutes,
	}
	planner := services.NewPlanner(aggregator, scoring, cfg.Planner.Workers, cfg.Planner.Currency, logger)

	repo := repositories.NewPostgresPlanRepository(pool)

	planHandler := &handlers.PlanHandler{
		Planner:              planner,
		Repo:                 repo,
		Logger:               logger,
		DefaultMaxGapMinutes: cfg.Planner.MaxGapMinutes,
		Deadline:             time.Duration(cfg.Planner.DeadlineSeconds) * time.Second,
	}
	optionsHandler := &handlers.OptionsHandler{
		Aggregator: aggregator,
		Logger:     logger,
	}

	router := api.NewRouter(logger, planHandler, optionsHandler)

	logger.Info("server listening", slog.String("addr", ":"+cfg.HTTP.Port))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
