package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/pitchstats/matches-api/docs"
	"github.com/pitchstats/matches-api/internal/cache"
	"github.com/pitchstats/matches-api/internal/config"
	"github.com/pitchstats/matches-api/internal/handlers"
	"github.com/pitchstats/matches-api/internal/logic"
	"github.com/pitchstats/matches-api/internal/store"
)

// @title Pitchstats Matches API
// @version 1.0
// @description Read-only football match query, statistics and prediction API
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	matchStore, cleanup, err := buildStore(cfg, logger)
	if err != nil {
		sugar.Fatalw("Failed to initialize match store", "source", cfg.MatchSource, "error", err)
	}
	defer cleanup()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}
	responseCache := cache.New(redisClient, cfg.CacheTTL, logger)

	statsSvc := logic.NewStatsService()
	h := handlers.New(handlers.Config{
		Store:           matchStore,
		Cache:           responseCache,
		Logger:          logger,
		Filter:          logic.NewFilterService(),
		Stats:           statsSvc,
		Prediction:      logic.NewPredictionService(statsSvc, cfg.FormWindow),
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})

	router := handlers.NewRouter(h, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		sugar.Infow("Starting server", "port", cfg.Port, "env", cfg.Env, "source", cfg.MatchSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Shutdown failed", "error", err)
	}
}

// buildStore selects the match source implementation from configuration.
func buildStore(cfg *config.Config, logger *zap.Logger) (store.MatchStore, func(), error) {
	switch cfg.MatchSource {
	case config.SourcePostgres:
		pool, err := pgxpool.New(context.Background(), cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(pool, logger), pool.Close, nil

	case config.SourceClickHouse:
		opts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			return nil, nil, err
		}
		conn, err := clickhouse.Open(opts)
		if err != nil {
			return nil, nil, err
		}
		return store.NewClickHouseStore(conn, logger), func() { conn.Close() }, nil

	default:
		return store.NewFileStore(cfg.MatchesFile, logger), func() {}, nil
	}
}
