package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplite/shoplite-api/internal/api"
	"github.com/shoplite/shoplite-api/internal/infrastructure/config"
	redisdb "github.com/shoplite/shoplite-api/internal/infrastructure/db/redis"
	"github.com/shoplite/shoplite-api/internal/infrastructure/db/sqlite"
	"github.com/shoplite/shoplite-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET is required outside development")
		}
		log.Warn().Msg("JWT_SECRET not set; using an insecure development secret")
		cfg.JWTSecret = "dev-secret-do-not-use"
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.Connect(ctx, cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("sqlite connect failed")
	}
	defer store.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	e, err := api.NewRouter(cfg, store, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("shoplite api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
