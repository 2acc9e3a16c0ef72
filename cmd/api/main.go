package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ankit1439/mess-portal/internal/api"
	"github.com/ankit1439/mess-portal/internal/core/service"
	mongodb "github.com/ankit1439/mess-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/ankit1439/mess-portal/internal/infrastructure/db/redis"
	"github.com/ankit1439/mess-portal/internal/pkg/config"
	"github.com/ankit1439/mess-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Redis is optional: without it vote dedup falls back to the unique
	// index alone.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without vote cache")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	bootstrap := service.NewAuthService(
		mongodb.NewAdminRepository(db),
		mongodb.NewSessionRepository(db),
		cfg.SessionTTL,
		log,
	)
	if err := bootstrap.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting mess portal api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
