// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the vodbrowse category proxy server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the source store (file, Redis or PostgreSQL).
//  4. Build the source registry and the upstream client.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/vodbrowse/internal/api"
	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/downstream"
	"github.com/taibuivan/vodbrowse/internal/platform/config"
	"github.com/taibuivan/vodbrowse/internal/platform/constants"
	"github.com/taibuivan/vodbrowse/internal/platform/migration"
	pgstore "github.com/taibuivan/vodbrowse/internal/platform/postgres"
	redisstore "github.com/taibuivan/vodbrowse/internal/platform/redis"
	"github.com/taibuivan/vodbrowse/internal/source"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("source_store", cfg.SourceStore),
		slog.Int("cache_time", cfg.CacheTime),
	)

	// Root context: cancelled on SIGINT/SIGTERM.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Source Store ───────────────────────────────────────────────────
	store, closeStore, err := openStore(startupCtx, cfg, log)
	must(log, err, "open source store")
	defer closeStore()

	// ── 4. Registry & Upstream ────────────────────────────────────────────
	registry := source.NewRegistry(store, log)

	upstream := downstream.New(downstream.Config{
		Timeout:           cfg.UpstreamTimeout,
		RequestsPerSecond: cfg.UpstreamRPS,
	})
	defer func() {
		if cerr := upstream.Close(); cerr != nil {
			log.Error("upstream client close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Handlers ───────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers([]api.Check{
		{Name: "sources:" + cfg.SourceStore, Ping: registry.Ping},
	}, log)

	catalogService := catalog.NewService(registry, upstream, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(catalogService, cfg.CacheTime),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 6. Serve & Graceful Shutdown ──────────────────────────────────────
	group, groupCtx := errgroup.WithContext(rootCtx)

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
		return server.Shutdown(constants.ShutdownTimeout)
	})

	if err := group.Wait(); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// openStore builds the configured [source.Store] and returns a closer for
// any connection it opened.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (source.Store, func(), error) {
	switch cfg.SourceStore {
	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			log.Info("closing redis client")
			if cerr := client.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}
		return source.NewRedisStore(client, cfg.SourceRedisKey), closer, nil

	case config.StorePostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, nil, err
		}
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			log.Info("closing postgres pool")
			pool.Close()
		}
		return source.NewPostgresStore(pool), closer, nil

	default:
		store, err := source.NewFileStore(cfg.SourceConfigPath, log)
		if err != nil {
			return nil, nil, err
		}
		store.Watch()
		return store, func() {}, nil
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
