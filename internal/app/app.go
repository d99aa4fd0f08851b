package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabvault-backend/internal/adapter/postgres"
	favoriterepo "github.com/heartmarshall/vocabvault-backend/internal/adapter/postgres/favorite"
	"github.com/heartmarshall/vocabvault-backend/internal/adapter/provider/cache"
	"github.com/heartmarshall/vocabvault-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/vocabvault-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/vocabvault-backend/internal/config"
	"github.com/heartmarshall/vocabvault-backend/internal/service/favorite"
	"github.com/heartmarshall/vocabvault-backend/internal/service/lookup"
	"github.com/heartmarshall/vocabvault-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocabvault-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// optional favorites database, wires the lookup providers and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("favorites_enabled", cfg.Database.Enabled()),
		slog.Bool("secondary_configured", cfg.LLM.Configured()),
	)

	var pool *pgxpool.Pool
	if cfg.Database.Enabled() {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				return err
			}
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newRouter(buildDeps(cfg, logger, pool, limiter))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildDeps wires providers, services and handlers. A nil pool disables the
// favorites store.
func buildDeps(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) routerDeps {
	var primary lookup.Adapter = freedict.NewProvider(cfg.Dictionary, logger)
	if cfg.Dictionary.CacheSize > 0 {
		primary = cache.New(primary, cfg.Dictionary.CacheSize, cfg.Dictionary.CacheTTL, logger)
	}
	secondary := llm.NewProvider(cfg.LLM, logger)
	if !secondary.Configured() {
		logger.Warn("secondary provider has no credential; phrase lookups will fail",
			slog.String("env", "MINIMAX_API_KEY"))
	}

	lookupSvc := lookup.NewService(logger, primary, secondary)

	var health *rest.HealthHandler
	deps := routerDeps{
		cfg:     cfg,
		logger:  logger,
		lookup:  rest.NewLookupHandler(lookupSvc, logger),
		limiter: limiter,
	}

	if pool != nil {
		favoriteSvc := favorite.NewService(logger, favoriterepo.New(pool), postgres.NewTxManager(pool))
		deps.favorites = rest.NewFavoriteHandler(favoriteSvc, logger)
		health = rest.NewHealthHandler(pool, Version)
	} else {
		health = rest.NewHealthHandler(nil, Version)
	}
	health.SetProvider(primary.Source().String(), true)
	health.SetProvider(secondary.Source().String(), secondary.Configured())
	deps.health = health

	return deps
}
