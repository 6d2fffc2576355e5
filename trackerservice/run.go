// Package trackerservice boots the tracker HTTP service: configuration,
// store, authorizer, router and graceful shutdown.
package trackerservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/internal/api"
	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/config"
	"github.com/SamratSK/better-bites/internal/foods"
	"github.com/SamratSK/better-bites/internal/platform/logger"
	"github.com/SamratSK/better-bites/internal/store"
	"github.com/SamratSK/better-bites/internal/store/migrations"
	"github.com/SamratSK/better-bites/internal/store/postgres"
	"github.com/SamratSK/better-bites/internal/store/sqlite"
)

// Run starts the tracker service and blocks until shutdown or error.
func Run() error {
	log := logger.New("tracker-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("store unavailable")
		return err
	}

	az, err := newAuthorizer(cfg, log)
	if err != nil {
		return err
	}

	foodsSvc := foods.NewService(st,
		foods.NewOFFClient(cfg.OpenFoodFactsURL, log),
		cfg.FoodCacheTTLHours, log)

	router := api.NewRouter(st, foodsSvc, az)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newStore opens the configured database. Postgres gets its schema from the
// embedded goose migrations; sqlite applies its DDL inline.
func newStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Msg("postgres store ready")
		return postgres.NewWithDB(db), nil
	case "sqlite":
		st, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("sqlite store ready")
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.DBDriver)
	}
}

func newAuthorizer(cfg *config.Config, log zerolog.Logger) (auth.Authorizer, error) {
	switch cfg.AuthMode {
	case "jwt":
		return auth.NewJWTAuthorizer(cfg.JWTSecret, cfg.ServiceKey)
	case "dev":
		if cfg.Environment == config.EnvProduction {
			return nil, fmt.Errorf("AUTH_MODE=dev is not allowed in production")
		}
		log.Warn().Msg("development authorizer enabled, tokens are unsigned")
		return auth.NewDevAuthorizer(), nil
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
	}
}
