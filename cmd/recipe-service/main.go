// Package main is the entry point for the recipe service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http"
	"github.com/jsamuelsen/recipe-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/recipe-service/internal/adapters/storage"
	"github.com/jsamuelsen/recipe-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen/recipe-service/internal/adapters/storage/mongodb"
	"github.com/jsamuelsen/recipe-service/internal/app"
	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
	"github.com/jsamuelsen/recipe-service/internal/platform/telemetry"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// recipeStore is a store the service can query, health-check and close.
type recipeStore interface {
	ports.RecipeStore
	ports.HealthChecker
	Close(ctx context.Context) error
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Store.Backend),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store, err := openStore(ctx, &cfg.Store, logger)
	if err != nil {
		return err
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
		defer cancel()

		if closeErr := store.Close(closeCtx); closeErr != nil {
			logger.Error("store close error", slog.Any("error", closeErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	recipeService := app.NewRecipeService(app.RecipeServiceConfig{
		Store:  storage.Instrument(store, storage.NewMetrics(prometheus.DefaultRegisterer)),
		Logger: logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo, prometheus.DefaultGatherer)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(logger, cfg, healthHandler, recipeHandler))

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// openStore connects the configured backend. The memory backend loses
// its recipes when the process exits.
func openStore(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (recipeStore, error) {
	if cfg.Backend == config.BackendMemory {
		logger.Warn("using in-memory recipe store")
		return memory.New(), nil
	}

	store, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            cfg.URI,
		Database:       cfg.Database,
		Collection:     cfg.Collection,
		ConnectTimeout: cfg.ConnectTimeout,
		Logger:         logger,
	})
	if err != nil {
		if domain.IsUnavailable(err) {
			logger.Error("mongodb did not answer within the connect timeout",
				slog.Duration("connect_timeout", cfg.ConnectTimeout),
				slog.String("database", cfg.Database),
			)
		}

		return nil, fmt.Errorf("connecting store: %w", err)
	}

	indexCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := store.EnsureIndexes(indexCtx); err != nil {
		_ = store.Close(context.WithoutCancel(ctx))
		return nil, err
	}

	return store, nil
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
