package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/recipe-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
	"github.com/jsamuelsen/recipe-service/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the service logger; every request context carries a child of it.
	Logger *slog.Logger

	AppConfig *config.AppConfig

	HealthHandler *handlers.HealthHandler
	RecipeHandler *handlers.RecipeHandler

	// Timeout bounds each recipe request. Zero disables the bound.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Logger, request ID, correlation ID
//  3. OpenTelemetry tracing and request metrics
//  4. Logging (skips /-/ endpoints)
//  5. Timeout, on the recipe routes only
//
// Health endpoints live under /-/ and have no timeout; the recipe routes
// are registered at the root.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.Logger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.RecipeHandler != nil {
		cfg.RecipeHandler.RegisterRecipeRoutes(api)
	}
}

// NewDefaultRouterConfig creates a RouterConfig from the loaded configuration.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	recipeHandler *handlers.RecipeHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		RecipeHandler: recipeHandler,
		Timeout:       cfg.Server.RequestTimeout,
	}
}
