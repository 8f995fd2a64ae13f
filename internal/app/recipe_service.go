// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// RecipeService orchestrates the recipe use cases. Each method makes
// exactly one store call; list operations report an empty result as
// domain.ErrNotFound.
type RecipeService struct {
	store  ports.RecipeStore
	logger *slog.Logger
}

// RecipeServiceConfig contains the dependencies of the recipe service.
type RecipeServiceConfig struct {
	Store  ports.RecipeStore
	Logger *slog.Logger
}

// NewRecipeService creates a recipe service. It panics without a store.
func NewRecipeService(cfg RecipeServiceConfig) *RecipeService {
	if cfg.Store == nil {
		panic("app: recipe store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RecipeService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.RecipeService")),
	}
}

// Create stores a new recipe and returns it with its assigned identifier.
func (s *RecipeService) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	logger := s.loggerFrom(ctx)

	created, err := s.store.Insert(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("adding recipe: %w", err)
	}

	logger.InfoContext(ctx, "recipe added",
		slog.String("recipe_id", created.ID),
		slog.String("title", created.Title),
	)

	return created, nil
}

// List returns every stored recipe.
func (s *RecipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	return s.list(ctx, domain.RecipeFilter{})
}

// ListByAuthor returns the recipes with the given author.
func (s *RecipeService) ListByAuthor(ctx context.Context, author string) ([]*domain.Recipe, error) {
	return s.list(ctx, domain.ByAuthor(author))
}

// ListEasy returns the recipes whose difficulty is exactly "Easy".
func (s *RecipeService) ListEasy(ctx context.Context) ([]*domain.Recipe, error) {
	return s.list(ctx, domain.ByDifficulty(domain.DifficultyEasy))
}

// GetByTitle returns the first recipe with the given title.
func (s *RecipeService) GetByTitle(ctx context.Context, title string) (*domain.Recipe, error) {
	s.loggerFrom(ctx).DebugContext(ctx, "fetching recipe", slog.String("title", title))

	recipe, err := s.store.FindOne(ctx, domain.ByTitle(title))
	if err != nil {
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}

	return recipe, nil
}

// UpdateByID applies changes to the recipe with the given identifier and
// returns the updated recipe.
func (s *RecipeService) UpdateByID(ctx context.Context, id string, changes domain.RecipeChanges) (*domain.Recipe, error) {
	return s.update(ctx, domain.ByID(id), changes)
}

// UpdateByTitle applies changes to the first recipe with the given title and
// returns the updated recipe.
func (s *RecipeService) UpdateByTitle(
	ctx context.Context,
	title string,
	changes domain.RecipeChanges,
) (*domain.Recipe, error) {
	return s.update(ctx, domain.ByTitle(title), changes)
}

// DeleteByID removes the recipe with the given identifier and returns it.
func (s *RecipeService) DeleteByID(ctx context.Context, id string) (*domain.Recipe, error) {
	logger := s.loggerFrom(ctx).With(slog.String("recipe_id", id))

	deleted, err := s.store.FindOneAndDelete(ctx, domain.ByID(id))
	if err != nil {
		return nil, fmt.Errorf("deleting recipe: %w", err)
	}

	logger.InfoContext(ctx, "recipe deleted", slog.String("title", deleted.Title))

	return deleted, nil
}

func (s *RecipeService) list(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error) {
	recipes, err := s.store.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetching recipes: %w", err)
	}

	if len(recipes) == 0 {
		return nil, domain.NewRecipeNotFoundError(filter)
	}

	s.loggerFrom(ctx).DebugContext(ctx, "fetched recipes", slog.Int("count", len(recipes)))

	return recipes, nil
}

func (s *RecipeService) update(
	ctx context.Context,
	filter domain.RecipeFilter,
	changes domain.RecipeChanges,
) (*domain.Recipe, error) {
	key, value := filter.Describe()
	logger := s.loggerFrom(ctx).With(slog.Group("filter", slog.String(key, value)))

	if changes.IsEmpty() {
		return nil, domain.NewValidationError("body", "must contain at least one field to update")
	}

	updated, err := s.store.FindOneAndUpdate(ctx, filter, changes)
	if err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}

	logger.InfoContext(ctx, "recipe updated", slog.String("recipe_id", updated.ID))

	return updated, nil
}

// loggerFrom prefers the request-scoped logger, which carries request and
// correlation IDs.
func (s *RecipeService) loggerFrom(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
