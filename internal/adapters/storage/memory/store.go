// Package memory provides an in-process RecipeStore. It backs the
// "memory" store backend and stands in for MongoDB in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// Store keeps recipes in insertion order behind a RWMutex.
// Identifiers are ObjectID hex strings so both backends accept and reject
// the same ids.
type Store struct {
	mu      sync.RWMutex
	recipes []*domain.Recipe
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Insert implements ports.RecipeStore.
func (s *Store) Insert(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := recipe.Clone()
	stored.ID = primitive.NewObjectID().Hex()
	stored.CreatedAt = s.now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	s.mu.Lock()
	s.recipes = append(s.recipes, stored)
	s.mu.Unlock()

	return stored.Clone(), nil
}

// Find implements ports.RecipeStore.
func (s *Store) Find(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error) {
	if err := check(ctx, filter); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Recipe, 0)
	for _, r := range s.recipes {
		if filter.Matches(r) {
			out = append(out, r.Clone())
		}
	}

	return out, nil
}

// FindOne implements ports.RecipeStore.
func (s *Store) FindOne(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error) {
	if err := check(ctx, filter); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(filter)
	if i < 0 {
		return nil, domain.NewRecipeNotFoundError(filter)
	}

	return s.recipes[i].Clone(), nil
}

// FindOneAndUpdate implements ports.RecipeStore.
func (s *Store) FindOneAndUpdate(
	ctx context.Context,
	filter domain.RecipeFilter,
	changes domain.RecipeChanges,
) (*domain.Recipe, error) {
	if err := check(ctx, filter); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(filter)
	if i < 0 {
		return nil, domain.NewRecipeNotFoundError(filter)
	}

	updated := s.recipes[i].Clone()
	changes.ApplyTo(updated)
	updated.UpdatedAt = s.now().UTC()
	s.recipes[i] = updated

	return updated.Clone(), nil
}

// FindOneAndDelete implements ports.RecipeStore.
func (s *Store) FindOneAndDelete(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error) {
	if err := check(ctx, filter); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(filter)
	if i < 0 {
		return nil, domain.NewRecipeNotFoundError(filter)
	}

	deleted := s.recipes[i]
	s.recipes = slices.Delete(s.recipes, i, i+1)

	return deleted, nil
}

// Len returns the number of stored recipes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.recipes)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "memory"
}

// Check implements ports.HealthChecker. The memory store is always ready.
func (s *Store) Check(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op; the recipes are discarded with the process.
func (s *Store) Close(context.Context) error {
	return nil
}

// index returns the position of the first match, or -1. Callers hold mu.
func (s *Store) index(filter domain.RecipeFilter) int {
	return slices.IndexFunc(s.recipes, filter.Matches)
}

// check rejects cancelled contexts and identifiers MongoDB would refuse to cast.
func check(ctx context.Context, filter domain.RecipeFilter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if filter.ID != "" {
		if _, err := primitive.ObjectIDFromHex(filter.ID); err != nil {
			return fmt.Errorf("parsing recipe id %q: %w", filter.ID, err)
		}
	}

	return nil
}
