// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the application never sees a concrete driver.
package ports

//go:generate go tool mockery

import (
	"context"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// RecipeStore is the document-store collaborator. Each method is a single
// storage call; none of them retries.
//
// Lookups that match nothing are not errors for the list-shaped methods
// (Find returns an empty slice). The single-document methods return
// domain.ErrNotFound. Any other error is a store failure: a malformed
// identifier, a lost connection, a rejected document.
type RecipeStore interface {
	// Insert stores a new recipe and returns it with the store-assigned ID
	// and timestamps. The ID of the argument is ignored.
	Insert(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)

	// Find returns every recipe matching filter, oldest first.
	Find(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error)

	// FindOne returns the first recipe matching filter.
	FindOne(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error)

	// FindOneAndUpdate applies changes to the first recipe matching filter
	// and returns the document as it is after the update.
	FindOneAndUpdate(ctx context.Context, filter domain.RecipeFilter, changes domain.RecipeChanges) (*domain.Recipe, error)

	// FindOneAndDelete removes the first recipe matching filter and returns it.
	FindOneAndDelete(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error)
}
