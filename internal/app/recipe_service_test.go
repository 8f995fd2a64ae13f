package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/mocks"
)

var errStoreDown = errors.New("connection refused")

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T) (*RecipeService, *mocks.MockRecipeStore) {
	t.Helper()

	store := mocks.NewMockRecipeStore(t)
	svc := NewRecipeService(RecipeServiceConfig{Store: store, Logger: discardLogger()})

	return svc, store
}

func TestNewRecipeService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewRecipeService(RecipeServiceConfig{Logger: slog.Default()})
	})
}

func TestNewRecipeService_DefaultsLogger(t *testing.T) {
	svc := NewRecipeService(RecipeServiceConfig{Store: mocks.NewMockRecipeStore(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
}

func TestRecipeService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockRecipeStore)
		wantID    string
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockRecipeStore) {
				m.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Recipe")).
					RunAndReturn(func(_ context.Context, r *domain.Recipe) (*domain.Recipe, error) {
						out := r.Clone()
						out.ID = "65f1a0c2e4b0a1b2c3d4e5f6"
						return out, nil
					})
			},
			wantID: "65f1a0c2e4b0a1b2c3d4e5f6",
		},
		{
			name: "store failure",
			setupMock: func(m *mocks.MockRecipeStore) {
				m.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, errStoreDown)
			},
			wantErr: errStoreDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService(t)
			tt.setupMock(store)

			got, err := svc.Create(context.Background(), &domain.Recipe{Title: "Pancakes", Author: "Ana"})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, "Pancakes", got.Title)
		})
	}
}

func TestRecipeService_Lists(t *testing.T) {
	easy := domain.DifficultyEasy
	pancakes := &domain.Recipe{ID: "1", Title: "Pancakes", Author: "Ana", Difficulty: &easy}

	calls := []struct {
		name   string
		filter domain.RecipeFilter
		call   func(*RecipeService) ([]*domain.Recipe, error)
	}{
		{
			name:   "list",
			filter: domain.RecipeFilter{},
			call:   func(s *RecipeService) ([]*domain.Recipe, error) { return s.List(context.Background()) },
		},
		{
			name:   "by author",
			filter: domain.ByAuthor("Ana"),
			call: func(s *RecipeService) ([]*domain.Recipe, error) {
				return s.ListByAuthor(context.Background(), "Ana")
			},
		},
		{
			name:   "easy",
			filter: domain.ByDifficulty("Easy"),
			call:   func(s *RecipeService) ([]*domain.Recipe, error) { return s.ListEasy(context.Background()) },
		},
	}

	for _, c := range calls {
		t.Run(c.name+"/found", func(t *testing.T) {
			svc, store := newService(t)
			store.EXPECT().Find(mock.Anything, c.filter).Return([]*domain.Recipe{pancakes}, nil)

			got, err := c.call(svc)

			require.NoError(t, err)
			assert.Equal(t, []*domain.Recipe{pancakes}, got)
		})

		t.Run(c.name+"/empty is not found", func(t *testing.T) {
			svc, store := newService(t)
			store.EXPECT().Find(mock.Anything, c.filter).Return([]*domain.Recipe{}, nil)

			_, err := c.call(svc)

			require.ErrorIs(t, err, domain.ErrNotFound)
		})

		t.Run(c.name+"/store failure", func(t *testing.T) {
			svc, store := newService(t)
			store.EXPECT().Find(mock.Anything, c.filter).Return(nil, errStoreDown)

			_, err := c.call(svc)

			require.ErrorIs(t, err, errStoreDown)
			assert.False(t, domain.IsNotFound(err))
		})
	}
}

func TestRecipeService_GetByTitle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOne(mock.Anything, domain.ByTitle("Pancakes")).
			Return(&domain.Recipe{ID: "1", Title: "Pancakes"}, nil)

		got, err := svc.GetByTitle(context.Background(), "Pancakes")

		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOne(mock.Anything, domain.ByTitle("Waffles")).
			Return(nil, domain.NewRecipeNotFoundError(domain.ByTitle("Waffles")))

		_, err := svc.GetByTitle(context.Background(), "Waffles")

		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRecipeService_Update(t *testing.T) {
	hard := "Hard"
	changes := domain.RecipeChanges{Difficulty: &hard}
	updated := &domain.Recipe{ID: "65f1a0c2e4b0a1b2c3d4e5f6", Title: "Pancakes", Difficulty: &hard}

	t.Run("by id", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOneAndUpdate(mock.Anything, domain.ByID(updated.ID), changes).Return(updated, nil)

		got, err := svc.UpdateByID(context.Background(), updated.ID, changes)

		require.NoError(t, err)
		assert.Equal(t, "Hard", got.DifficultyValue())
	})

	t.Run("by title", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOneAndUpdate(mock.Anything, domain.ByTitle("Pancakes"), changes).Return(updated, nil)

		got, err := svc.UpdateByTitle(context.Background(), "Pancakes", changes)

		require.NoError(t, err)
		assert.Equal(t, updated.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOneAndUpdate(mock.Anything, domain.ByID(updated.ID), changes).
			Return(nil, domain.NewRecipeNotFoundError(domain.ByID(updated.ID)))

		_, err := svc.UpdateByID(context.Background(), updated.ID, changes)

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("empty changes never reach the store", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.UpdateByTitle(context.Background(), "Pancakes", domain.RecipeChanges{})

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRecipeService_DeleteByID(t *testing.T) {
	id := "65f1a0c2e4b0a1b2c3d4e5f6"

	t.Run("deleted", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOneAndDelete(mock.Anything, domain.ByID(id)).
			Return(&domain.Recipe{ID: id, Title: "Pancakes"}, nil)

		got, err := svc.DeleteByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "Pancakes", got.Title)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().FindOneAndDelete(mock.Anything, domain.ByID("bad")).Return(nil, errStoreDown)

		_, err := svc.DeleteByID(context.Background(), "bad")

		require.ErrorIs(t, err, errStoreDown)
	})
}
