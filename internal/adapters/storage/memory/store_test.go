package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

func ptr(s string) *string { return &s }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seed(t *testing.T, s *Store, recipes ...*domain.Recipe) []*domain.Recipe {
	t.Helper()

	out := make([]*domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		stored, err := s.Insert(context.Background(), r)
		require.NoError(t, err)
		out = append(out, stored)
	}

	return out
}

func TestInsert_AssignsIDAndTimestamps(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(fixedClock(now)))

	in := &domain.Recipe{ID: "ignored", Title: "Pancakes", Author: "Ana"}
	got, err := s.Insert(context.Background(), in)

	require.NoError(t, err)
	assert.Len(t, got.ID, 24)
	assert.NotEqual(t, "ignored", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, "ignored", in.ID, "caller's value must not be modified")
	assert.Equal(t, 1, s.Len())
}

func TestFind(t *testing.T) {
	s := New()
	seed(t, s,
		&domain.Recipe{Title: "Pancakes", Author: "Ana", Difficulty: ptr(domain.DifficultyEasy)},
		&domain.Recipe{Title: "Souffle", Author: "Ana", Difficulty: ptr("Hard")},
		&domain.Recipe{Title: "Toast", Author: "Ben", Difficulty: ptr(domain.DifficultyEasy)},
	)

	tests := []struct {
		name   string
		filter domain.RecipeFilter
		titles []string
	}{
		{name: "all in insertion order", filter: domain.RecipeFilter{}, titles: []string{"Pancakes", "Souffle", "Toast"}},
		{name: "by author", filter: domain.ByAuthor("Ana"), titles: []string{"Pancakes", "Souffle"}},
		{name: "easy", filter: domain.ByDifficulty(domain.DifficultyEasy), titles: []string{"Pancakes", "Toast"}},
		{name: "no match", filter: domain.ByAuthor("Zed"), titles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Find(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotNil(t, got)

			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, r.Title)
			}

			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestFindOne(t *testing.T) {
	s := New()
	stored := seed(t, s, &domain.Recipe{Title: "Pancakes", Author: "Ana"})

	got, err := s.FindOne(context.Background(), domain.ByTitle("Pancakes"))
	require.NoError(t, err)
	assert.Equal(t, stored[0].ID, got.ID)

	got, err = s.FindOne(context.Background(), domain.ByID(stored[0].ID))
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Title)

	_, err = s.FindOne(context.Background(), domain.ByTitle("Waffles"))
	assert.True(t, domain.IsNotFound(err))
}

func TestFindOne_ReturnsCopy(t *testing.T) {
	s := New()
	seed(t, s, &domain.Recipe{Title: "Pancakes", Details: map[string]any{"servings": 2.0}})

	got, err := s.FindOne(context.Background(), domain.ByTitle("Pancakes"))
	require.NoError(t, err)
	got.Details["servings"] = 99.0

	again, err := s.FindOne(context.Background(), domain.ByTitle("Pancakes"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, again.Details["servings"])
}

func TestMalformedID_IsStoreFailure(t *testing.T) {
	s := New()

	_, err := s.FindOneAndUpdate(context.Background(), domain.ByID("not-an-id"), domain.RecipeChanges{})
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err))

	_, err = s.FindOneAndDelete(context.Background(), domain.ByID("xyz"))
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err))
}

func TestFindOneAndUpdate(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := created
	s := New(WithClock(func() time.Time { return clock }))
	stored := seed(t, s, &domain.Recipe{
		Title: "Pancakes", Author: "Ana", Difficulty: ptr(domain.DifficultyEasy),
		Details: map[string]any{"servings": 2.0},
	})

	clock = created.Add(time.Hour)
	hard := "Hard"
	got, err := s.FindOneAndUpdate(context.Background(), domain.ByTitle("Pancakes"), domain.RecipeChanges{Difficulty: &hard})

	require.NoError(t, err)
	assert.Equal(t, stored[0].ID, got.ID)
	assert.Equal(t, "Hard", got.DifficultyValue())
	assert.Equal(t, "Ana", got.Author)
	assert.Equal(t, 2.0, got.Details["servings"])
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, clock, got.UpdatedAt)

	easy, err := s.Find(context.Background(), domain.ByDifficulty(domain.DifficultyEasy))
	require.NoError(t, err)
	assert.Empty(t, easy)
}

func TestFindOneAndUpdate_NotFound(t *testing.T) {
	s := New()

	_, err := s.FindOneAndUpdate(context.Background(), domain.ByID("65f1a0c2e4b0a1b2c3d4e5f6"), domain.RecipeChanges{})
	assert.True(t, domain.IsNotFound(err))
}

func TestFindOneAndDelete(t *testing.T) {
	s := New()
	stored := seed(t, s, &domain.Recipe{Title: "Pancakes"}, &domain.Recipe{Title: "Toast"})

	got, err := s.FindOneAndDelete(context.Background(), domain.ByID(stored[0].ID))
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Title)
	assert.Equal(t, 1, s.Len())

	_, err = s.FindOneAndDelete(context.Background(), domain.ByID(stored[0].ID))
	assert.True(t, domain.IsNotFound(err))
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Insert(ctx, &domain.Recipe{Title: "x"})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Find(ctx, domain.RecipeFilter{})
	require.ErrorIs(t, err, context.Canceled)

	require.ErrorIs(t, s.Check(ctx), context.Canceled)
	require.NoError(t, s.Close(ctx))
}

func TestConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			_, err := s.Insert(context.Background(), &domain.Recipe{Title: "Pancakes", Author: "Ana"})
			assert.NoError(t, err)

			_, err = s.Find(context.Background(), domain.ByAuthor("Ana"))
			assert.NoError(t, err)
		})
	}

	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
