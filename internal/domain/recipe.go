package domain

import (
	"maps"
	"strings"
	"time"
)

// DifficultyEasy is the one difficulty value the service queries on directly.
// Other values are stored as given.
const DifficultyEasy = "Easy"

// Field names shared by every representation of a recipe.
const (
	FieldID         = "_id"
	FieldTitle      = "title"
	FieldAuthor     = "author"
	FieldDifficulty = "difficulty"
	FieldCreatedAt  = "createdAt"
	FieldUpdatedAt  = "updatedAt"
	FieldVersion    = "__v"
)

// Recipe is the service's only entity.
// Title, Author and Difficulty are the fields the service queries on;
// everything else a client submits is carried in Details untouched.
type Recipe struct {
	// ID is assigned by the store on insert and never changes.
	ID string

	Title  string
	Author string

	// Difficulty is nil when the client never sent one. An empty string
	// is a value like any other and is returned as given.
	Difficulty *string

	// Details holds the remaining document fields (ingredients, steps, ...).
	Details map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy of r whose Details map can be modified independently.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}

	c := *r
	c.Difficulty = cloneString(r.Difficulty)
	c.Details = maps.Clone(r.Details)

	return &c
}

// DifficultyValue returns the difficulty, or "" when none was given.
func (r *Recipe) DifficultyValue() string {
	if r.Difficulty == nil {
		return ""
	}

	return *r.Difficulty
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}

// RecipeChanges is a partial update. Nil pointers and absent Details keys
// leave the stored value unchanged.
type RecipeChanges struct {
	Title      *string
	Author     *string
	Difficulty *string
	Details    map[string]any
}

// IsEmpty reports whether the changes would modify nothing.
func (c RecipeChanges) IsEmpty() bool {
	return c.Title == nil && c.Author == nil && c.Difficulty == nil && len(c.Details) == 0
}

// ApplyTo writes the changes into r.
func (c RecipeChanges) ApplyTo(r *Recipe) {
	if c.Title != nil {
		r.Title = *c.Title
	}

	if c.Author != nil {
		r.Author = *c.Author
	}

	if c.Difficulty != nil {
		r.Difficulty = cloneString(c.Difficulty)
	}

	if len(c.Details) > 0 && r.Details == nil {
		r.Details = make(map[string]any, len(c.Details))
	}

	maps.Copy(r.Details, c.Details)
}

// RecipeFilter selects recipes by exact match. Empty fields are ignored,
// so the zero filter matches every recipe.
type RecipeFilter struct {
	ID         string
	Title      string
	Author     string
	Difficulty string
}

// ByID returns a filter on the store-assigned identifier.
func ByID(id string) RecipeFilter { return RecipeFilter{ID: id} }

// ByTitle returns a filter on the exact title.
func ByTitle(title string) RecipeFilter { return RecipeFilter{Title: title} }

// ByAuthor returns a filter on the exact author name.
func ByAuthor(author string) RecipeFilter { return RecipeFilter{Author: author} }

// ByDifficulty returns a filter on the exact difficulty value.
func ByDifficulty(difficulty string) RecipeFilter { return RecipeFilter{Difficulty: difficulty} }

// Matches reports whether r satisfies every non-empty field of f.
func (f RecipeFilter) Matches(r *Recipe) bool {
	switch {
	case f.ID != "" && r.ID != f.ID:
		return false
	case f.Title != "" && r.Title != f.Title:
		return false
	case f.Author != "" && r.Author != f.Author:
		return false
	case f.Difficulty != "" && r.DifficultyValue() != f.Difficulty:
		return false
	}

	return true
}

// IsReservedField reports whether key is managed by the store and may not
// be written by clients.
func IsReservedField(key string) bool {
	switch key {
	case FieldID, FieldCreatedAt, FieldUpdatedAt, FieldVersion:
		return true
	}

	return false
}

// CheckDetailKey returns a message describing why key cannot be stored as a
// free-form field, or "" when it is acceptable. Keys starting with '$' or
// containing '.' would be read by the store as operators or nested paths.
func CheckDetailKey(key string) string {
	switch {
	case strings.TrimSpace(key) == "":
		return "field name must not be empty"
	case IsReservedField(key):
		return "field is read-only"
	case strings.HasPrefix(key, "$"):
		return "field name must not start with '$'"
	case strings.Contains(key, "."):
		return "field name must not contain '.'"
	}

	return ""
}

// Describe returns the most specific key of f and its value, for messages.
func (f RecipeFilter) Describe() (key, value string) {
	switch {
	case f.ID != "":
		return FieldID, f.ID
	case f.Title != "":
		return FieldTitle, f.Title
	case f.Author != "":
		return FieldAuthor, f.Author
	case f.Difficulty != "":
		return FieldDifficulty, f.Difficulty
	}

	return "", ""
}

// NewRecipeNotFoundError reports that no recipe matched filter.
func NewRecipeNotFoundError(f RecipeFilter) error {
	key, value := f.Describe()
	return NewNotFoundError("recipe", key, value)
}
