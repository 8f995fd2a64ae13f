package dto

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// CreateRecipeRequest holds the indexed fields of a new recipe.
// Every other key of the body is kept as a recipe detail.
type CreateRecipeRequest struct {
	Title      string `json:"title"      validate:"required,notempty,max=200"`
	Author     string `json:"author"     validate:"required,notempty,max=200"`
	Difficulty string `json:"difficulty" validate:"max=50"`
}

// UpdateRecipeRequest holds the indexed fields of a partial update.
// A nil field is left unchanged.
type UpdateRecipeRequest struct {
	Title      *string `json:"title"      validate:"omitnil,notempty,max=200"`
	Author     *string `json:"author"     validate:"omitnil,notempty,max=200"`
	Difficulty *string `json:"difficulty" validate:"omitnil,max=50"`
}

// ParseCreateRecipe reads a new recipe from the request body.
func ParseCreateRecipe(c *gin.Context) (*domain.Recipe, error) {
	body, err := decodeObject(c)
	if err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	title := stringField(body, domain.FieldTitle, verr)
	author := stringField(body, domain.FieldAuthor, verr)
	difficulty := stringField(body, domain.FieldDifficulty, verr)
	details := detailFields(body, verr)

	req := CreateRecipeRequest{
		Title:      deref(title),
		Author:     deref(author),
		Difficulty: deref(difficulty),
	}
	mergeValidation(verr, Validate(req))

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &domain.Recipe{
		Title:      req.Title,
		Author:     req.Author,
		Difficulty: difficulty,
		Details:    details,
	}, nil
}

// ParseRecipeChanges reads a partial update from the request body.
// An empty object is returned as empty changes; the service rejects it.
func ParseRecipeChanges(c *gin.Context) (domain.RecipeChanges, error) {
	body, err := decodeObject(c)
	if err != nil {
		return domain.RecipeChanges{}, err
	}

	verr := &domain.ValidationError{}
	req := UpdateRecipeRequest{
		Title:      stringField(body, domain.FieldTitle, verr),
		Author:     stringField(body, domain.FieldAuthor, verr),
		Difficulty: stringField(body, domain.FieldDifficulty, verr),
	}
	details := detailFields(body, verr)
	mergeValidation(verr, Validate(req))

	if err := verr.OrNil(); err != nil {
		return domain.RecipeChanges{}, err
	}

	return domain.RecipeChanges{
		Title:      req.Title,
		Author:     req.Author,
		Difficulty: req.Difficulty,
		Details:    details,
	}, nil
}

// decodeObject reads the body as a JSON object. Numbers keep their exact
// value: integers that fit in int64 are stored as int64, the rest as float64.
func decodeObject(c *gin.Context) (map[string]any, error) {
	invalid := domain.NewValidationError("body", "must be a JSON object")

	if c.Request.Body == nil {
		return nil, invalid
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return nil, invalid
	}

	for key, v := range body {
		n, ok := exactNumbers(v)
		if !ok {
			return nil, domain.NewValidationError(key, "number is out of range")
		}

		body[key] = n
	}

	return body, nil
}

// exactNumbers replaces every json.Number in v. It reports false for a
// number no float64 can hold.
func exactNumbers(v any) (any, bool) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}

		f, err := t.Float64()

		return f, err == nil
	case map[string]any:
		for k, e := range t {
			n, ok := exactNumbers(e)
			if !ok {
				return nil, false
			}

			t[k] = n
		}
	case []any:
		for i, e := range t {
			n, ok := exactNumbers(e)
			if !ok {
				return nil, false
			}

			t[i] = n
		}
	}

	return v, true
}

// stringField returns body[key] when it is a string, nil when absent.
func stringField(body map[string]any, key string, verr *domain.ValidationError) *string {
	v, ok := body[key]
	if !ok {
		return nil
	}

	s, ok := v.(string)
	if !ok {
		verr.Add(key, "must be a string")
		return nil
	}

	return &s
}

// detailFields collects every non-indexed key of body.
func detailFields(body map[string]any, verr *domain.ValidationError) map[string]any {
	details := make(map[string]any)

	for key, v := range body {
		switch key {
		case domain.FieldTitle, domain.FieldAuthor, domain.FieldDifficulty:
			continue
		}

		if msg := domain.CheckDetailKey(key); msg != "" {
			verr.Add(key, msg)
			continue
		}

		details[key] = v
	}

	if len(details) == 0 {
		return nil
	}

	return details
}

func mergeValidation(verr *domain.ValidationError, err error) {
	for field, msg := range ValidationErrors(err) {
		verr.Add(field, msg)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// RecipeResponse is a recipe as clients see it: the indexed fields and the
// details side by side in one object.
type RecipeResponse map[string]any

// ToRecipeResponse flattens r into its response form.
func ToRecipeResponse(r *domain.Recipe) RecipeResponse {
	resp := make(RecipeResponse, len(r.Details)+6)
	maps.Copy(resp, r.Details)

	resp[domain.FieldID] = r.ID
	resp[domain.FieldTitle] = r.Title
	resp[domain.FieldAuthor] = r.Author

	if r.Difficulty != nil {
		resp[domain.FieldDifficulty] = *r.Difficulty
	}

	if !r.CreatedAt.IsZero() {
		resp[domain.FieldCreatedAt] = r.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	if !r.UpdatedAt.IsZero() {
		resp[domain.FieldUpdatedAt] = r.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}

	return resp
}

// ToRecipeList flattens every recipe in rs.
func ToRecipeList(rs []*domain.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToRecipeResponse(r))
	}

	return out
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	Message string         `json:"message"`
	Recipe  RecipeResponse `json:"recipe"`
}

// UpdatedResponse is the body of a successful update.
type UpdatedResponse struct {
	Message       string         `json:"message"`
	UpdatedRecipe RecipeResponse `json:"updatedRecipe"`
}

// DeletedResponse is the body of a successful delete.
type DeletedResponse struct {
	Message       string         `json:"message"`
	DeletedRecipe RecipeResponse `json:"deletedRecipe"`
}

// Success messages.
const (
	MessageCreated = "Recipe added successfully."
	MessageUpdated = "Recipe updated successfully."
	MessageDeleted = "Recipe deleted successfully."
)
