package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// recipeDocument is the stored shape of a recipe. Fields the service does
// not know about are inlined at the top level of the document.
type recipeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Author     string             `bson:"author"`
	Difficulty *string            `bson:"difficulty,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
	Details    bson.M             `bson:",inline"`
}

// knownFields are mapped to struct fields and must never appear inline.
var knownFields = map[string]struct{}{
	domain.FieldID:         {},
	domain.FieldTitle:      {},
	domain.FieldAuthor:     {},
	domain.FieldDifficulty: {},
	domain.FieldCreatedAt:  {},
	domain.FieldUpdatedAt:  {},
	domain.FieldVersion:    {},
}

func toDocument(r *domain.Recipe) *recipeDocument {
	doc := &recipeDocument{
		Title:      r.Title,
		Author:     r.Author,
		Difficulty: r.Difficulty,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if len(r.Details) > 0 {
		doc.Details = make(bson.M, len(r.Details))
		for k, v := range r.Details {
			if _, known := knownFields[k]; !known {
				doc.Details[k] = v
			}
		}
	}

	return doc
}

func (d *recipeDocument) toDomain() *domain.Recipe {
	r := &domain.Recipe{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Author:     d.Author,
		Difficulty: d.Difficulty,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}

	if len(d.Details) > 0 {
		r.Details = make(map[string]any, len(d.Details))
		for k, v := range d.Details {
			r.Details[k] = plain(v)
		}
		// Documents written by other clients may carry a version key.
		delete(r.Details, domain.FieldVersion)
	}

	return r
}

// plain converts driver container types into plain maps and slices.
func plain(v any) any {
	switch t := v.(type) {
	case primitive.M:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}

		return out
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plain(e.Value)
		}

		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}

		return out
	default:
		return v
	}
}

// filterDocument translates a domain filter into a query document.
// A malformed id fails here, before any round trip.
func filterDocument(f domain.RecipeFilter) (bson.M, error) {
	q := bson.M{}

	if f.ID != "" {
		oid, err := primitive.ObjectIDFromHex(f.ID)
		if err != nil {
			return nil, fmt.Errorf("parsing recipe id %q: %w", f.ID, err)
		}

		q[domain.FieldID] = oid
	}

	if f.Title != "" {
		q[domain.FieldTitle] = f.Title
	}

	if f.Author != "" {
		q[domain.FieldAuthor] = f.Author
	}

	if f.Difficulty != "" {
		q[domain.FieldDifficulty] = f.Difficulty
	}

	return q, nil
}

// updateDocument builds a $set update for the given changes, always
// refreshing updatedAt.
func updateDocument(c domain.RecipeChanges, now time.Time) bson.M {
	set := bson.M{domain.FieldUpdatedAt: now}

	if c.Title != nil {
		set[domain.FieldTitle] = *c.Title
	}

	if c.Author != nil {
		set[domain.FieldAuthor] = *c.Author
	}

	if c.Difficulty != nil {
		set[domain.FieldDifficulty] = *c.Difficulty
	}

	for k, v := range c.Details {
		if _, known := knownFields[k]; !known {
			set[k] = v
		}
	}

	return bson.M{"$set": set}
}
