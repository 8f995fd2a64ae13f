// Package mongodb implements ports.RecipeStore on a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// DefaultConnectTimeout bounds server selection and the startup ping.
const DefaultConnectTimeout = 10 * time.Second

// Config holds connection settings.
type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	Logger         *slog.Logger
}

// Store is a RecipeStore backed by one MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *slog.Logger
	now    func() time.Time
}

// Connect dials MongoDB, verifies the primary is reachable and returns a
// store bound to the configured collection. The client is shared by every
// request for the life of the process; the driver pools connections.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, domain.NewUnavailableError("mongodb", err.Error())
	}

	logger.Info("connected to mongodb",
		slog.String("database", cfg.Database),
		slog.String("collection", cfg.Collection),
	)

	return &Store{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		logger: logger,
		now:    time.Now,
	}, nil
}

// EnsureIndexes creates the lookup indexes the service queries on.
// Titles are indexed but not unique.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: domain.FieldTitle, Value: 1}}},
		{Keys: bson.D{{Key: domain.FieldAuthor, Value: 1}}},
		{Keys: bson.D{{Key: domain.FieldDifficulty, Value: 1}}},
	}

	names, err := s.coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("creating recipe indexes: %w", err)
	}

	s.logger.Debug("recipe indexes ready", slog.Any("indexes", names))

	return nil
}

// Insert implements ports.RecipeStore.
func (s *Store) Insert(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	doc := toDocument(recipe)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = s.now().UTC().Truncate(time.Millisecond)
	doc.UpdatedAt = doc.CreatedAt

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("inserting recipe: %w", err)
	}

	return doc.toDomain(), nil
}

// Find implements ports.RecipeStore.
func (s *Store) Find(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error) {
	q, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}

	cur, err := s.coll.Find(ctx, q, options.Find().SetSort(bson.D{{Key: domain.FieldID, Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("finding recipes: %w", err)
	}

	var docs []recipeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading recipes: %w", err)
	}

	out := make([]*domain.Recipe, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}

	return out, nil
}

// FindOne implements ports.RecipeStore.
func (s *Store) FindOne(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error) {
	q, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}

	return s.decodeOne(s.coll.FindOne(ctx, q), filter, "finding recipe")
}

// FindOneAndUpdate implements ports.RecipeStore.
func (s *Store) FindOneAndUpdate(
	ctx context.Context,
	filter domain.RecipeFilter,
	changes domain.RecipeChanges,
) (*domain.Recipe, error) {
	q, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}

	update := updateDocument(changes, s.now().UTC().Truncate(time.Millisecond))
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return s.decodeOne(s.coll.FindOneAndUpdate(ctx, q, update, opts), filter, "updating recipe")
}

// FindOneAndDelete implements ports.RecipeStore.
func (s *Store) FindOneAndDelete(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error) {
	q, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}

	return s.decodeOne(s.coll.FindOneAndDelete(ctx, q), filter, "deleting recipe")
}

func (s *Store) decodeOne(res *mongo.SingleResult, filter domain.RecipeFilter, op string) (*domain.Recipe, error) {
	var doc recipeDocument

	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewRecipeNotFoundError(filter)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toDomain(), nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "mongodb"
}

// Check implements ports.HealthChecker by pinging the primary.
func (s *Store) Check(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-use connections up to ctx.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}

	return nil
}
