package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bookcatalog-backend/internal/config"
)

// Collection names used by the repositories.
const (
	AuthorCollection = "authors"
	BookCollection   = "books"
)

// Connect establishes the MongoDB connection pool and verifies it with a ping.
// The pool is owned by the returned client; callers disconnect it on shutdown.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
	return client, nil
}

// EnsureIndexes creates the unique indexes the repositories rely on as the
// authoritative uniqueness guard. Startup aborts if any of them cannot be built.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	authorIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "firstName", Value: 1}, {Key: "lastName", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_author_identity"),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	if _, err := db.Collection(AuthorCollection).Indexes().CreateMany(ctx, authorIndexes); err != nil {
		return fmt.Errorf("failed to create author indexes: %w", err)
	}

	bookIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isbn", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_book_isbn"),
		},
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_book_title"),
		},
		{
			Keys: bson.D{{Key: "author", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	if _, err := db.Collection(BookCollection).Indexes().CreateMany(ctx, bookIndexes); err != nil {
		return fmt.Errorf("failed to create book indexes: %w", err)
	}

	return nil
}
