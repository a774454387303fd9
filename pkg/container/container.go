// Package container wires the application dependency graph: config, storage,
// repositories, services and handlers. Construction is fail-fast; a broken
// dependency means the application does not start.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"bookcatalog-backend/internal/config"
	authorhandler "bookcatalog-backend/internal/domains/author/handler"
	authorrepo "bookcatalog-backend/internal/domains/author/repository"
	authorservice "bookcatalog-backend/internal/domains/author/service"
	bookhandler "bookcatalog-backend/internal/domains/book/handler"
	bookrepo "bookcatalog-backend/internal/domains/book/repository"
	bookservice "bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/infrastructure/database"
)

type Container struct {
	Config *config.Config

	MongoClient *mongo.Client

	AuthorService authorservice.Service
	BookService   bookservice.Service

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	authorRepository := authorrepo.NewMongoRepository(db.Collection(database.AuthorCollection))
	bookRepository := bookrepo.NewMongoRepository(db.Collection(database.BookCollection), database.AuthorCollection)

	authorSvc := authorservice.NewAuthorService(authorRepository)
	bookSvc := bookservice.NewBookService(bookRepository, authorSvc)

	return &Container{
		Config:        cfg,
		MongoClient:   client,
		AuthorService: authorSvc,
		BookService:   bookSvc,
		AuthorHandler: authorhandler.NewAuthorHandler(authorSvc),
		BookHandler:   bookhandler.NewBookHandler(bookSvc),
	}, nil
}

// Cleanup releases the storage connection pool.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.MongoClient.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect MongoDB client")
	}
}
