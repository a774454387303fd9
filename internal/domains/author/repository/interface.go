package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/shared/paginate"
)

// Repository is the storage contract for author records.
type Repository interface {
	Insert(ctx context.Context, a *model.Author) (*model.Author, error)
	FindAll(ctx context.Context, filter bson.M, page, limit int) (*paginate.Result[model.Author], error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*model.Author, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
