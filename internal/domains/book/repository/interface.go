package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/shared/paginate"
)

// Repository is the storage contract for book records. Read operations
// resolve the author reference into the embedded document.
type Repository interface {
	Insert(ctx context.Context, rec *model.Record) (*model.Record, error)
	FindAll(ctx context.Context, filter bson.M, page, limit int) (*paginate.Result[model.Book], error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	ExistsTitleOrISBN(ctx context.Context, title, isbn string) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) (*model.Record, error)
}
