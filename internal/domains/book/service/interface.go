package service

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/shared/paginate"
)

// Service is the book operations contract. Create returns the stored record
// with a bare author reference; every read operation returns the populated
// form. Delete returns the removed record so the boundary can decide what to
// expose.
type Service interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Record, error)
	FindAll(ctx context.Context, q model.ListBooksQuery) (*paginate.Result[model.Book], error)
	FindOne(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id string) (*model.Record, error)
}
