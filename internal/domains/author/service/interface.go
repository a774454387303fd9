package service

import (
	"context"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/shared/paginate"
)

// Service is the author operations contract. Identifier arguments are raw
// path-parameter strings; each operation validates the format before issuing
// any storage query.
type Service interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	FindAll(ctx context.Context, q model.ListAuthorsQuery) (*paginate.Result[model.Author], error)
	FindOne(ctx context.Context, id string) (*model.Author, error)
	Update(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id string) error
}
