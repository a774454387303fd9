package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/domains/author/repository"
	"bookcatalog-backend/internal/shared/paginate"
	"bookcatalog-backend/internal/shared/query"
)

type authorService struct {
	repo repository.Repository
}

// NewAuthorService creates a new author service instance. The service depends
// on the repository abstraction, not the concrete mongo type.
func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	return s.repo.Insert(ctx, req.ToEntity())
}

func (s *authorService) FindAll(ctx context.Context, q model.ListAuthorsQuery) (*paginate.Result[model.Author], error) {
	filter := query.Build(q.Params())
	return s.repo.FindAll(ctx, filter, q.Page, q.Limit)
}

func (s *authorService) FindOne(ctx context.Context, id string) (*model.Author, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *authorService) Update(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, oid, req.Updates())
}

func (s *authorService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}

// parseID rejects malformed identifiers before any query is issued.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidID
	}
	return oid, nil
}
