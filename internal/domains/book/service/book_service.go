package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authormodel "bookcatalog-backend/internal/domains/author/model"
	authorservice "bookcatalog-backend/internal/domains/author/service"
	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
	"bookcatalog-backend/internal/shared/paginate"
	"bookcatalog-backend/internal/shared/query"
)

type bookService struct {
	repo    repository.Repository
	authors authorservice.Service
}

// NewBookService creates a new book service instance. Referential integrity
// against authors goes through the author service, not the author collection.
func NewBookService(repo repository.Repository, authors authorservice.Service) Service {
	return &bookService{repo: repo, authors: authors}
}

// Create resolves the author reference first; if the author does not exist
// nothing is persisted. The title/isbn pre-check is advisory, the unique
// indexes are the final authority on conflicts.
func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Record, error) {
	a, err := s.authors.FindOne(ctx, req.AuthorID)
	if err != nil {
		return nil, translateAuthorErr(err)
	}

	exists, err := s.repo.ExistsTitleOrISBN(ctx, strings.TrimSpace(req.Title), strings.TrimSpace(req.ISBN))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateBook
	}

	return s.repo.Insert(ctx, req.ToRecord(a.ID))
}

func (s *bookService) FindAll(ctx context.Context, q model.ListBooksQuery) (*paginate.Result[model.Book], error) {
	filter := query.Build(q.Params())
	return s.repo.FindAll(ctx, filter, q.Page, q.Limit)
}

func (s *bookService) FindOne(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// Update applies the partial update, then re-reads the record so the caller
// gets the post-update state with the author populated.
func (s *bookService) Update(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if updates := req.Updates(); len(updates) > 0 {
		if err := s.repo.Update(ctx, oid, updates); err != nil {
			return nil, err
		}
	}

	return s.repo.FindByID(ctx, oid)
}

func (s *bookService) Delete(ctx context.Context, id string) (*model.Record, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
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

// translateAuthorErr maps author-domain failures from the reference lookup
// onto this domain's error set; anything unrecognized passes through.
func translateAuthorErr(err error) error {
	switch {
	case errors.Is(err, authormodel.ErrAuthorNotFound):
		return model.ErrAuthorNotFound
	case errors.Is(err, authormodel.ErrInvalidID):
		return model.ErrInvalidID
	default:
		return err
	}
}
