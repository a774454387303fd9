package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authormodel "bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/shared/paginate"
)

type fakeAuthors struct {
	author *authormodel.Author
	err    error
	gotID  string
}

func (f *fakeAuthors) FindOne(ctx context.Context, id string) (*authormodel.Author, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.author, nil
}

func (f *fakeAuthors) Create(ctx context.Context, req *authormodel.CreateAuthorRequest) (*authormodel.Author, error) {
	panic("not used")
}

func (f *fakeAuthors) FindAll(ctx context.Context, q authormodel.ListAuthorsQuery) (*paginate.Result[authormodel.Author], error) {
	panic("not used")
}

func (f *fakeAuthors) Update(ctx context.Context, id string, req *authormodel.UpdateAuthorRequest) (*authormodel.Author, error) {
	panic("not used")
}

func (f *fakeAuthors) Delete(ctx context.Context, id string) error {
	panic("not used")
}

type fakeRepository struct {
	inserted  *model.Record
	insertErr error

	exists    bool
	existsErr error

	books map[primitive.ObjectID]*model.Book

	gotFilter bson.M
	gotPage   int
	gotLimit  int

	updatedID primitive.ObjectID
	updates   bson.M
	updateErr error

	deleted *model.Record
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: map[primitive.ObjectID]*model.Book{}}
}

func (f *fakeRepository) Insert(ctx context.Context, rec *model.Record) (*model.Record, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	rec.ID = primitive.NewObjectID()
	f.inserted = rec
	return rec, nil
}

func (f *fakeRepository) FindAll(ctx context.Context, filter bson.M, page, limit int) (*paginate.Result[model.Book], error) {
	f.gotFilter = filter
	f.gotPage = page
	f.gotLimit = limit
	return &paginate.Result[model.Book]{Data: []model.Book{}, Meta: paginate.Meta{Page: 1, Limit: 10, TotalPages: 1}}, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeRepository) ExistsTitleOrISBN(ctx context.Context, title, isbn string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.exists, nil
}

func (f *fakeRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	f.updatedID = id
	f.updates = updates
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.Record, error) {
	if f.deleted == nil {
		return nil, model.ErrBookNotFound
	}
	return f.deleted, nil
}

func strptr(s string) *string { return &s }

func validCreateRequest(authorID string) *model.CreateBookRequest {
	return &model.CreateBookRequest{
		Title:         "Pride and Prejudice",
		ISBN:          "978-3-16-148410-0",
		PublishedDate: strptr("1813-01-28"),
		Genre:         strptr("Romance"),
		AuthorID:      authorID,
	}
}

func TestBookCreateAttachesAuthorReference(t *testing.T) {
	authorID := primitive.NewObjectID()
	authors := &fakeAuthors{author: &authormodel.Author{ID: authorID, FirstName: "Jane", LastName: "Austen"}}
	repo := newFakeRepository()
	svc := NewBookService(repo, authors)

	created, err := svc.Create(context.Background(), validCreateRequest(authorID.Hex()))
	require.NoError(t, err)

	assert.Equal(t, authorID.Hex(), authors.gotID)
	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, "Pride and Prejudice", created.Title)
	assert.Equal(t, "978-3-16-148410-0", created.ISBN)
	require.NotNil(t, created.PublishedDate)
	assert.Equal(t, "1813-01-28", created.PublishedDate.Format(model.DateLayout))
}

func TestBookCreateMissingAuthorDoesNotPersist(t *testing.T) {
	authors := &fakeAuthors{err: authormodel.ErrAuthorNotFound}
	repo := newFakeRepository()
	svc := NewBookService(repo, authors)

	_, err := svc.Create(context.Background(), validCreateRequest(primitive.NewObjectID().Hex()))
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	assert.Nil(t, repo.inserted)
}

func TestBookCreateDuplicatePreCheck(t *testing.T) {
	authors := &fakeAuthors{author: &authormodel.Author{ID: primitive.NewObjectID()}}
	repo := newFakeRepository()
	repo.exists = true
	svc := NewBookService(repo, authors)

	_, err := svc.Create(context.Background(), validCreateRequest(primitive.NewObjectID().Hex()))
	assert.ErrorIs(t, err, model.ErrDuplicateBook)
	assert.Nil(t, repo.inserted)
}

// Two concurrent creates can both pass the pre-check; the storage layer's
// unique index is the authoritative guard and its signal must surface as the
// same conflict error.
func TestBookCreateDuplicateKeyBackstop(t *testing.T) {
	authors := &fakeAuthors{author: &authormodel.Author{ID: primitive.NewObjectID()}}
	repo := newFakeRepository()
	repo.insertErr = model.ErrDuplicateBook
	svc := NewBookService(repo, authors)

	_, err := svc.Create(context.Background(), validCreateRequest(primitive.NewObjectID().Hex()))
	assert.ErrorIs(t, err, model.ErrDuplicateBook)
}

func TestBookMalformedIDFailsBeforeStorage(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo, &fakeAuthors{})
	ctx := context.Background()

	_, err := svc.FindOne(ctx, "nope")
	assert.ErrorIs(t, err, model.ErrInvalidID)

	_, err = svc.Update(ctx, "nope", &model.UpdateBookRequest{})
	assert.ErrorIs(t, err, model.ErrInvalidID)

	_, err = svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestBookUpdateAppliesPartialFields(t *testing.T) {
	repo := newFakeRepository()
	id := primitive.NewObjectID()
	repo.books[id] = &model.Book{ID: id, Title: "Old"}
	svc := NewBookService(repo, &fakeAuthors{})

	_, err := svc.Update(context.Background(), id.Hex(), &model.UpdateBookRequest{Title: strptr("New Title")})
	require.NoError(t, err)

	assert.Equal(t, id, repo.updatedID)
	assert.Equal(t, bson.M{"title": "New Title"}, repo.updates)
}

func TestBookUpdateWithNoFieldsSkipsWrite(t *testing.T) {
	repo := newFakeRepository()
	id := primitive.NewObjectID()
	repo.books[id] = &model.Book{ID: id, Title: "Unchanged"}
	svc := NewBookService(repo, &fakeAuthors{})

	got, err := svc.Update(context.Background(), id.Hex(), &model.UpdateBookRequest{})
	require.NoError(t, err)

	assert.Nil(t, repo.updates)
	assert.Equal(t, "Unchanged", got.Title)
}

func TestBookUpdateConflictPropagates(t *testing.T) {
	repo := newFakeRepository()
	id := primitive.NewObjectID()
	repo.books[id] = &model.Book{ID: id}
	repo.updateErr = model.ErrDuplicateBook
	svc := NewBookService(repo, &fakeAuthors{})

	_, err := svc.Update(context.Background(), id.Hex(), &model.UpdateBookRequest{ISBN: strptr("978-3-16-148410-0")})
	assert.ErrorIs(t, err, model.ErrDuplicateBook)
}

func TestBookDeleteReturnsRemovedRecord(t *testing.T) {
	repo := newFakeRepository()
	id := primitive.NewObjectID()
	repo.deleted = &model.Record{ID: id, Title: "Gone"}
	svc := NewBookService(repo, &fakeAuthors{})

	rec, err := svc.Delete(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Gone", rec.Title)

	repo.deleted = nil
	_, err = svc.Delete(context.Background(), id.Hex())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestBookFindAllConvertsReferenceFilter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo, &fakeAuthors{})
	authorID := primitive.NewObjectID()

	_, err := svc.FindAll(context.Background(), model.ListBooksQuery{
		Title:    "pride",
		AuthorID: authorID.Hex(),
		Page:     1,
		Limit:    20,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"title":  primitive.Regex{Pattern: "pride", Options: "i"},
		"author": authorID,
	}, repo.gotFilter)
}
