package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/shared/paginate"
)

type fakeRepository struct {
	inserted  *model.Author
	insertErr error

	authors map[primitive.ObjectID]*model.Author

	gotFilter bson.M
	gotPage   int
	gotLimit  int

	updatedID primitive.ObjectID
	updates   bson.M

	deletedID primitive.ObjectID

	queried bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{authors: map[primitive.ObjectID]*model.Author{}}
}

func (f *fakeRepository) Insert(ctx context.Context, a *model.Author) (*model.Author, error) {
	f.queried = true
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	a.ID = primitive.NewObjectID()
	f.inserted = a
	f.authors[a.ID] = a
	return a, nil
}

func (f *fakeRepository) FindAll(ctx context.Context, filter bson.M, page, limit int) (*paginate.Result[model.Author], error) {
	f.queried = true
	f.gotFilter = filter
	f.gotPage = page
	f.gotLimit = limit
	return &paginate.Result[model.Author]{Data: []model.Author{}, Meta: paginate.Meta{Page: 1, Limit: 10, TotalPages: 1}}, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	f.queried = true
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (f *fakeRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*model.Author, error) {
	f.queried = true
	f.updatedID = id
	f.updates = updates
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.queried = true
	f.deletedID = id
	if _, ok := f.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestAuthorCreateThenFindOne(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthorService(repo)
	ctx := context.Background()

	req := &model.CreateAuthorRequest{
		FirstName: "  Jane ",
		LastName:  "Austen",
		Bio:       strptr("English novelist"),
		BirthDate: strptr("1775-12-16"),
	}

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	found, err := svc.FindOne(ctx, created.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Jane", found.FirstName)
	assert.Equal(t, "Austen", found.LastName)
	require.NotNil(t, found.Bio)
	assert.Equal(t, "English novelist", *found.Bio)
	require.NotNil(t, found.BirthDate)
	assert.Equal(t, "1775-12-16", found.BirthDate.Format(model.DateLayout))
}

func TestAuthorCreateDuplicatePropagates(t *testing.T) {
	repo := newFakeRepository()
	repo.insertErr = model.ErrDuplicateAuthor
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{FirstName: "Jane", LastName: "Austen"})
	assert.ErrorIs(t, err, model.ErrDuplicateAuthor)
}

func TestAuthorMalformedIDFailsBeforeStorage(t *testing.T) {
	for _, id := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		repo := newFakeRepository()
		svc := NewAuthorService(repo)
		ctx := context.Background()

		_, err := svc.FindOne(ctx, id)
		assert.ErrorIs(t, err, model.ErrInvalidID, "FindOne(%q)", id)

		_, err = svc.Update(ctx, id, &model.UpdateAuthorRequest{})
		assert.ErrorIs(t, err, model.ErrInvalidID, "Update(%q)", id)

		err = svc.Delete(ctx, id)
		assert.ErrorIs(t, err, model.ErrInvalidID, "Delete(%q)", id)

		assert.False(t, repo.queried, "no storage call expected for %q", id)
	}
}

func TestAuthorUnknownIDIsNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthorService(repo)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	_, err := svc.FindOne(ctx, id)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	_, err = svc.Update(ctx, id, &model.UpdateAuthorRequest{FirstName: strptr("X")})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorFindAllBuildsFilter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthorService(repo)

	_, err := svc.FindAll(context.Background(), model.ListAuthorsQuery{
		FirstName: "Jane",
		Page:      2,
		Limit:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"firstName": primitive.Regex{Pattern: "Jane", Options: "i"},
	}, repo.gotFilter)
	assert.Equal(t, 2, repo.gotPage)
	assert.Equal(t, 5, repo.gotLimit)
}

func TestAuthorUpdateSendsOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthorService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateAuthorRequest{FirstName: "Jane", LastName: "Austen"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID.Hex(), &model.UpdateAuthorRequest{Bio: strptr("  updated bio ")})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"bio": "updated bio"}, repo.updates)
	assert.Equal(t, created.ID, repo.updatedID)
}
