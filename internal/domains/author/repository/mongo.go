package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/shared/paginate"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) Repository {
	return &mongoRepository{coll: coll}
}

// Insert persists a new author. The unique index on the author identity is
// the authoritative uniqueness guard; its violation maps to
// ErrDuplicateAuthor, every other failure propagates unchanged.
func (r *mongoRepository) Insert(ctx context.Context, a *model.Author) (*model.Author, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateAuthor
		}
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return a, nil
}

func (r *mongoRepository) FindAll(ctx context.Context, filter bson.M, page, limit int) (*paginate.Result[model.Author], error) {
	return paginate.Paginate[model.Author](ctx, r.coll, filter, paginate.Options{
		Page:  page,
		Limit: limit,
	})
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	var a model.Author
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to find author: %w", err)
	}
	return &a, nil
}

// Update applies a partial $set and returns the post-update record.
func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*model.Author, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a model.Author
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrAuthorNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateAuthor
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}
