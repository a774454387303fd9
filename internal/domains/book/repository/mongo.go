package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/shared/paginate"
)

type mongoRepository struct {
	coll       *mongo.Collection
	authorColl string
}

// NewMongoRepository creates the book repository. authorCollection is the
// collection the author reference is resolved against.
func NewMongoRepository(coll *mongo.Collection, authorCollection string) Repository {
	return &mongoRepository{coll: coll, authorColl: authorCollection}
}

// Insert persists a new book record. The unique indexes on isbn and title are
// the authoritative uniqueness guard; their violation maps to
// ErrDuplicateBook, every other failure propagates unchanged.
func (r *mongoRepository) Insert(ctx context.Context, rec *model.Record) (*model.Record, error) {
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateBook
		}
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return rec, nil
}

func (r *mongoRepository) FindAll(ctx context.Context, filter bson.M, page, limit int) (*paginate.Result[model.Book], error) {
	return paginate.Paginate[model.Book](ctx, r.coll, filter, paginate.Options{
		Page:  page,
		Limit: limit,
		Populate: []paginate.Lookup{
			{Field: "author", From: r.authorColl},
		},
	})
}

// FindByID resolves the author reference into the result, mirroring the list
// query's lookup.
func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		bson.D{{Key: "$limit", Value: 1}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.authorColl,
			"localField":   "author",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	defer cursor.Close(ctx)

	var books []model.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}
	if len(books) == 0 {
		return nil, model.ErrBookNotFound
	}
	return &books[0], nil
}

// ExistsTitleOrISBN is the pre-insert duplicate check. It is not atomic with
// the insert; the unique indexes backstop the race.
func (r *mongoRepository) ExistsTitleOrISBN(ctx context.Context, title, isbn string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"title": title},
		bson.M{"isbn": isbn},
	}}

	err := r.coll.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check book uniqueness: %w", err)
	}
	return true, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrDuplicateBook
		}
		return fmt.Errorf("failed to update book: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// Delete removes the record and returns it in its stored form.
func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.Record, error) {
	var rec model.Record
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	return &rec, nil
}
