// Package paginate executes filtered, pageable queries against a MongoDB
// collection and returns data together with page metadata.
package paginate

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage     = 1
	DefaultLimit    = 10
	DefaultMaxLimit = 100
)

// Collection is the minimal query capability Paginate needs. It is satisfied
// by *mongo.Collection.
type Collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// Lookup resolves a reference field into its referenced document.
type Lookup struct {
	Field string // local field holding the reference
	From  string // collection the reference points into
}

// Options control a paginated query. The zero value means: first page, ten
// documents, sorted by creation time descending, no lookups, full documents.
type Options struct {
	Page       int
	Limit      int
	MaxLimit   int
	Sort       bson.D
	Populate   []Lookup
	Projection bson.M
}

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Paginate runs the filtered, sorted, skipped, limited query and the matching
// count concurrently; both must complete before it returns. Storage errors
// propagate unchanged.
func Paginate[T any](ctx context.Context, coll Collection, filter bson.M, opts Options) (*Result[T], error) {
	page, limit := normalize(opts)
	sortSpec := opts.Sort
	if len(sortSpec) == 0 {
		sortSpec = bson.D{{Key: "createdAt", Value: -1}}
	}
	skip := (page - 1) * limit

	if filter == nil {
		filter = bson.M{}
	}

	var (
		data  []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cursor, err := find(gctx, coll, filter, sortSpec, skip, limit, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &data)
	})

	g.Go(func() error {
		n, err := coll.CountDocuments(gctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if data == nil {
		data = []T{}
	}

	return &Result[T]{
		Data: data,
		Meta: Meta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func find(ctx context.Context, coll Collection, filter bson.M, sortSpec bson.D, skip, limit int, opts Options) (*mongo.Cursor, error) {
	if len(opts.Populate) == 0 {
		findOpts := options.Find().
			SetSort(sortSpec).
			SetSkip(int64(skip)).
			SetLimit(int64(limit))
		if opts.Projection != nil {
			findOpts.SetProjection(opts.Projection)
		}
		return coll.Find(ctx, filter, findOpts)
	}

	// Reference resolution needs an aggregation pipeline. Skip and limit run
	// before the lookups so only the returned page pays for them.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: sortSpec}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	for _, lookup := range opts.Populate {
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         lookup.From,
				"localField":   lookup.Field,
				"foreignField": "_id",
				"as":           lookup.Field,
			}}},
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + lookup.Field,
				"preserveNullAndEmptyArrays": true,
			}}},
		)
	}
	if opts.Projection != nil {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: opts.Projection}})
	}
	return coll.Aggregate(ctx, pipeline)
}

// normalize applies defaults and caps. Pages below 1 are floored to 1 instead
// of producing a negative skip.
func normalize(opts Options) (page, limit int) {
	page = opts.Page
	if page < 1 {
		page = DefaultPage
	}

	limit = opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	maxLimit := opts.MaxLimit
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// totalPages is ceil(total/limit), floored to a minimum of 1 so an empty
// collection still reports one page.
func totalPages(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		return 1
	}
	return pages
}
