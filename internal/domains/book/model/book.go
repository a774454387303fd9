package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authormodel "bookcatalog-backend/internal/domains/author/model"
)

// Book is the populated read model: the author reference resolved into the
// full author document. All read paths return this shape.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	ISBN          string             `bson:"isbn" json:"isbn"`
	PublishedDate *time.Time         `bson:"publishedDate,omitempty" json:"publishedDate,omitempty"`
	Genre         *string            `bson:"genre,omitempty" json:"genre,omitempty"`
	Author        authormodel.Author `bson:"author" json:"author"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Record is the stored form of a book: the author field holds a bare
// reference. Write paths operate on records.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	ISBN          string             `bson:"isbn" json:"isbn"`
	PublishedDate *time.Time         `bson:"publishedDate,omitempty" json:"publishedDate,omitempty"`
	Genre         *string            `bson:"genre,omitempty" json:"genre,omitempty"`
	AuthorID      primitive.ObjectID `bson:"author" json:"author"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
