package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookcatalog-backend/internal/shared/query"
)

const (
	MaxTitleLength = 200
	MaxGenreLength = 50
	DateLayout     = "2006-01-02"
)

// isbnPrefix strips an optional "ISBN", "ISBN-10" or "ISBN-13" label before
// checksum validation.
var isbnPrefix = regexp.MustCompile(`^ISBN(?:-1[03])?:?\s*`)

// ValidISBN accepts ISBN-10 and ISBN-13, with or without hyphens/spaces and
// the optional ISBN prefix, e.g. 978-3-16-148410-0.
func ValidISBN(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	stripped := isbnPrefix.ReplaceAllString(strings.TrimSpace(s), "")
	if err := validation.Validate(stripped, is.ISBN); err != nil {
		return errors.New("must be a valid ISBN-10 or ISBN-13, e.g. 978-3-16-148410-0")
	}
	return nil
}

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	Title         string  `json:"title"`
	ISBN          string  `json:"isbn"`
	PublishedDate *string `json:"publishedDate,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	AuthorID      string  `json:"authorId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.By(ValidISBN),
		),
		validation.Field(&r.PublishedDate, validation.Date(DateLayout)),
		validation.Field(&r.Genre, validation.Length(0, MaxGenreLength)),
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorId is required"),
			is.MongoID.Error("authorId must be a valid id"),
		),
	)
}

// ToRecord converts a validated request into a stored book record with the
// author reference attached.
func (r *CreateBookRequest) ToRecord(authorID primitive.ObjectID) *Record {
	rec := &Record{
		Title:    strings.TrimSpace(r.Title),
		ISBN:     strings.TrimSpace(r.ISBN),
		AuthorID: authorID,
	}
	if r.Genre != nil {
		genre := strings.TrimSpace(*r.Genre)
		rec.Genre = &genre
	}
	if r.PublishedDate != nil {
		if t, err := time.Parse(DateLayout, *r.PublishedDate); err == nil {
			rec.PublishedDate = &t
		}
	}
	return rec
}

// UpdateBookRequest - PATCH /api/v1/books/:id
// The author reference is immutable through this operation, so authorId is
// not an accepted field.
type UpdateBookRequest struct {
	Title         *string `json:"title,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	PublishedDate *string `json:"publishedDate,omitempty"`
	Genre         *string `json:"genre,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.ISBN, validation.By(ValidISBN)),
		validation.Field(&r.PublishedDate, validation.Date(DateLayout)),
		validation.Field(&r.Genre, validation.Length(0, MaxGenreLength)),
	)
}

// Updates builds the partial $set document from the non-nil fields.
func (r *UpdateBookRequest) Updates() bson.M {
	updates := bson.M{}
	if r.Title != nil {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.ISBN != nil {
		updates["isbn"] = strings.TrimSpace(*r.ISBN)
	}
	if r.Genre != nil {
		updates["genre"] = strings.TrimSpace(*r.Genre)
	}
	if r.PublishedDate != nil {
		if t, err := time.Parse(DateLayout, *r.PublishedDate); err == nil {
			updates["publishedDate"] = t
		}
	}
	return updates
}

// ListBooksQuery - GET /api/v1/books
type ListBooksQuery struct {
	Title         string `form:"title"`
	ISBN          string `form:"isbn"`
	Genre         string `form:"genre"`
	PublishedDate string `form:"publishedDate"`
	AuthorID      string `form:"authorId"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

func (q ListBooksQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AuthorID, is.MongoID.Error("authorId must be a valid id")),
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.Limit, validation.Min(0)),
	)
}

// Params exposes the filterable fields for the filter builder. Reference and
// date values are handed over in their storage types so exact matches hit the
// stored BSON representations.
func (q ListBooksQuery) Params() map[string]any {
	params := map[string]any{
		"title": q.Title,
		"isbn":  q.ISBN,
		"genre": q.Genre,
	}
	if q.AuthorID != "" {
		if oid, err := primitive.ObjectIDFromHex(q.AuthorID); err == nil {
			params["authorId"] = oid
		} else {
			params["authorId"] = q.AuthorID
		}
	}
	if q.PublishedDate != "" {
		if t, ok := query.ParseDate(q.PublishedDate); ok {
			params["publishedDate"] = t
		} else {
			params["publishedDate"] = q.PublishedDate
		}
	}
	return params
}
