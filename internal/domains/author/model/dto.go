package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	MaxNameLength = 50
	MaxBioLength  = 200
	DateLayout    = "2006-01-02"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("firstName is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("lastName is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength)),
		validation.Field(&r.BirthDate, validation.Date(DateLayout)),
	)
}

// ToEntity converts a validated request into an Author entity. String fields
// are trimmed the way the schema stores them.
func (r *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
	}
	if r.Bio != nil {
		bio := strings.TrimSpace(*r.Bio)
		a.Bio = &bio
	}
	if r.BirthDate != nil {
		if t, err := time.Parse(DateLayout, *r.BirthDate); err == nil {
			a.BirthDate = &t
		}
	}
	return a
}

// UpdateAuthorRequest - PATCH /api/v1/authors/:id
// All fields optional for partial updates.
type UpdateAuthorRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(1, MaxNameLength)),
		validation.Field(&r.LastName, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength)),
		validation.Field(&r.BirthDate, validation.Date(DateLayout)),
	)
}

// Updates builds the partial $set document from the non-nil fields.
func (r *UpdateAuthorRequest) Updates() bson.M {
	updates := bson.M{}
	if r.FirstName != nil {
		updates["firstName"] = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		updates["lastName"] = strings.TrimSpace(*r.LastName)
	}
	if r.Bio != nil {
		updates["bio"] = strings.TrimSpace(*r.Bio)
	}
	if r.BirthDate != nil {
		if t, err := time.Parse(DateLayout, *r.BirthDate); err == nil {
			updates["birthDate"] = t
		}
	}
	return updates
}

// ListAuthorsQuery - GET /api/v1/authors
// Known filterable fields plus pagination controls; anything else on the
// query string is dropped at binding time.
type ListAuthorsQuery struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

func (q ListAuthorsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.Limit, validation.Min(0)),
	)
}

// Params exposes the filterable fields for the filter builder.
func (q ListAuthorsQuery) Params() map[string]any {
	return map[string]any{
		"firstName": q.FirstName,
		"lastName":  q.LastName,
	}
}
