package model

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidID       = errors.New("invalid author id format")
	ErrAuthorNotFound  = errors.New("author not found")
	ErrDuplicateAuthor = errors.New("author with this information already exists")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateAuthor):
		return "DUPLICATE_AUTHOR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to its HTTP status code. Unrecognized
// storage failures fall through to 500.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateAuthor):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
