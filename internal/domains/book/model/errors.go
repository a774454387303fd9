package model

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidID      = errors.New("invalid book id format")
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateBook  = errors.New("book with this title or isbn already exists")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateBook):
		return "DUPLICATE_BOOK"
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
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateBook):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
