package model

import (
	"errors"
	"net/http"

	"library-api/internal/shared"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotExist = errors.New("author does not exist")
	ErrInvalidBook    = errors.New("invalid book")
)

const (
	NotFoundDetail       = "Book not found"
	AuthorNotExistDetail = "Author does not exist"
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorNotExist):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidBook), errors.Is(err, shared.ErrInvalidPage):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
