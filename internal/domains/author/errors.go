package author

import (
	"errors"
	"net/http"

	"library-api/internal/shared"
)

var (
	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")

	// Validation Errors
	ErrInvalidAuthor = errors.New("invalid author")
)

// NotFoundDetail is the fixed 404 detail for a missing author.
const NotFoundDetail = "Author not found"

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAuthor), errors.Is(err, shared.ErrInvalidPage):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
