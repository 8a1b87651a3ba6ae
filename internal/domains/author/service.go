package author

import (
	"context"

	"library-api/internal/shared"
)

// Service defines business logic operations for Author domain
type Service interface {
	// List returns one page of authors.
	// Errors: shared.ErrInvalidPage
	List(ctx context.Context, page shared.Page) ([]Author, error)

	// GetByID retrieves author by id
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Create validates the request and persists a new author.
	// Errors: ErrInvalidAuthor (wrapping the validation errors)
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
}
