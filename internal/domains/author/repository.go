package author

import (
	"context"

	"library-api/internal/shared"
)

// Repository defines the interface for Author data access operations.
// Implementations run on the request session bound to ctx when present.
type Repository interface {
	// List returns authors ordered by id within page.
	List(ctx context.Context, page shared.Page) ([]Author, error)

	// GetByID returns ErrAuthorNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Create inserts and commits, returning the row with its assigned id.
	Create(ctx context.Context, author *Author) (*Author, error)
}
