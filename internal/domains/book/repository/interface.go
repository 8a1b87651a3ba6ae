package repository

import (
	"context"

	"library-api/internal/domains/book/model"
)

// RepositoryInterface - Định nghĩa data access methods
type RepositoryInterface interface {
	// ListBooks returns books ordered by id, restricted to filter.AuthorID when set.
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	// GetBookByID returns model.ErrBookNotFound when absent.
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)
	// CreateBook inserts and commits; a dangling author_id yields model.ErrAuthorNotExist.
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)
}
