package service

import (
	"context"

	"library-api/internal/domains/book/model"
)

// ServiceInterface - business operations for the Book domain
type ServiceInterface interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)
	// GetBookDetail resolves the owning author alongside the book.
	GetBookDetail(ctx context.Context, id int64) (*model.BookDetailRes, error)
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
}
