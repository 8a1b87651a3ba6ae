package service

import (
	"context"
	"errors"
	"fmt"

	"library-api/internal/domains/author"
	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
)

// BookService - Implements ServiceInterface
type BookService struct {
	repo       repository.RepositoryInterface
	authorRepo author.Repository // cross-domain, resolves the embedded author
}

// NewService - Constructor with DI
func NewService(repo repository.RepositoryInterface, authorRepo author.Repository) ServiceInterface {
	return &BookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *BookService) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	page, err := filter.Page.Normalize()
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return s.repo.ListBooks(ctx, filter)
}

func (s *BookService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetBookByID(ctx, id)
}

func (s *BookService) GetBookDetail(ctx context.Context, id int64) (*model.BookDetailRes, error) {
	b, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := s.authorRepo.GetByID(ctx, b.AuthorID)
	if err != nil {
		// The foreign key makes this unreachable unless the store is inconsistent.
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, fmt.Errorf("book %d references missing author %d", b.ID, b.AuthorID)
		}
		return nil, err
	}

	detail := b.ToDetailResponse(*a)
	return &detail, nil
}

func (s *BookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidBook, err)
	}
	return s.repo.CreateBook(ctx, req.ToEntity())
}
