package service

import (
	"context"
	"fmt"

	"library-api/internal/domains/author"
	"library-api/internal/shared"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, page shared.Page) ([]author.Author, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", author.ErrInvalidAuthor, err)
	}
	return s.repo.Create(ctx, req.ToEntity())
}
