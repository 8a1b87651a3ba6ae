package model

import (
	"library-api/internal/shared"
)

// Book represents the core Book entity.
// AuthorID must reference an existing author; the store enforces it.
type Book struct {
	ID              int64       `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Summary         *string     `json:"summary" db:"summary"`
	PublicationDate shared.Date `json:"publication_date" db:"publication_date"`
	AuthorID        int64       `json:"author_id" db:"author_id"`
}

// BookFilter - Filter object for list queries
type BookFilter struct {
	AuthorID *int64 // nil means all authors
	Page     shared.Page
}
