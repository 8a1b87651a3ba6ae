package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/domains/author"
	"library-api/internal/shared"
)

const (
	MaxTitleLength   = 255
	MaxSummaryLength = 10000
)

// CreateBookRequest - POST /books/
type CreateBookRequest struct {
	Title           string       `json:"title"`
	Summary         *string      `json:"summary,omitempty"`
	PublicationDate *shared.Date `json:"publication_date"`
	AuthorID        int64        `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, MaxTitleLength),
		),
		validation.Field(&r.Summary,
			validation.RuneLength(0, MaxSummaryLength),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("publication_date is required"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)),
		),
	)
}

// ToEntity converts a validated request into a Book without an id.
func (r *CreateBookRequest) ToEntity() *Book {
	b := &Book{
		Title:    r.Title,
		Summary:  r.Summary,
		AuthorID: r.AuthorID,
	}
	if r.PublicationDate != nil {
		b.PublicationDate = *r.PublicationDate
	}
	return b
}

// BookResponse - {id, title, summary, publication_date, author_id}
type BookResponse struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Summary         *string     `json:"summary"`
	PublicationDate shared.Date `json:"publication_date"`
	AuthorID        int64       `json:"author_id"`
}

// BookDetailRes - GET /books/:id/ with the owning author embedded
type BookDetailRes struct {
	BookResponse
	Author author.AuthorResponse `json:"author"`
}

func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Summary:         b.Summary,
		PublicationDate: b.PublicationDate,
		AuthorID:        b.AuthorID,
	}
}

// ToDetailResponse embeds a resolved author.
func (b Book) ToDetailResponse(a author.Author) BookDetailRes {
	return BookDetailRes{
		BookResponse: b.ToResponse(),
		Author:       a.ToResponse(),
	}
}

// ToResponses always returns a non-nil slice so it encodes as [].
func ToResponses(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, b.ToResponse())
	}
	return out
}
