package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Constants for validation
const (
	MaxNameLength = 255
	MaxBioLength  = 5000
)

// CreateAuthorRequest - POST /authors/
type CreateAuthorRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.RuneLength(0, MaxBioLength),
		),
	)
}

// ToEntity converts CreateAuthorRequest to an Author without an id.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name: r.Name,
		Bio:  r.Bio,
	}
}

// AuthorResponse - {id, name, bio}
type AuthorResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:   a.ID,
		Name: a.Name,
		Bio:  a.Bio,
	}
}

// ToResponses converts a slice, always returning a non-nil slice so it encodes as [].
func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}
	return out
}
