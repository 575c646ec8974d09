package book

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"publicationDate"`
	AuthorID        uuid.UUID `json:"authorId" binding:"required"`
	GenreID         uuid.UUID `json:"genreId" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.AuthorID, validation.By(requiredUUID)),
		validation.Field(&r.GenreID, validation.By(requiredUUID)),
	)
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return fmt.Errorf("is required")
	}
	return nil
}

// UpdateBookRequest - PUT /v1/books/:id
// Only supplied fields are merged; author/genre references are
// re-validated only when supplied.
type UpdateBookRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	PublicationDate *time.Time `json:"publicationDate,omitempty"`
	AuthorID        *uuid.UUID `json:"authorId,omitempty"`
	GenreID         *uuid.UUID `json:"genreId,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 500)),
	)
}

// ApplyTo merges the supplied fields over an existing book.
func (r *UpdateBookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.PublicationDate != nil {
		b.PublicationDate = *r.PublicationDate
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
	if r.GenreID != nil {
		b.GenreID = *r.GenreID
	}
}

type ListResponse struct {
	Count int64  `json:"count"`
	Items []Book `json:"items"`
}
