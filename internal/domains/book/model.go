package book

import (
	"time"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/genre"
)

// Book is the domain entity. Every live book references exactly one
// live author and one live genre at creation time; the references are
// not re-validated on update unless supplied.
type Book struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	PublicationDate time.Time  `json:"publicationDate" db:"publication_date"`
	AuthorID        uuid.UUID  `json:"authorId" db:"author_id"`
	GenreID         uuid.UUID  `json:"genreId" db:"genre_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedBy       *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
}

// Detail is a book with its author and genre resolved, as returned by
// the by-id lookup.
type Detail struct {
	Book
	Author author.Author `json:"author"`
	Genre  genre.Genre   `json:"genre"`
}
