package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for books.
type Repository interface {
	FindAll(ctx context.Context, limit, offset int) ([]Book, int64, error)

	// FindDetailByID joins the author and genre rows.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*Detail, error)

	Create(ctx context.Context, b *Book) (*Book, error)
	Update(ctx context.Context, b *Book) (*Book, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
