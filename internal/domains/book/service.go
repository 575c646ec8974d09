package book

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/shared"
)

// Service defines business logic for the book domain. List and by-id
// reads go through a cache-aside layer; the store stays authoritative.
type Service interface {
	// List returns the total live count plus one page. The result is
	// cached per (offset, limit) pair.
	List(ctx context.Context, params shared.PaginationParams) (*ListResponse, error)

	// Create validates that both referenced author and genre are live
	// before persisting, invalidates the book caches, and enqueues one
	// new-book notification carrying the title and the creating user.
	// The enqueue is best-effort and never fails the request.
	Create(ctx context.Context, req *CreateBookRequest, createdBy uuid.UUID) (*Book, error)

	// GetByID returns the book with its author and genre resolved.
	// Absence is never cached; a store failure surfaces as
	// ErrBookNotFound rather than an internal error.
	GetByID(ctx context.Context, id uuid.UUID) (*Detail, error)

	// Update merges the supplied fields over the stored record and
	// invalidates the book caches.
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// SoftDelete marks the row deleted and invalidates the book caches.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
