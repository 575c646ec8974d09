package author

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/shared"
)

// Service defines business logic for the author domain.
type Service interface {
	// List returns the total count of live authors plus one page.
	List(ctx context.Context, params shared.PaginationParams) (*ListResponse, error)

	// Create inserts a new author. Name must be unique (case-sensitive,
	// among non-deleted rows); violation yields ErrAuthorNameTaken.
	Create(ctx context.Context, req *CreateAuthorRequest, createdBy uuid.UUID) (*Author, error)

	// GetByID returns ErrAuthorNotFound for absent or soft-deleted rows.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// Update merges the supplied fields over the stored record.
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// SoftDelete marks the row deleted. Books by this author are left
	// untouched; see the genre domain for the cascading variant.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
