package genre

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/shared"
)

// Service defines business logic for the genre domain.
type Service interface {
	List(ctx context.Context, params shared.PaginationParams) (*ListResponse, error)

	// Create fails with ErrGenreNameTaken when a live genre already
	// carries the exact name.
	Create(ctx context.Context, req *GenreRequest, createdBy uuid.UUID) (*Genre, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	Update(ctx context.Context, id uuid.UUID, req *GenreRequest) (*Genre, error)

	// SoftDelete removes the genre and cascades a soft delete to every
	// live book in it, in a single transaction. Book caches are
	// invalidated afterwards.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
