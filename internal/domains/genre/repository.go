package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for genres.
type Repository interface {
	FindAll(ctx context.Context, limit, offset int) ([]Genre, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, g *Genre) (*Genre, error)
	Update(ctx context.Context, g *Genre) (*Genre, error)

	// SoftDeleteCascade soft-deletes the genre and all its live books
	// atomically.
	SoftDeleteCascade(ctx context.Context, id uuid.UUID) error
}
