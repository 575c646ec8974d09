package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors. Every query filters out
// soft-deleted rows.
type Repository interface {
	FindAll(ctx context.Context, limit, offset int) ([]Author, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, a *Author) (*Author, error)
	Update(ctx context.Context, a *Author) (*Author, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
