package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for users.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)

	// UpdateRefreshToken stores the hashed token; nil clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, hashedToken *string) error

	SoftDelete(ctx context.Context, id uuid.UUID) error
}
