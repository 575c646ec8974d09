package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the user domain. It is consumed by
// the auth service for the credential/refresh-token lifecycle and by the
// profile endpoints.
type Service interface {
	// Create persists a new user. Email and phone uniqueness violations
	// yield ErrUserAlreadyExists.
	Create(ctx context.Context, input CreateUserInput) (*User, error)

	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindOneByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateProfile merges the supplied fields over the stored record.
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error)

	// SetActiveRefreshToken stores a hash of the token; the raw value is
	// never persisted.
	SetActiveRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error

	// VerifyRefreshToken returns the user when the presented token
	// matches the stored hash, ErrRefreshTokenMismatch otherwise.
	VerifyRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) (*User, error)

	ClearRefreshToken(ctx context.Context, userID uuid.UUID) error

	SoftDelete(ctx context.Context, id uuid.UUID) error
}
