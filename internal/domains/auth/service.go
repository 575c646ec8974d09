package auth

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/user"
)

// Service is the credential gate for the API. Everything involving raw
// passwords and token issuance lives here; the user domain only ever
// sees hashes.
type Service interface {
	// Register hashes the password and creates the user.
	Register(ctx context.Context, req *RegisterRequest) (*user.User, error)

	// Login verifies the credentials and issues an access/refresh pair.
	// A hash of the refresh token is stored for later verification.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Refresh validates the presented refresh token against both its
	// signature and the stored hash, then rotates the pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout clears the stored refresh-token hash.
	Logout(ctx context.Context, userID uuid.UUID) error
}
