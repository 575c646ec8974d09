package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookstore-catalog/internal/domains/user"
)

const refreshTokenBcryptCost = 10

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	newUser := &user.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Password:  input.PasswordHash,
	}

	return s.repo.Create(ctx, newUser)
}

func (s *userService) FindOneByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) FindOneByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	return s.repo.Update(ctx, existing)
}

func (s *userService) SetActiveRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	hashed, err := hashRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("hash refresh token: %w", err)
	}

	return s.repo.UpdateRefreshToken(ctx, userID, &hashed)
}

func (s *userService) VerifyRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) (*user.User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.HashedRefreshToken == nil {
		return nil, user.ErrRefreshTokenMismatch
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(*u.HashedRefreshToken),
		[]byte(digestRefreshToken(refreshToken)),
	)
	if err != nil {
		return nil, user.ErrRefreshTokenMismatch
	}

	return u, nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID uuid.UUID) error {
	return s.repo.UpdateRefreshToken(ctx, userID, nil)
}

func (s *userService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// digestRefreshToken pre-hashes the JWT with sha256 so the value fed to
// bcrypt stays under its 72-byte input limit.
func digestRefreshToken(refreshToken string) string {
	sum := sha256.Sum256([]byte(refreshToken))
	return hex.EncodeToString(sum[:])
}

func hashRefreshToken(refreshToken string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(digestRefreshToken(refreshToken)), refreshTokenBcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
