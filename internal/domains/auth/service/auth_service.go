package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookstore-catalog/internal/domains/auth"
	"bookstore-catalog/internal/domains/user"
	"bookstore-catalog/pkg/jwt"
)

const passwordBcryptCost = 10

type authService struct {
	users      user.Service
	jwtManager *jwt.Manager
}

func NewAuthService(users user.Service, jwtManager *jwt.Manager) auth.Service {
	return &authService{
		users:      users,
		jwtManager: jwtManager,
	}
}

func (s *authService) Register(ctx context.Context, req *auth.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordBcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, user.CreateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: string(passwordHash),
	})
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A missing user and a wrong password both report invalid
	// credentials, so callers cannot probe which emails exist.
	u, err := s.users.FindOneByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{TokenPair: *pair, User: u}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	// The signature alone is not enough: the token must also match the
	// stored hash, so a logout or rotation revokes older tokens.
	u, err := s.users.VerifyRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u.ID)
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.users.ClearRefreshToken(ctx, userID)
}

// issueTokens generates a fresh pair and stores the refresh hash.
func (s *authService) issueTokens(ctx context.Context, userID uuid.UUID) (*auth.TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(userID.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(userID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.users.SetActiveRefreshToken(ctx, userID, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &auth.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
