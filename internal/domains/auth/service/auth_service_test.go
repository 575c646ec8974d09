package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookstore-catalog/internal/domains/auth"
	"bookstore-catalog/internal/domains/user"
	"bookstore-catalog/pkg/jwt"
)

type fakeUserService struct {
	CreateFunc                func(ctx context.Context, input user.CreateUserInput) (*user.User, error)
	FindOneByEmailFunc        func(ctx context.Context, email string) (*user.User, error)
	FindOneByIDFunc           func(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfileFunc         func(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error)
	SetActiveRefreshTokenFunc func(ctx context.Context, userID uuid.UUID, refreshToken string) error
	VerifyRefreshTokenFunc    func(ctx context.Context, userID uuid.UUID, refreshToken string) (*user.User, error)
	ClearRefreshTokenFunc     func(ctx context.Context, userID uuid.UUID) error
	SoftDeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeUserService) Create(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, input)
}
func (f *fakeUserService) FindOneByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FindOneByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindOneByEmailFunc(ctx, email)
}
func (f *fakeUserService) FindOneByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if f.FindOneByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindOneByIDFunc(ctx, id)
}
func (f *fakeUserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateProfileFunc(ctx, id, req)
}
func (f *fakeUserService) SetActiveRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if f.SetActiveRefreshTokenFunc == nil {
		return errors.New("not used")
	}
	return f.SetActiveRefreshTokenFunc(ctx, userID, refreshToken)
}
func (f *fakeUserService) VerifyRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) (*user.User, error) {
	if f.VerifyRefreshTokenFunc == nil {
		return nil, errors.New("not used")
	}
	return f.VerifyRefreshTokenFunc(ctx, userID, refreshToken)
}
func (f *fakeUserService) ClearRefreshToken(ctx context.Context, userID uuid.UUID) error {
	if f.ClearRefreshTokenFunc == nil {
		return errors.New("not used")
	}
	return f.ClearRefreshTokenFunc(ctx, userID)
}
func (f *fakeUserService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.SoftDeleteFunc == nil {
		return errors.New("not used")
	}
	return f.SoftDeleteFunc(ctx, id)
}

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_HashesPassword(t *testing.T) {
	var stored user.CreateUserInput
	users := &fakeUserService{
		CreateFunc: func(_ context.Context, input user.CreateUserInput) (*user.User, error) {
			stored = input
			return &user.User{ID: uuid.New(), Email: input.Email}, nil
		},
	}
	svc := NewAuthService(users, testManager())

	created, err := svc.Register(context.Background(), &auth.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+14155550101",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.Email)

	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse battery")))
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserService{}, testManager())

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+14155550101",
		Password:  "short",
	})
	assert.Error(t, err)
}

func TestLogin_IssuesTokensAndStoresRefreshHash(t *testing.T) {
	userID := uuid.New()
	password := "correct horse battery"

	var storedRefresh string
	users := &fakeUserService{
		FindOneByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
			return &user.User{ID: userID, Email: email, Password: hashPassword(t, password)}, nil
		},
		SetActiveRefreshTokenFunc: func(_ context.Context, id uuid.UUID, refreshToken string) error {
			assert.Equal(t, userID, id)
			storedRefresh = refreshToken
			return nil
		},
	}
	svc := NewAuthService(users, testManager())

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ada@example.com",
		Password: password,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, resp.RefreshToken, storedRefresh)
	require.NotNil(t, resp.User)
	assert.Equal(t, userID, resp.User.ID)

	claims, err := testManager().ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &fakeUserService{
		FindOneByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Email: email, Password: hashPassword(t, "the right one")}, nil
		},
	}
	svc := NewAuthService(users, testManager())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "the wrong one",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	users := &fakeUserService{
		FindOneByEmailFunc: func(context.Context, string) (*user.User, error) {
			return nil, user.ErrUserNotFound
		},
	}
	svc := NewAuthService(users, testManager())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever else",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesPair(t *testing.T) {
	userID := uuid.New()
	manager := testManager()

	original, err := manager.GenerateRefreshToken(userID.String())
	require.NoError(t, err)

	var latestStored string
	users := &fakeUserService{
		VerifyRefreshTokenFunc: func(_ context.Context, id uuid.UUID, token string) (*user.User, error) {
			assert.Equal(t, userID, id)
			assert.Equal(t, original, token)
			return &user.User{ID: userID}, nil
		},
		SetActiveRefreshTokenFunc: func(_ context.Context, _ uuid.UUID, token string) error {
			latestStored = token
			return nil
		},
	}
	svc := NewAuthService(users, manager)

	pair, err := svc.Refresh(context.Background(), original)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, pair.RefreshToken, latestStored)
}

func TestRefresh_GarbageTokenRejected(t *testing.T) {
	svc := NewAuthService(&fakeUserService{}, testManager())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	manager := testManager()
	access, err := manager.GenerateAccessToken(uuid.NewString())
	require.NoError(t, err)

	svc := NewAuthService(&fakeUserService{}, manager)

	// An access token is well signed but the wrong type.
	_, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefresh_RevokedTokenRejected(t *testing.T) {
	userID := uuid.New()
	manager := testManager()

	token, err := manager.GenerateRefreshToken(userID.String())
	require.NoError(t, err)

	users := &fakeUserService{
		VerifyRefreshTokenFunc: func(context.Context, uuid.UUID, string) (*user.User, error) {
			return nil, user.ErrRefreshTokenMismatch
		},
	}
	svc := NewAuthService(users, manager)

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, user.ErrRefreshTokenMismatch)
}

func TestLogout_ClearsStoredToken(t *testing.T) {
	userID := uuid.New()
	cleared := false
	users := &fakeUserService{
		ClearRefreshTokenFunc: func(_ context.Context, id uuid.UUID) error {
			cleared = true
			assert.Equal(t, userID, id)
			return nil
		},
	}
	svc := NewAuthService(users, testManager())

	require.NoError(t, svc.Logout(context.Background(), userID))
	assert.True(t, cleared)
}
