package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/auth"
	"bookstore-catalog/internal/domains/user"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/jwt"
)

type fakeAuthService struct {
	RegisterFunc func(ctx context.Context, req *auth.RegisterRequest) (*user.User, error)
	LoginFunc    func(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	LogoutFunc   func(ctx context.Context, userID uuid.UUID) error
}

func (f *fakeAuthService) Register(ctx context.Context, req *auth.RegisterRequest) (*user.User, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if f.LoginFunc == nil {
		return nil, errors.New("not used")
	}
	return f.LoginFunc(ctx, req)
}
func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if f.RefreshFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RefreshFunc(ctx, refreshToken)
}
func (f *fakeAuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if f.LogoutFunc == nil {
		return errors.New("not used")
	}
	return f.LogoutFunc(ctx, userID)
}

func setupRouter(t *testing.T, svc auth.Service) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	h := NewAuthHandler(svc)

	r := gin.New()
	g := r.Group("/api/v1/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
		g.POST("/refresh", h.Refresh)
		g.POST("/logout", middleware.Auth(manager), h.Logout)
	}

	return r, manager
}

func doReq(t *testing.T, r *gin.Engine, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_Returns201WithoutSecrets(t *testing.T) {
	svc := &fakeAuthService{
		RegisterFunc: func(_ context.Context, req *auth.RegisterRequest) (*user.User, error) {
			return &user.User{
				ID:       uuid.New(),
				Email:    req.Email,
				Password: "$2a$10$should-never-leak",
			}, nil
		},
	}
	r, _ := setupRouter(t, svc)

	w := doReq(t, r, "/api/v1/auth/register", "", gin.H{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"phone":     "+14155550101",
		"password":  "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "should-never-leak")
}

func TestRegister_ConflictIs409(t *testing.T) {
	svc := &fakeAuthService{
		RegisterFunc: func(context.Context, *auth.RegisterRequest) (*user.User, error) {
			return nil, user.ErrUserAlreadyExists
		},
	}
	r, _ := setupRouter(t, svc)

	w := doReq(t, r, "/api/v1/auth/register", "", gin.H{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"phone":     "+14155550101",
		"password":  "correct horse battery",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidEmailIs400(t *testing.T) {
	svc := &fakeAuthService{
		RegisterFunc: func(_ context.Context, req *auth.RegisterRequest) (*user.User, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			t.Fatal("validation should have failed")
			return nil, nil
		},
	}
	r, _ := setupRouter(t, svc)

	w := doReq(t, r, "/api/v1/auth/register", "", gin.H{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "not-an-email",
		"phone":     "+14155550101",
		"password":  "correct horse battery",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	svc := &fakeAuthService{
		LoginFunc: func(context.Context, *auth.LoginRequest) (*auth.LoginResponse, error) {
			return nil, auth.ErrInvalidCredentials
		},
	}
	r, _ := setupRouter(t, svc)

	w := doReq(t, r, "/api/v1/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "nope nope nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ReturnsTokenPair(t *testing.T) {
	svc := &fakeAuthService{
		LoginFunc: func(context.Context, *auth.LoginRequest) (*auth.LoginResponse, error) {
			return &auth.LoginResponse{
				TokenPair: auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
				User:      &user.User{ID: uuid.New(), Email: "ada@example.com"},
			}, nil
		},
	}
	r, _ := setupRouter(t, svc)

	w := doReq(t, r, "/api/v1/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    auth.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "acc", resp.Data.AccessToken)
	assert.Equal(t, "ref", resp.Data.RefreshToken)
	require.NotNil(t, resp.Data.User)
}

func TestRefresh_RevokedTokenIs403(t *testing.T) {
	svc := &fakeAuthService{
		RefreshFunc: func(context.Context, string) (*auth.TokenPair, error) {
			return nil, user.ErrRefreshTokenMismatch
		},
	}
	r, _ := setupRouter(t, svc)

	w := doReq(t, r, "/api/v1/auth/refresh", "", gin.H{"refreshToken": "revoked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogout_RequiresAuth(t *testing.T) {
	r, _ := setupRouter(t, &fakeAuthService{})

	w := doReq(t, r, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClearsTokenForAuthenticatedUser(t *testing.T) {
	userID := uuid.New()
	svc := &fakeAuthService{
		LogoutFunc: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, userID, id)
			return nil
		},
	}
	r, manager := setupRouter(t, svc)

	token, err := manager.GenerateAccessToken(userID.String())
	require.NoError(t, err)

	w := doReq(t, r, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
