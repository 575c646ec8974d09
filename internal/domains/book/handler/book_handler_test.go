package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/book"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/jwt"
)

type fakeBookService struct {
	ListFunc       func(ctx context.Context, params shared.PaginationParams) (*book.ListResponse, error)
	CreateFunc     func(ctx context.Context, req *book.CreateBookRequest, createdBy uuid.UUID) (*book.Book, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*book.Detail, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBookService) List(ctx context.Context, params shared.PaginationParams) (*book.ListResponse, error) {
	if f.ListFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListFunc(ctx, params)
}
func (f *fakeBookService) Create(ctx context.Context, req *book.CreateBookRequest, createdBy uuid.UUID) (*book.Book, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req, createdBy)
}
func (f *fakeBookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Detail, error) {
	if f.GetByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetByIDFunc(ctx, id)
}
func (f *fakeBookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, req)
}
func (f *fakeBookService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.SoftDeleteFunc == nil {
		return errors.New("not used")
	}
	return f.SoftDeleteFunc(ctx, id)
}

func setupRouter(t *testing.T, svc book.Service) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	h := NewBookHandler(svc)

	r := gin.New()
	books := r.Group("/api/v1/books", middleware.Auth(manager))
	{
		books.POST("", h.Create)
		books.GET("", h.List)
		books.GET("/:id", h.GetByID)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}

	return r, manager
}

func doReq(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = *bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func accessToken(t *testing.T, manager *jwt.Manager, userID uuid.UUID) string {
	t.Helper()
	token, err := manager.GenerateAccessToken(userID.String())
	require.NoError(t, err)
	return token
}

func TestBookRoutes_RequireAuth(t *testing.T) {
	r, _ := setupRouter(t, &fakeBookService{})

	w := doReq(t, r, http.MethodGet, "/api/v1/books", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doReq(t, r, http.MethodGet, "/api/v1/books", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookCreate_Returns201AndCreatedBy(t *testing.T) {
	userID := uuid.New()
	authorID := uuid.New()
	genreID := uuid.New()

	svc := &fakeBookService{
		CreateFunc: func(_ context.Context, req *book.CreateBookRequest, createdBy uuid.UUID) (*book.Book, error) {
			assert.Equal(t, userID, createdBy)
			return &book.Book{
				ID:       uuid.New(),
				Title:    req.Title,
				AuthorID: req.AuthorID,
				GenreID:  req.GenreID,
			}, nil
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodPost, "/api/v1/books", accessToken(t, manager, userID), gin.H{
		"title":    "The Left Hand of Darkness",
		"authorId": authorID,
		"genreId":  genreID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestBookCreate_MissingReferenceIs404(t *testing.T) {
	svc := &fakeBookService{
		CreateFunc: func(context.Context, *book.CreateBookRequest, uuid.UUID) (*book.Book, error) {
			return nil, book.ErrGenreNotFound
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodPost, "/api/v1/books", accessToken(t, manager, uuid.New()), gin.H{
		"title":    "X",
		"authorId": uuid.New(),
		"genreId":  uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookCreate_OverlongTitleIs400(t *testing.T) {
	svc := &fakeBookService{
		CreateFunc: func(_ context.Context, req *book.CreateBookRequest, _ uuid.UUID) (*book.Book, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			t.Fatal("validation should have failed")
			return nil, nil
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodPost, "/api/v1/books", accessToken(t, manager, uuid.New()), gin.H{
		"title":    strings.Repeat("x", 501),
		"authorId": uuid.New(),
		"genreId":  uuid.New(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookList_NegativeLimitIs400(t *testing.T) {
	svc := &fakeBookService{
		ListFunc: func(_ context.Context, params shared.PaginationParams) (*book.ListResponse, error) {
			if err := params.Validate(); err != nil {
				return nil, err
			}
			t.Fatal("validation should have failed")
			return nil, nil
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodGet, "/api/v1/books?limit=-1", accessToken(t, manager, uuid.New()), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookGetByID_NotFound(t *testing.T) {
	svc := &fakeBookService{
		GetByIDFunc: func(context.Context, uuid.UUID) (*book.Detail, error) {
			return nil, book.ErrBookNotFound
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodGet, "/api/v1/books/"+uuid.NewString(), accessToken(t, manager, uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
}

func TestBookGetByID_MalformedID(t *testing.T) {
	r, manager := setupRouter(t, &fakeBookService{})

	w := doReq(t, r, http.MethodGet, "/api/v1/books/not-a-uuid", accessToken(t, manager, uuid.New()), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookList_PassesQueryParams(t *testing.T) {
	svc := &fakeBookService{
		ListFunc: func(_ context.Context, params shared.PaginationParams) (*book.ListResponse, error) {
			assert.Equal(t, 5, params.Limit)
			assert.Equal(t, 10, params.Offset)
			return &book.ListResponse{Count: 0, Items: []book.Book{}}, nil
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodGet, "/api/v1/books?limit=5&offset=10", accessToken(t, manager, uuid.New()), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    book.ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(0), resp.Data.Count)
	assert.NotNil(t, resp.Data.Items)
}

func TestBookDelete_OK(t *testing.T) {
	id := uuid.New()
	svc := &fakeBookService{
		SoftDeleteFunc: func(_ context.Context, got uuid.UUID) error {
			assert.Equal(t, id, got)
			return nil
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodDelete, "/api/v1/books/"+id.String(), accessToken(t, manager, uuid.New()), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookUpdate_NotFound(t *testing.T) {
	svc := &fakeBookService{
		UpdateFunc: func(context.Context, uuid.UUID, *book.UpdateBookRequest) (*book.Book, error) {
			return nil, book.ErrBookNotFound
		},
	}
	r, manager := setupRouter(t, svc)

	w := doReq(t, r, http.MethodPut, "/api/v1/books/"+uuid.NewString(), accessToken(t, manager, uuid.New()), gin.H{
		"title": "New title",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
