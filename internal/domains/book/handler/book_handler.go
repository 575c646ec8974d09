package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/book"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	created, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List - GET /v1/books?limit&offset
func (h *BookHandler) List(c *gin.Context) {
	var params shared.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	detail, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
