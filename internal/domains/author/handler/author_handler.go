package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	created, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.ErrorResponse(c, author.GetHTTPStatusCode(err), "AUTHOR_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List - GET /v1/authors?limit&offset
func (h *AuthorHandler) List(c *gin.Context) {
	var params shared.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.ErrorResponse(c, author.GetHTTPStatusCode(err), "AUTHOR_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID - GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.GetHTTPStatusCode(err), "AUTHOR_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Update - PUT /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, author.GetHTTPStatusCode(err), "AUTHOR_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, author.GetHTTPStatusCode(err), "AUTHOR_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
