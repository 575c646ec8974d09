package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// Create - POST /v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	created, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.ErrorResponse(c, genre.GetHTTPStatusCode(err), "GENRE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List - GET /v1/genres?limit&offset
func (h *GenreHandler) List(c *gin.Context) {
	var params shared.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.ErrorResponse(c, genre.GetHTTPStatusCode(err), "GENRE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID - GET /v1/genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, genre.GetHTTPStatusCode(err), "GENRE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, g)
}

// Update - PUT /v1/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, genre.GetHTTPStatusCode(err), "GENRE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, genre.GetHTTPStatusCode(err), "GENRE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
