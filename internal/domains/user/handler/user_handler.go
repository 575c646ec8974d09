package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/user"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// GetMe - GET /v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	u, err := h.service.FindOneByID(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// UpdateMe - PUT /v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteMe - DELETE /v1/users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), userID); err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
