package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/auth"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register - POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, auth.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Login - POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, auth.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Refresh - POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.ErrorResponse(c, auth.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Logout - POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.ErrorResponse(c, auth.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}
