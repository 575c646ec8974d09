package auth

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-catalog/internal/domains/user"
)

var (
	ErrInvalidCredentials  = errors.New("wrong credentials provided")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrRefreshTokenMismatch):
		return http.StatusForbidden
	case errors.Is(err, user.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
