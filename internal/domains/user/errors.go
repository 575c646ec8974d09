package user

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrUserNotFound         = errors.New("user does not exist")
	ErrUserAlreadyExists    = errors.New("user with that email or phone already exists")
	ErrRefreshTokenMismatch = errors.New("refresh token does not match")
)

func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrRefreshTokenMismatch):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
