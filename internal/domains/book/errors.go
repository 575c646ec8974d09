package book

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrBookNotFound   = errors.New("book was not found")
	ErrAuthorNotFound = errors.New("referenced author was not found")
	ErrGenreNotFound  = errors.New("referenced genre was not found")
	ErrBookConflict   = errors.New("book violates a uniqueness constraint")
)

func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBookConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
