package author

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrAuthorNotFound  = errors.New("author was not found")
	ErrAuthorNameTaken = errors.New("author with that name already exists")
)

// GetHTTPStatusCode maps a domain error to its HTTP status.
func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorNameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
