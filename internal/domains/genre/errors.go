package genre

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrGenreNotFound  = errors.New("genre was not found")
	ErrGenreNameTaken = errors.New("genre with that name already exists")
)

func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGenreNameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
