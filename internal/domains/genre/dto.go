package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GenreRequest serves both create and update; name is the only field.
type GenreRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r GenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

type ListResponse struct {
	Count int64   `json:"count"`
	Items []Genre `json:"items"`
}
