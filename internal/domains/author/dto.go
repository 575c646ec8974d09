package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name      string    `json:"name" binding:"required"`
	Biography string    `json:"biography"`
	BirthDate time.Time `json:"birthDate"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// All fields optional; only supplied fields are merged over the record.
type UpdateAuthorRequest struct {
	Name      *string    `json:"name,omitempty"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
	)
}

// ApplyTo merges the supplied fields over an existing author.
func (r *UpdateAuthorRequest) ApplyTo(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Biography != nil {
		a.Biography = *r.Biography
	}
	if r.BirthDate != nil {
		a.BirthDate = *r.BirthDate
	}
}

// ListResponse is the paginated list envelope: total matching count plus
// one page of items.
type ListResponse struct {
	Count int64    `json:"count"`
	Items []Author `json:"items"`
}
