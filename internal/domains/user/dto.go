package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateUserInput carries a registration with the password already
// hashed by the auth service.
type CreateUserInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      *string
	PasswordHash string
}

// UpdateUserRequest - PUT /v1/users/me
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty),
		validation.Field(&r.LastName, validation.NilOrNotEmpty),
		validation.Field(&r.Phone, validation.NilOrNotEmpty, is.E164),
	)
}

// ApplyTo merges the supplied fields over an existing user.
func (r *UpdateUserRequest) ApplyTo(u *User) {
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.Address != nil {
		u.Address = r.Address
	}
}
