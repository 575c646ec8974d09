package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity. Password and HashedRefreshToken never
// serialize.
type User struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	FirstName          string     `json:"firstName" db:"first_name"`
	LastName           string     `json:"lastName" db:"last_name"`
	Email              string     `json:"email" db:"email"`
	Phone              string     `json:"phone" db:"phone"`
	Address            *string    `json:"address,omitempty" db:"address"`
	Password           string     `json:"-" db:"password"`
	HashedRefreshToken *string    `json:"-" db:"hashed_refresh_token"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt          *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedBy          *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
}
