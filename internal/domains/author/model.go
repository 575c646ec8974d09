package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity. DeletedAt non-nil means soft-deleted;
// soft-deleted rows are invisible to every API operation.
type Author struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Biography string     `json:"biography" db:"biography"`
	BirthDate time.Time  `json:"birthDate" db:"birth_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedBy *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
}
