package genre

import (
	"time"

	"github.com/google/uuid"
)

// Genre is the domain entity. Deleting a genre cascades a soft delete to
// its books; that asymmetry with authors is inherited from the product
// design.
type Genre struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedBy *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
}
