package shared

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const DefaultPageLimit = 10

// PaginationParams are the caller-supplied limit/offset query params.
// No upper bound is enforced on limit.
type PaginationParams struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// Validate rejects negative values only.
func (p PaginationParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Min(0)),
		validation.Field(&p.Offset, validation.Min(0)),
	)
}

// Normalize applies the default page size when limit is unset.
func (p *PaginationParams) Normalize() {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
}
