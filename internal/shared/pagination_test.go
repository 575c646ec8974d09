package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationValidate(t *testing.T) {
	assert.NoError(t, PaginationParams{}.Validate())
	assert.NoError(t, PaginationParams{Limit: 100, Offset: 5000}.Validate())
	assert.Error(t, PaginationParams{Limit: -1}.Validate())
	assert.Error(t, PaginationParams{Offset: -1}.Validate())
}

func TestPaginationNormalize(t *testing.T) {
	p := PaginationParams{}
	p.Normalize()
	assert.Equal(t, DefaultPageLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = PaginationParams{Limit: 25, Offset: 50}
	p.Normalize()
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}
