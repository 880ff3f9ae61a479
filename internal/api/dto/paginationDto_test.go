package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginated(t *testing.T) {
	page := NewPaginated([]string{"a", "b"}, 42, 2, 20)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestNewPaginated_ExactFit(t *testing.T) {
	page := NewPaginated(nil, 40, 1, 20)
	assert.Equal(t, 2, page.TotalPages)
}

func TestNewPaginated_Empty(t *testing.T) {
	page := NewPaginated(nil, 0, 1, 20)
	assert.Equal(t, 0, page.TotalPages)
}
