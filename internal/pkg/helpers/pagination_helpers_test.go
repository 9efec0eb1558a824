package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Run("should compute the offset from a 1-based page", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(3, 20)
		assert.Equal(t, uint64(40), offset)
		assert.Equal(t, 20, limit)
	})

	t.Run("should fall back to defaults for out-of-range input", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(0, 0)
		assert.Equal(t, uint64(0), offset)
		assert.Equal(t, DefaultPageSize, limit)

		_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
		assert.Equal(t, DefaultPageSize, limit)
	})
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("should round total pages up", func(t *testing.T) {
		info := NewPaginationInfo(25, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, int64(25), info.TotalItems)
	})

	t.Run("should clamp the current page to the last page", func(t *testing.T) {
		info := NewPaginationInfo(25, 9, 10)
		assert.Equal(t, 3, info.CurrentPage)
	})

	t.Run("should report one page for an empty result", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
	})
}
