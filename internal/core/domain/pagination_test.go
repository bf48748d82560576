package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbooks/ledger_core/internal/core/domain"
)

func TestNewPaginationInfo(t *testing.T) {
	p := domain.NewPaginationInfo(2, 10, 35)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 35, p.TotalCount)
	assert.Equal(t, 10, p.Offset())
}

func TestNewPaginationInfoEdges(t *testing.T) {
	first := domain.NewPaginationInfo(1, 10, 35)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := domain.NewPaginationInfo(4, 10, 35)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)

	empty := domain.NewPaginationInfo(1, 10, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)

	clamped := domain.NewPaginationInfo(0, 10, 5)
	assert.Equal(t, 1, clamped.Page)

	unpaged := domain.NewPaginationInfo(3, 0, 5)
	assert.Equal(t, 1, unpaged.Page)
	assert.Equal(t, 5, unpaged.PageSize)
	assert.Equal(t, 1, unpaged.TotalPages)
}
