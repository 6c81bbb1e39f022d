package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"custom limit", 2, 25, 25, 25},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -5, 10, 0, 10},
		{"zero limit clamps to default", 1, 0, 0, DefaultLimit},
		{"oversized limit clamps to default", 1, MaxLimit + 1, 0, DefaultLimit},
		{"max limit allowed", 2, MaxLimit, uint64(MaxLimit), MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int64
		page         int
		limit        int
		wantPages    int
	}{
		{"exact fit", 20, 1, 10, 2},
		{"partial last page", 21, 1, 10, 3},
		{"single record", 1, 1, 10, 1},
		{"empty result has zero pages", 0, 1, 10, 0},
		{"limit larger than total", 5, 1, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalRecords, tt.page, tt.limit)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.totalRecords, info.TotalRecords)
			assert.Equal(t, tt.page, info.CurrentPage)
			assert.Equal(t, tt.limit, info.Limit)
		})
	}
}

func TestNewPaginationInfo_CeilingProperty(t *testing.T) {
	// totalPages is always the smallest page count that covers totalRecords.
	for total := int64(0); total <= 50; total++ {
		info := NewPaginationInfo(total, 1, 7)
		covered := int64(info.TotalPages) * 7
		assert.GreaterOrEqual(t, covered, total)
		if total > 0 {
			assert.Less(t, covered-total, int64(7))
		}
	}
}
