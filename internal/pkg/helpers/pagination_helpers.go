package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/longvh/admissions/internal/app/models/dto"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // Pages are 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on a 1-based page number. Out-of-range input is clamped to the defaults.
func CalculateOffsetLimit(page, limit int) (offset uint64, clamped int) {
	if limit <= 0 || limit > MaxLimit {
		clamped = DefaultLimit
	} else {
		clamped = limit
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * clamped)
	return offset, clamped
}

// NewPaginationInfo creates the standard pagination metadata block.
// totalPages is ceil(totalRecords/limit); an empty result set yields zero
// pages, not an error.
func NewPaginationInfo(totalRecords int64, page, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalRecords > 0 {
		totalPages = int(math.Ceil(float64(totalRecords) / float64(limit)))
	}

	return dto.PaginationInfo{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		Limit:        limit,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", strconv.Itoa(DefaultPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return page, limit
}
