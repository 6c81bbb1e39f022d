package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longvh/admissions/internal/pkg/apperrors"
)

func TestParseDateLowerBound(t *testing.T) {
	got, err := ParseDateLowerBound("dateFrom", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateUpperBound(t *testing.T) {
	got, err := ParseDateUpperBound("dateTo", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC), got)
}

func TestParseDateBounds_SameDayRangeCoversWholeDay(t *testing.T) {
	from, err := ParseDateLowerBound("dateFrom", "2026-03-15")
	require.NoError(t, err)
	to, err := ParseDateUpperBound("dateTo", "2026-03-15")
	require.NoError(t, err)

	noon := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	assert.True(t, !noon.Before(from) && !noon.After(to))
}

func TestParseDateBounds_MalformedValueNamesField(t *testing.T) {
	tests := []string{"15/03/2026", "2026-3-15x", "yesterday", "", "2026-13-40"}

	for _, value := range tests {
		_, err := ParseDateLowerBound("dateFrom", value)
		require.Error(t, err, "value %q", value)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "dateFrom", apperrors.FieldOf(err))

		_, err = ParseDateUpperBound("dateTo", value)
		require.Error(t, err, "value %q", value)
		assert.Equal(t, "dateTo", apperrors.FieldOf(err))
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
}
