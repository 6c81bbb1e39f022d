package helpers

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/longvh/admissions/internal/pkg/apperrors"
)

// dateLayout is the calendar-day format accepted on date filters.
const dateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDateLowerBound parses a YYYY-MM-DD value into the inclusive start of
// that day (00:00:00 UTC). A malformed value is a validation error naming
// the field; the bound is never silently dropped or widened.
func ParseDateLowerBound(field, value string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, field+" must be a valid date in YYYY-MM-DD format")
	}
	return day, nil
}

// ParseDateUpperBound parses a YYYY-MM-DD value into the inclusive end of
// that day (23:59:59 UTC), matching the day granularity of stored
// timestamps.
func ParseDateUpperBound(field, value string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, field+" must be a valid date in YYYY-MM-DD format")
	}
	return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
}
