package helpers

import "time"

// ParseDuration parses a duration string, falling back to a default value
// when the string is empty or malformed.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// TruncateToDate strips the time-of-day so attendance records bucket on the
// UTC calendar date. The input is converted to UTC first, so an evening
// timestamp in a western zone buckets under the following UTC day.
func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
