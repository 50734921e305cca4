// Package changes implements the polling contract clients use to ask
// "has anything changed since I last looked?". A client sends the last
// watermark it saw and gets back the current one plus a has_update flag.
package changes

import (
	"strconv"
	"strings"
	"time"

	apperrors "task-manager-backend/internal/errors"
)

// TimestampResult answers a timestamp watermark check
type TimestampResult struct {
	LastUpdate *string `json:"last_update"`
	HasUpdate  bool    `json:"has_update"`
}

// CountResult answers a count watermark check
type CountResult struct {
	Count     int64 `json:"count"`
	HasUpdate bool  `json:"has_update"`
}

const sqlTimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp accepts RFC3339 (with or without fractional seconds) and the
// SQL form "YYYY-MM-DD HH:MM:SS[.ffffff]", which is read as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	// An unescaped '+' in a query string arrives as a space.
	if strings.Contains(s, "T") && strings.Count(s, " ") == 1 {
		if t, err := time.Parse(time.RFC3339Nano, strings.Replace(s, " ", "+", 1)); err == nil {
			return t, nil
		}
	}
	return time.ParseInLocation(sqlTimestampLayout, s, time.UTC)
}

// ParseWatermark parses an optional last_known value. Empty means the client
// has no watermark yet.
func ParseWatermark(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("last_known", "must be an RFC3339 or 'YYYY-MM-DD HH:MM:SS' timestamp")
	}
	return &t, nil
}

// ParseCount parses an optional last_count value
func ParseCount(raw string) (*int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return nil, apperrors.NewValidationError("last_count", "must be a non-negative integer")
	}
	return &n, nil
}

// FormatTimestamp renders a watermark so that echoing it back compares equal
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// CompareTimestamp reports the current watermark and whether it is strictly
// newer than the one the client knows. No known watermark never signals an
// update. A known watermark over a now-empty scope does.
func CompareTimestamp(current, known *time.Time) TimestampResult {
	res := TimestampResult{}
	if current != nil {
		s := FormatTimestamp(*current)
		res.LastUpdate = &s
	}
	res.HasUpdate = known != nil && (current == nil || current.After(*known))
	return res
}

// CompareCount reports the current count and whether it differs from the known one
func CompareCount(current int64, known *int64) CountResult {
	return CountResult{
		Count:     current,
		HasUpdate: known != nil && *known != current,
	}
}

// NoUpdate is the answer for actors a check does not apply to
func NoUpdate() TimestampResult {
	return TimestampResult{}
}
