package domain

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// ParseDate accepts a plain calendar date or an RFC3339 timestamp and truncates
// it to day granularity in UTC. Time-of-day and offset are discarded.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		year, month, day := parsed.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// DateRange walks day by day from start to end inclusive and returns the
// YYYY-MM-DD sequence. A start after end yields an empty range, not an error,
// so callers can render an empty grid.
func DateRange(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0)
	for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
		dates = append(dates, current.Format(time.DateOnly))
	}
	return dates, nil
}
