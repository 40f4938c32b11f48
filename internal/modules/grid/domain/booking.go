package domain

import (
	"strings"
	"time"
)

// DefaultBookedStatus is the provider status token treated as a hard booking
// when a tenant does not configure another one.
const DefaultBookedStatus = "confirmed"

// BookingInterval is the per-request intermediate derived from a provider's
// booking or planning record. EndsAt is exclusive; a zero EndsAt means the
// provider sent no end and the interval covers a single day. A zero StartsAt
// makes the interval unprojectable and it is skipped.
type BookingInterval struct {
	UnitID   string
	StartsAt time.Time
	EndsAt   time.Time
	Status   string
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses the timestamp formats seen across provider payloads.
// Unlike ParseDate it keeps the time-of-day, which the projection compares
// against midnight of each grid day.
func ParseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// BaselineAvailability marks every date of the range available at the item's
// base price. The baseline is established before any interval is applied.
func BaselineAvailability(dates []string, basePrice float64) map[string]DayAvailability {
	availability := make(map[string]DayAvailability, len(dates))
	for _, date := range dates {
		price := basePrice
		availability[date] = DayAvailability{Status: StatusAvailable, Price: &price}
	}
	return availability
}

// ApplyIntervals overlays booking intervals onto a baseline availability map.
// An interval is applied only when its status is absent or equals the booked
// token case-insensitively; other statuses are deliberately not projected.
// Each applied interval marks days in [StartsAt, EndsAt) booked. Booked is
// monotonic: a later non-matching interval never reverts an earlier mark.
func ApplyIntervals(availability map[string]DayAvailability, dates []string, intervals []BookingInterval, bookedStatus string) {
	if bookedStatus == "" {
		bookedStatus = DefaultBookedStatus
	}

	days := make([]time.Time, len(dates))
	for i, date := range dates {
		parsed, err := ParseDate(date)
		if err != nil {
			continue
		}
		days[i] = parsed
	}

	for _, interval := range intervals {
		if interval.StartsAt.IsZero() {
			continue
		}
		if interval.Status != "" && !strings.EqualFold(interval.Status, bookedStatus) {
			continue
		}
		end := interval.EndsAt
		if end.IsZero() {
			// No end reported: single-day booking.
			end = interval.StartsAt.Add(24 * time.Hour)
		}
		for i, date := range dates {
			day := days[i]
			if day.IsZero() || day.Before(interval.StartsAt) || !day.Before(end) {
				continue
			}
			entry, ok := availability[date]
			if !ok {
				continue
			}
			entry.Status = StatusBooked
			availability[date] = entry
		}
	}
}
