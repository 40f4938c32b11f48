package domain

import (
	"errors"
	"testing"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{
			name:     "single day",
			start:    "2024-01-15",
			end:      "2024-01-15",
			expected: []string{"2024-01-15"},
		},
		{
			name:     "inclusive endpoints",
			start:    "2024-01-30",
			end:      "2024-02-02",
			expected: []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"},
		},
		{
			name:     "leap day crossing",
			start:    "2024-02-28",
			end:      "2024-03-01",
			expected: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:     "start after end yields empty range",
			start:    "2024-03-05",
			end:      "2024-03-01",
			expected: []string{},
		},
		{
			name:     "timestamps truncated to day",
			start:    "2024-01-01T15:30:00Z",
			end:      "2024-01-02T04:00:00Z",
			expected: []string{"2024-01-01", "2024-01-02"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dates, err := DateRange(test.start, test.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(dates) != len(test.expected) {
				t.Fatalf("expected %d dates, got %d (%v)", len(test.expected), len(dates), dates)
			}
			for i := range dates {
				if dates[i] != test.expected[i] {
					t.Fatalf("expected %s at position %d, got %s", test.expected[i], i, dates[i])
				}
			}
		})
	}
}

func TestDateRangeIsStrictlyAscending(t *testing.T) {
	dates, err := DateRange("2024-01-01", "2024-03-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 91 {
		t.Fatalf("expected 91 days, got %d", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if dates[i] <= dates[i-1] {
			t.Fatalf("sequence not ascending at %d: %s then %s", i, dates[i-1], dates[i])
		}
	}
}

func TestDateRangeDeterminism(t *testing.T) {
	first, err := DateRange("2024-06-01", "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DateRange("2024-06-01", "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("results differ at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestDateRangeInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "garbage start", start: "not-a-date", end: "2024-01-02"},
		{name: "garbage end", start: "2024-01-01", end: "eventually"},
		{name: "empty start", start: "", end: "2024-01-02"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DateRange(test.start, test.end)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}
