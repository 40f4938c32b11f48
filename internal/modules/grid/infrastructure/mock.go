package infrastructure

import (
	"context"
	"time"

	"gridgate/internal/modules/grid/domain"
)

// MockAdapter returns a deterministic synthetic grid for demo tenants and
// frontend development. No upstream is contacted.
type MockAdapter struct{}

func NewMockAdapter() *MockAdapter {
	return &MockAdapter{}
}

func (a *MockAdapter) FetchAvailability(ctx context.Context, start, end string, cfg domain.TenantConfig) (*domain.GridResponse, error) {
	dates, err := domain.DateRange(start, end)
	if err != nil {
		return nil, err
	}

	items := []domain.GridItem{
		{
			ID:           "item-1",
			Name:         "Luxury Villa",
			Image:        "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?auto=format&fit=crop&w=800",
			URL:          "/details/item-1",
			Availability: mockAvailability(dates, 250),
		},
		{
			ID:           "item-2",
			Name:         "Mountain Cabin",
			Image:        "https://images.unsplash.com/photo-1464146072230-91cabc968266?auto=format&fit=crop&w=800",
			URL:          "/details/item-2",
			Availability: mockAvailability(dates, 150),
		},
		{
			ID:           "item-3",
			Name:         "Beachfront Studio",
			Image:        "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&w=800",
			URL:          "/details/item-3",
			Availability: mockAvailability(dates, 120),
		},
	}

	return &domain.GridResponse{
		Version: domain.SchemaVersion,
		Dates:   dates,
		Items:   items,
		Metadata: &domain.GridMetadata{
			Currency: "USD",
			Timezone: "UTC",
		},
	}, nil
}

// mockAvailability scatters stable statuses over the range, seeded by day of
// month and base price so repeated requests render identically.
func mockAvailability(dates []string, basePrice int) map[string]domain.DayAvailability {
	availability := make(map[string]domain.DayAvailability, len(dates))
	for _, date := range dates {
		parsed, err := time.Parse(time.DateOnly, date)
		if err != nil {
			continue
		}
		dayNum := parsed.Day()

		status := domain.StatusAvailable
		switch (dayNum + basePrice) % 31 {
		case 5, 12, 25:
			status = domain.StatusBooked
		case 18:
			status = domain.StatusUnavailable
		}

		price := float64(basePrice)
		if dayNum%7 == 0 || dayNum%7 == 6 {
			// Weekend-ish premium.
			price += 50
		}

		remaining := 0
		if status == domain.StatusAvailable {
			remaining = 5
		}

		availability[date] = domain.DayAvailability{
			Status:    status,
			Price:     &price,
			Remaining: &remaining,
		}
	}
	return availability
}
