package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"gridgate/internal/modules/grid/application/port"
	"gridgate/internal/modules/grid/domain"
	"gridgate/internal/shared/normalization"
)

// UniversalAdapter normalizes any REST API (Wix Velo sites included) into the
// grid schema using the tenant's field mapping: explicit dot-paths when
// configured, ranked alias guessing otherwise. One GET returns the whole
// payload; units and bookings are located inside it by path.
type UniversalAdapter struct {
	fetcher port.JSONFetcher
}

func NewUniversalAdapter(fetcher port.JSONFetcher) *UniversalAdapter {
	return &UniversalAdapter{fetcher: fetcher}
}

func (a *UniversalAdapter) FetchAvailability(ctx context.Context, start, end string, cfg domain.TenantConfig) (*domain.GridResponse, error) {
	mapping := domain.NewFieldMapping(cfg.Settings)
	if mapping.Source == "" {
		return nil, fmt.Errorf("%w: adapter requires 'source' setting", domain.ErrIntegration)
	}

	endpoint := mapping.Source
	if normalization.NormalizeProvider(cfg.Provider) == "wix" {
		// Wix Velo exposes HTTP functions under /_functions/<name>.
		endpoint = strings.TrimRight(mapping.Source, "/") + "/_functions/" + mapping.WixFn
	}

	payload, err := a.fetcher.GetJSON(ctx, endpoint, a.queryParams(start, end, mapping), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", domain.ErrIntegration, endpoint, err)
	}

	dates, err := domain.DateRange(start, end)
	if err != nil {
		return nil, err
	}

	root := normalization.AsMap(payload)
	rawUnits := domain.Resolve(root, mapping.UnitsPath)
	units := normalization.AsInterfaceSlice(rawUnits)
	if rawUnits != nil && units == nil {
		// A configured path landing on a non-sequence is a wiring error the
		// tenant must fix, never an empty grid.
		return nil, fmt.Errorf("%w: units not found at path %q, verify your mapping", domain.ErrMapping, mapping.UnitsPath)
	}
	if rawUnits == nil {
		// Secondary default: the payload itself may be the units list.
		units = normalization.AsInterfaceSlice(payload)
		if units == nil {
			units = []any{}
		}
	}

	globalBookings := normalization.AsInterfaceSlice(domain.Resolve(root, mapping.BookingsPath))

	items := make([]domain.GridItem, 0, len(units))
	for _, raw := range units {
		unit := normalization.AsMap(raw)

		name := normalization.AsString(domain.ResolveField(unit, mapping.UnitName, domain.Aliases["name"]))
		if name == "" {
			name = "Unnamed"
		}

		item := domain.GridItem{
			ID:       normalization.AsScalarString(domain.ResolveField(unit, mapping.UnitID, domain.Aliases["id"])),
			Name:     name,
			Image:    normalization.AsString(domain.ResolveField(unit, mapping.UnitImage, domain.Aliases["image"])),
			URL:      normalization.AsString(domain.ResolveField(unit, mapping.UnitURL, domain.Aliases["url"])),
			Metadata: unit,
		}

		basePrice := normalization.AsFloat64(domain.ResolveField(unit, mapping.UnitPrice, domain.Aliases["price"]))
		item.Availability = domain.BaselineAvailability(dates, basePrice)

		intervals := a.collectIntervals(unit, item.ID, globalBookings, mapping)
		domain.ApplyIntervals(item.Availability, dates, intervals, mapping.BookedStatus)

		items = append(items, item)
	}

	return &domain.GridResponse{Version: domain.SchemaVersion, Dates: dates, Items: items}, nil
}

// queryParams forwards the window plus every scalar tenant setting, so
// upstream endpoints can read their own parameters back.
func (a *UniversalAdapter) queryParams(start, end string, mapping domain.FieldMapping) map[string]string {
	params := make(map[string]string, len(mapping.Extra)+2)
	for key, value := range mapping.Extra {
		if text := normalization.AsScalarString(value); text != "" {
			params[key] = text
		}
	}
	// The requested window always wins over same-named settings.
	params["start"] = start
	params["end"] = end
	return params
}

// collectIntervals prefers a bookings sub-list nested on the unit itself and
// falls back to filtering the payload-level list by unit id. Bookings whose
// unit id matches no item are simply never collected.
func (a *UniversalAdapter) collectIntervals(unit map[string]any, itemID string, globalBookings []any, mapping domain.FieldMapping) []domain.BookingInterval {
	nested := normalization.AsInterfaceSlice(domain.Resolve(unit, mapping.BookingsPath))
	if nested == nil {
		nested = normalization.AsInterfaceSlice(domain.Resolve(unit, "bookings"))
	}

	records := nested
	if records == nil {
		for _, raw := range globalBookings {
			booking := normalization.AsMap(raw)
			if booking == nil {
				continue
			}
			unitID := normalization.AsScalarString(domain.ResolveField(booking, mapping.BookingUnitID, domain.Aliases["unitId"]))
			if unitID == itemID {
				records = append(records, raw)
			}
		}
	}

	intervals := make([]domain.BookingInterval, 0, len(records))
	for _, raw := range records {
		booking := normalization.AsMap(raw)
		if booking == nil {
			continue
		}

		interval := domain.BookingInterval{
			UnitID: itemID,
			Status: statusToken(domain.ResolveField(booking, mapping.BookingStatus, domain.Aliases["status"])),
		}
		if starts, ok := domain.ParseTimestamp(normalization.AsString(domain.ResolveField(booking, mapping.BookingStart, domain.Aliases["startDate"]))); ok {
			interval.StartsAt = starts
		}
		if ends, ok := domain.ParseTimestamp(normalization.AsString(domain.ResolveField(booking, mapping.BookingEnd, domain.Aliases["endDate"]))); ok {
			interval.EndsAt = ends
		}
		intervals = append(intervals, interval)
	}
	return intervals
}

// statusToken coerces a resolved status value into the token ApplyIntervals
// compares. Falsy values (absent, null, false, 0, empty string) count as no
// status at all; everything else is stringified, so a boolean flag like
// confirmed=true becomes "true" and only matches a tenant who configured that
// token.
func statusToken(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case bool:
		if !typed {
			return ""
		}
	case float64:
		if typed == 0 {
			return ""
		}
	}
	return normalization.AsScalarString(value)
}
