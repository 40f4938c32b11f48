package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"gridgate/internal/modules/grid/application/port"
	"gridgate/internal/modules/grid/domain"
	"gridgate/internal/shared/normalization"
)

// BooqableAdapter normalizes the Booqable API v4. Responses follow JSONAPI:
// resources live under data, and each resource wraps its fields in an
// attributes object (legacy flat resources appear too, so attributes falls
// back to the resource itself).
type BooqableAdapter struct {
	fetcher port.JSONFetcher
}

func NewBooqableAdapter(fetcher port.JSONFetcher) *BooqableAdapter {
	return &BooqableAdapter{fetcher: fetcher}
}

func (a *BooqableAdapter) FetchAvailability(ctx context.Context, start, end string, cfg domain.TenantConfig) (*domain.GridResponse, error) {
	mapping := domain.NewFieldMapping(cfg.Settings)
	if mapping.Source == "" {
		return nil, fmt.Errorf("%w: booqable requires 'source' setting (e.g. https://yourcompany.booqable.com)", domain.ErrIntegration)
	}
	if mapping.APIKey == "" {
		return nil, fmt.Errorf("%w: booqable requires 'apiKey' setting", domain.ErrIntegration)
	}

	baseURL := strings.TrimRight(mapping.Source, "/")
	headers := map[string]string{"Authorization": "Bearer " + mapping.APIKey}

	bundlesPayload, err := a.fetcher.GetJSON(ctx, baseURL+"/api/4/bundles", map[string]string{
		"page[size]": "100",
	}, headers)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch bundles: %w", domain.ErrIntegration, err)
	}

	// Fetch every planning overlapping the window and associate in memory;
	// stricter provider-side filters like item_type tend to 400.
	planningsPayload, err := a.fetcher.GetJSON(ctx, baseURL+"/api/4/plannings", map[string]string{
		"filter[starts_at][lte]": end + "T23:59:59Z",
		"filter[stops_at][gte]":  start + "T00:00:00Z",
		"page[size]":             "1000",
	}, headers)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch plannings: %w", domain.ErrIntegration, err)
	}

	dates, err := domain.DateRange(start, end)
	if err != nil {
		return nil, err
	}

	intervalsByUnit := groupPlannings(planningsList(planningsPayload))

	items := make([]domain.GridItem, 0)
	for _, raw := range resourceList(bundlesPayload) {
		resource := normalization.AsMap(raw)
		if resource == nil {
			continue
		}
		attrs := attributesOf(resource)
		if !bundleVisible(attrs) {
			continue
		}

		bundleID := normalization.AsScalarString(resource["id"])

		name := normalization.AsString(attrs["name"])
		if name == "" {
			name = "Unnamed Bundle"
		}

		item := domain.GridItem{
			ID:           bundleID,
			Name:         name,
			Image:        normalization.AsString(attrs["photo_url"]),
			Availability: domain.BaselineAvailability(dates, bundlePrice(attrs)),
			Metadata:     bundleMetadata(attrs, bundleID),
		}
		// The bundle slug yields the correct storefront URL.
		if slug := normalization.AsString(attrs["slug"]); slug != "" {
			item.URL = baseURL + "/products/" + slug
		}

		domain.ApplyIntervals(item.Availability, dates, intervalsByUnit[bundleID], "")
		items = append(items, item)
	}

	return &domain.GridResponse{Version: domain.SchemaVersion, Dates: dates, Items: items}, nil
}

// resourceList unwraps the JSONAPI data array.
func resourceList(payload any) []any {
	root := normalization.AsMap(payload)
	if root == nil {
		return nil
	}
	return normalization.AsInterfaceSlice(root["data"])
}

// planningsList tolerates both the JSONAPI shape and a flat plannings key.
func planningsList(payload any) []any {
	root := normalization.AsMap(payload)
	if root == nil {
		return nil
	}
	if list := normalization.AsInterfaceSlice(root["data"]); list != nil {
		return list
	}
	return normalization.AsInterfaceSlice(root["plannings"])
}

// attributesOf resolves resource.attributes ?? resource.
func attributesOf(resource map[string]any) map[string]any {
	if attrs := normalization.AsMap(resource["attributes"]); attrs != nil {
		return attrs
	}
	return resource
}

// bundleVisible excludes bundles hidden from the storefront or archived.
// Absent flags default to visible.
func bundleVisible(attrs map[string]any) bool {
	if flag, ok := attrs["show_in_store"]; ok {
		if value, isBool := flag.(bool); isBool && !value {
			return false
		}
	}
	return !normalization.AsBool(attrs["archived"])
}

// bundlePrice reads the cents-denominated price fields and converts to a
// decimal amount. Missing prices default to 0.
func bundlePrice(attrs map[string]any) float64 {
	for _, key := range []string{"base_price_in_cents", "price_in_cents"} {
		if value, ok := attrs[key]; ok && value != nil {
			return normalization.AsFloat64(value) / 100
		}
	}
	return 0
}

// bundleMetadata passes the source attributes through with the canonical id.
func bundleMetadata(attrs map[string]any, bundleID string) map[string]any {
	metadata := make(map[string]any, len(attrs)+1)
	for key, value := range attrs {
		metadata[key] = value
	}
	metadata["id"] = bundleID
	return metadata
}

// groupPlannings indexes the window's plannings by the bundle they occupy.
// Plannings carry item_id in attributes, with the JSONAPI relationship as a
// fallback.
func groupPlannings(plannings []any) map[string][]domain.BookingInterval {
	grouped := make(map[string][]domain.BookingInterval)
	for _, raw := range plannings {
		planning := normalization.AsMap(raw)
		if planning == nil {
			continue
		}
		attrs := attributesOf(planning)

		unitID := normalization.AsScalarString(attrs["item_id"])
		if unitID == "" {
			unitID = normalization.AsScalarString(domain.Resolve(planning, "relationships.item.data.id"))
		}
		if unitID == "" {
			continue
		}

		interval := domain.BookingInterval{UnitID: unitID}
		if starts, ok := domain.ParseTimestamp(normalization.AsString(attrs["starts_at"])); ok {
			interval.StartsAt = starts
		}
		if stops, ok := domain.ParseTimestamp(normalization.AsString(attrs["stops_at"])); ok {
			interval.EndsAt = stops
		}
		grouped[unitID] = append(grouped[unitID], interval)
	}
	return grouped
}
