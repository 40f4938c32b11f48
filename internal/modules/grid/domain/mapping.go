package domain

import "gridgate/internal/shared/normalization"

// TenantConfig is the per-tenant wiring resolved before a request reaches an
// adapter. Settings is consumed verbatim as field-mapping input and stays
// immutable for the duration of one request.
type TenantConfig struct {
	TenantID string         `json:"tenantId"`
	Provider string         `json:"provider"`
	Settings map[string]any `json:"settings"`
}

// FieldMapping is the validated view of a tenant's settings bag: named
// optional fields for everything the adapters understand, plus Extra as an
// open passthrough of the full bag for provider-specific parameters.
type FieldMapping struct {
	Source               string
	APIKey               string
	WixFn                string
	BaseURL              string
	AvailabilityEndpoint string

	UnitsPath    string
	BookingsPath string

	UnitID    string
	UnitName  string
	UnitImage string
	UnitURL   string
	UnitPrice string

	BookingUnitID string
	BookingStart  string
	BookingEnd    string
	BookingStatus string

	BookedStatus string

	Extra map[string]any
}

// NewFieldMapping extracts the known settings keys and applies the defaults
// the universal adapter relies on. Unknown keys survive in Extra.
func NewFieldMapping(settings map[string]any) FieldMapping {
	mapping := FieldMapping{
		Source:               settingString(settings, "source"),
		APIKey:               settingString(settings, "apiKey"),
		WixFn:                settingString(settings, "wix_fn"),
		BaseURL:              settingString(settings, "baseUrl"),
		AvailabilityEndpoint: settingString(settings, "availabilityEndpoint"),
		UnitsPath:            settingString(settings, "units_path", "units"),
		BookingsPath:         settingString(settings, "bookings_path", "bookings"),
		UnitID:               settingString(settings, "unit_id"),
		UnitName:             settingString(settings, "unit_name"),
		UnitImage:            settingString(settings, "unit_image"),
		UnitURL:              settingString(settings, "unit_url"),
		UnitPrice:            settingString(settings, "unit_price"),
		BookingUnitID:        settingString(settings, "booking_unitId"),
		BookingStart:         settingString(settings, "booking_start"),
		BookingEnd:           settingString(settings, "booking_end"),
		BookingStatus:        settingString(settings, "booking_status"),
		BookedStatus:         settingString(settings, "status_booked"),
		Extra:                settings,
	}

	if mapping.WixFn == "" {
		mapping.WixFn = "calendar_data"
	}
	if mapping.UnitsPath == "" {
		mapping.UnitsPath = "units"
	}
	if mapping.BookingsPath == "" {
		mapping.BookingsPath = "bookings"
	}
	if mapping.BookedStatus == "" {
		mapping.BookedStatus = DefaultBookedStatus
	}
	return mapping
}

// settingString returns the first key present with a non-empty string value.
func settingString(settings map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := settings[key]; ok {
			if text := normalization.AsString(value); text != "" {
				return text
			}
		}
	}
	return ""
}
