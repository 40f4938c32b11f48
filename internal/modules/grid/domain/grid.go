package domain

// Status enumerates the availability states a calendar day can take in the grid.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusUnavailable Status = "unavailable"
	StatusPending     Status = "pending"
)

// SchemaVersion tags every GridResponse so frontends can detect contract changes.
const SchemaVersion = "1.0"

// DayAvailability is the per-day cell of the grid. Price and Remaining are
// omitted from the wire payload when the provider reported neither.
type DayAvailability struct {
	Status    Status   `json:"status"`
	Price     *float64 `json:"price,omitempty"`
	Remaining *int     `json:"remaining,omitempty"`
}

// GridItem is one bookable unit with its availability keyed by calendar date
// (YYYY-MM-DD). The key set always equals the requested date range.
type GridItem struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Image        string                     `json:"image,omitempty"`
	URL          string                     `json:"url,omitempty"`
	Availability map[string]DayAvailability `json:"availability"`
	Metadata     map[string]any             `json:"metadata,omitempty"`
}

// GridMetadata carries response-wide hints for the rendering frontend.
type GridMetadata struct {
	Currency string `json:"currency,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// GridResponse is the canonical payload every provider adapter normalizes into.
// Items keep the order of the source records; Dates are ascending and gapless.
type GridResponse struct {
	Version  string        `json:"version"`
	Dates    []string      `json:"dates"`
	Items    []GridItem    `json:"items"`
	Metadata *GridMetadata `json:"metadata,omitempty"`
}
