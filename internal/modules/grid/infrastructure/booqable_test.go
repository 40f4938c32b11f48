package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgate/internal/modules/grid/application/port"
	"gridgate/internal/modules/grid/domain"
)

func booqableTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/4/bundles", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "bundle-1", "attributes": {
					"name": "City Bike", "slug": "city-bike",
					"photo_url": "https://cdn.booqable.test/bike.jpg",
					"base_price_in_cents": 2500, "show_in_store": true
				}},
				{"id": "bundle-2", "attributes": {
					"name": "Hidden Kayak", "show_in_store": false
				}},
				{"id": "bundle-3", "attributes": {
					"name": "Old Tandem", "archived": true
				}},
				{"id": "bundle-4", "attributes": {
					"price_in_cents": 1000
				}}
			]
		}`))
	})
	mux.HandleFunc("/api/4/plannings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-03-03T23:59:59Z", r.URL.Query().Get("filter[starts_at][lte]"))
		assert.Equal(t, "2024-03-01T00:00:00Z", r.URL.Query().Get("filter[stops_at][gte]"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "p1", "attributes": {
					"item_id": "bundle-1",
					"starts_at": "2024-03-01T00:00:00Z",
					"stops_at": "2024-03-03T00:00:00Z"
				}},
				{"id": "p2", "relationships": {"item": {"data": {"id": "bundle-4"}}},
				 "attributes": {"starts_at": "2024-03-02T00:00:00Z"}}
			]
		}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestBooqableAdapterFetchAvailability(t *testing.T) {
	server := booqableTestServer(t)
	adapter := NewBooqableAdapter(NewRESTClient(5*time.Second, nil))

	cfg := domain.TenantConfig{
		TenantID: "shop",
		Provider: "booqable",
		Settings: map[string]any{"source": server.URL, "apiKey": "test-key"},
	}

	grid, err := adapter.FetchAvailability(context.Background(), "2024-03-01", "2024-03-03", cfg)
	require.NoError(t, err)

	// Hidden and archived bundles never reach the grid.
	require.Len(t, grid.Items, 2)

	bike := grid.Items[0]
	assert.Equal(t, "bundle-1", bike.ID)
	assert.Equal(t, "City Bike", bike.Name)
	assert.Equal(t, "https://cdn.booqable.test/bike.jpg", bike.Image)
	assert.Equal(t, server.URL+"/products/city-bike", bike.URL)
	require.NotNil(t, bike.Availability["2024-03-01"].Price)
	assert.Equal(t, 25.0, *bike.Availability["2024-03-01"].Price)

	assert.Equal(t, domain.StatusBooked, bike.Availability["2024-03-01"].Status)
	assert.Equal(t, domain.StatusBooked, bike.Availability["2024-03-02"].Status)
	assert.Equal(t, domain.StatusAvailable, bike.Availability["2024-03-03"].Status)

	assert.Equal(t, "bundle-1", bike.Metadata["id"])
	assert.Equal(t, "City Bike", bike.Metadata["name"])

	// The nameless bundle gets the fallback label, its price from the
	// secondary cents field, and its planning via the JSONAPI relationship.
	other := grid.Items[1]
	assert.Equal(t, "bundle-4", other.ID)
	assert.Equal(t, "Unnamed Bundle", other.Name)
	require.NotNil(t, other.Availability["2024-03-01"].Price)
	assert.Equal(t, 10.0, *other.Availability["2024-03-01"].Price)
	assert.Equal(t, domain.StatusAvailable, other.Availability["2024-03-01"].Status)
	assert.Equal(t, domain.StatusBooked, other.Availability["2024-03-02"].Status)
	assert.Equal(t, domain.StatusAvailable, other.Availability["2024-03-03"].Status)
}

func TestBooqableAdapterRequiresCredentials(t *testing.T) {
	adapter := NewBooqableAdapter(NewRESTClient(time.Second, nil))

	_, err := adapter.FetchAvailability(context.Background(), "2024-03-01", "2024-03-02", domain.TenantConfig{
		Provider: "booqable",
		Settings: map[string]any{"apiKey": "k"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegration)
	assert.Contains(t, err.Error(), "source")

	_, err = adapter.FetchAvailability(context.Background(), "2024-03-01", "2024-03-02", domain.TenantConfig{
		Provider: "booqable",
		Settings: map[string]any{"source": "https://shop.booqable.test"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegration)
	assert.Contains(t, err.Error(), "apiKey")
}

func TestBooqableAdapterUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"Unauthorized"}]}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	adapter := NewBooqableAdapter(NewRESTClient(time.Second, nil))
	_, err := adapter.FetchAvailability(context.Background(), "2024-03-01", "2024-03-02", domain.TenantConfig{
		Provider: "booqable",
		Settings: map[string]any{"source": server.URL, "apiKey": "bad"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegration)

	var httpErr *port.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}
