package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"gridgate/internal/modules/grid/application/port"
	"gridgate/internal/modules/grid/domain"
)

// PassThroughAdapter serves tenants whose upstream already speaks the grid
// schema. It is the simplest integration path for third-party developers:
// host an endpoint returning GridResponse and point the tenant config at it.
type PassThroughAdapter struct {
	fetcher port.JSONFetcher
}

func NewPassThroughAdapter(fetcher port.JSONFetcher) *PassThroughAdapter {
	return &PassThroughAdapter{fetcher: fetcher}
}

func (a *PassThroughAdapter) FetchAvailability(ctx context.Context, start, end string, cfg domain.TenantConfig) (*domain.GridResponse, error) {
	mapping := domain.NewFieldMapping(cfg.Settings)
	if mapping.BaseURL == "" || mapping.AvailabilityEndpoint == "" {
		return nil, fmt.Errorf("%w: passthrough requires 'baseUrl' and 'availabilityEndpoint' settings", domain.ErrIntegration)
	}

	endpoint := mapping.BaseURL + mapping.AvailabilityEndpoint
	payload, err := a.fetcher.GetJSON(ctx, endpoint, map[string]string{
		"tenantId": cfg.TenantID,
		"start":    start,
		"end":      end,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", domain.ErrIntegration, endpoint, err)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: re-encode upstream payload: %w", domain.ErrIntegration, err)
	}
	var grid domain.GridResponse
	if err := json.Unmarshal(encoded, &grid); err != nil {
		return nil, fmt.Errorf("%w: upstream payload is not a grid response: %w", domain.ErrMapping, err)
	}
	return &grid, nil
}
