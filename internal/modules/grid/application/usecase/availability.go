package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gridgate/internal/modules/grid/application/port"
	"gridgate/internal/modules/grid/domain"
)

// AvailabilityInput carries the request parameters the HTTP layer parsed.
type AvailabilityInput struct {
	TenantID string
	Start    string
	End      string
}

// AvailabilityUseCase resolves a tenant's adapter and runs one synchronous
// fetch-and-normalize pass. All intermediate structures are scoped to the
// call; nothing is shared between requests.
type AvailabilityUseCase struct {
	tenants   port.TenantStore
	providers port.ProviderResolver
}

func NewAvailabilityUseCase(tenants port.TenantStore, providers port.ProviderResolver) *AvailabilityUseCase {
	return &AvailabilityUseCase{tenants: tenants, providers: providers}
}

func (uc *AvailabilityUseCase) Execute(ctx context.Context, input AvailabilityInput) (*domain.GridResponse, error) {
	tenantID := strings.TrimSpace(input.TenantID)
	start := strings.TrimSpace(input.Start)
	end := strings.TrimSpace(input.End)

	// Reject unparseable dates before any upstream call is made.
	if _, err := domain.ParseDate(start); err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	if _, err := domain.ParseDate(end); err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	cfg, err := uc.tenants.GetTenantConfig(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant lookup: %w", err)
	}

	normalizer, err := uc.providers.Resolve(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("adapter selection: %w", err)
	}

	slog.Info("availability fetch start",
		slog.String("tenantId", tenantID),
		slog.String("provider", cfg.Provider),
		slog.String("start", start),
		slog.String("end", end),
	)

	began := time.Now()
	grid, err := normalizer.FetchAvailability(ctx, start, end, cfg)
	if err != nil {
		slog.Error("availability fetch failed",
			slog.String("tenantId", tenantID),
			slog.String("provider", cfg.Provider),
			slog.Any("error", err),
		)
		return nil, err
	}

	slog.Info("availability fetch done",
		slog.String("tenantId", tenantID),
		slog.String("provider", cfg.Provider),
		slog.Int("items", len(grid.Items)),
		slog.Int("days", len(grid.Dates)),
		slog.Duration("elapsed", time.Since(began)),
	)
	return grid, nil
}
