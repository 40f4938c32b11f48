package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gridgate/internal/modules/grid/domain"
)

// InMemoryTenantStore holds the per-tenant provider wiring. It is populated
// at boot (seed tenants plus an optional JSON file) and read-only afterwards,
// so concurrent request handling needs no locking.
type InMemoryTenantStore struct {
	tenants map[string]domain.TenantConfig
}

// NewInMemoryTenantStore seeds the store with the built-in demo tenants.
func NewInMemoryTenantStore() *InMemoryTenantStore {
	store := &InMemoryTenantStore{tenants: make(map[string]domain.TenantConfig)}

	store.Register(domain.TenantConfig{
		TenantID: "demo",
		Provider: "mock",
		Settings: map[string]any{},
	})
	store.Register(domain.TenantConfig{
		TenantID: "wix_demo",
		Provider: "wix",
		Settings: map[string]any{},
	})
	store.Register(domain.TenantConfig{
		TenantID: "partner1",
		Provider: "custom",
		Settings: map[string]any{
			"baseUrl":              "https://partner1.com/api",
			"availabilityEndpoint": "/availability",
		},
	})

	return store
}

// Register adds or replaces a tenant. Call during boot only.
func (s *InMemoryTenantStore) Register(cfg domain.TenantConfig) {
	tenantID := strings.TrimSpace(cfg.TenantID)
	if tenantID == "" {
		return
	}
	if cfg.Settings == nil {
		cfg.Settings = map[string]any{}
	}
	cfg.TenantID = tenantID
	s.tenants[tenantID] = cfg
}

func (s *InMemoryTenantStore) GetTenantConfig(ctx context.Context, tenantID string) (domain.TenantConfig, error) {
	cfg, ok := s.tenants[strings.TrimSpace(tenantID)]
	if !ok {
		return domain.TenantConfig{}, fmt.Errorf("%w: %q", domain.ErrTenantNotFound, tenantID)
	}
	return cfg, nil
}

// LoadTenantsFile reads tenant configurations from a JSON array of
// {tenantId, provider, settings} objects.
func LoadTenantsFile(path string) ([]domain.TenantConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tenants file: %w", err)
	}
	var configs []domain.TenantConfig
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("parse tenants file: %w", err)
	}
	return configs, nil
}
