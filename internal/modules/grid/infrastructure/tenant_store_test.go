package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgate/internal/modules/grid/domain"
)

func TestTenantStoreSeeds(t *testing.T) {
	store := NewInMemoryTenantStore()

	demo, err := store.GetTenantConfig(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "mock", demo.Provider)

	partner, err := store.GetTenantConfig(context.Background(), "partner1")
	require.NoError(t, err)
	assert.Equal(t, "custom", partner.Provider)
	assert.Equal(t, "https://partner1.com/api", partner.Settings["baseUrl"])
}

func TestTenantStoreNotFound(t *testing.T) {
	store := NewInMemoryTenantStore()

	_, err := store.GetTenantConfig(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestTenantStoreRegister(t *testing.T) {
	store := NewInMemoryTenantStore()

	store.Register(domain.TenantConfig{TenantID: "  new-tenant  ", Provider: "generic"})
	cfg, err := store.GetTenantConfig(context.Background(), "new-tenant")
	require.NoError(t, err)
	assert.Equal(t, "new-tenant", cfg.TenantID)
	require.NotNil(t, cfg.Settings)

	// Re-registering replaces the previous wiring.
	store.Register(domain.TenantConfig{TenantID: "demo", Provider: "generic"})
	demo, err := store.GetTenantConfig(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "generic", demo.Provider)

	// Blank ids are ignored.
	store.Register(domain.TenantConfig{TenantID: "   "})
	_, err = store.GetTenantConfig(context.Background(), "")
	assert.Error(t, err)
}

func TestLoadTenantsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenants.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"tenantId": "acme", "provider": "booqable",
		 "settings": {"source": "https://acme.booqable.com", "apiKey": "k"}},
		{"tenantId": "beta", "provider": "generic", "settings": {"source": "https://beta.test"}}
	]`), 0o600))

	configs, err := LoadTenantsFile(path)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "acme", configs[0].TenantID)
	assert.Equal(t, "booqable", configs[0].Provider)
	assert.Equal(t, "k", configs[0].Settings["apiKey"])
}

func TestLoadTenantsFileErrors(t *testing.T) {
	_, err := LoadTenantsFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o600))
	_, err = LoadTenantsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tenants file")
}
