package port

import (
	"context"

	"gridgate/internal/modules/grid/domain"
)

// TenantStore looks up the provider wiring for a tenant. Unknown ids fail
// with domain.ErrTenantNotFound.
type TenantStore interface {
	GetTenantConfig(ctx context.Context, tenantID string) (domain.TenantConfig, error)
}
