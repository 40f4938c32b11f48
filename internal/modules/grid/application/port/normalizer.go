package port

import (
	"context"

	"gridgate/internal/modules/grid/domain"
)

// Normalizer turns one provider's raw payloads into the canonical grid for the
// requested window. Implementations are long-lived singletons and must hold no
// per-request state; a failed fetch or mapping aborts the whole call, never
// returning partial items.
type Normalizer interface {
	FetchAvailability(ctx context.Context, start, end string, cfg domain.TenantConfig) (*domain.GridResponse, error)
}

// ProviderResolver selects the Normalizer registered for a provider
// identifier. Unknown identifiers fail with domain.ErrUnknownProvider.
type ProviderResolver interface {
	Resolve(provider string) (Normalizer, error)
}
