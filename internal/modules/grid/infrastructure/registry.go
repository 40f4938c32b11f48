package infrastructure

import (
	"fmt"

	"gridgate/internal/modules/grid/application/port"
	"gridgate/internal/modules/grid/domain"
	"gridgate/internal/shared/normalization"
)

// Registry maps canonical provider names to adapter singletons. Adapters are
// instantiated once at boot and reused across requests; they hold no
// per-request state.
type Registry struct {
	adapters map[string]port.Normalizer
}

func NewRegistry(fetcher port.JSONFetcher) *Registry {
	universal := NewUniversalAdapter(fetcher)
	passthrough := NewPassThroughAdapter(fetcher)

	return &Registry{adapters: map[string]port.Normalizer{
		"mock":     NewMockAdapter(),
		"wix":      universal,
		"generic":  universal,
		"booqable": NewBooqableAdapter(fetcher),
		// WordPress installs integrate through an external endpoint.
		"wordpress": passthrough,
		"custom":    passthrough,
	}}
}

// Resolve returns the adapter registered for the provider identifier,
// tolerating the aliases tenants commonly write.
func (r *Registry) Resolve(provider string) (port.Normalizer, error) {
	adapter, ok := r.adapters[normalization.NormalizeProvider(provider)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, provider)
	}
	return adapter, nil
}

// Providers lists the canonical provider names with a registered adapter.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}
