package domain

import "errors"

var (
	// ErrInvalidDate signals an unparseable start or end date in the request.
	ErrInvalidDate = errors.New("invalid date")
	// ErrMapping signals a tenant mapping configuration that points at a
	// missing or wrong-shaped field. It is never silently defaulted away.
	ErrMapping = errors.New("mapping configuration error")
	// ErrIntegration wraps upstream fetch failures and missing provider
	// credentials. The chain keeps the upstream detail for diagnosis.
	ErrIntegration = errors.New("provider integration error")
	// ErrUnknownProvider signals a provider identifier with no registered adapter.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrTenantNotFound signals a tenant id missing from the configuration store.
	ErrTenantNotFound = errors.New("tenant not found")
)
