package ports

import (
	"context"

	"go.trai.ch/teammap/internal/core/domain"
)

// LocationResolver resolves a raw (locality, country) pair into a location.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type LocationResolver interface {
	// Resolve returns the location for the pair. It performs at most one
	// request against the geocoding service.
	Resolve(ctx context.Context, locality, country string) (domain.ResolvedLocation, error)
}
