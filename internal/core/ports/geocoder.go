package ports

import (
	"context"

	"go.trai.ch/teammap/internal/core/domain"
)

// Geocoder is the external geocoding service.
//
//go:generate mockgen -source=geocoder.go -destination=mocks/mock_geocoder.go -package=mocks
type Geocoder interface {
	// Search returns the candidates for a place search, best match first.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.Place, error)

	// CountryInfo returns the metadata of the requested country.
	CountryInfo(ctx context.Context, query domain.CountryQuery) ([]domain.CountryRecord, error)
}
