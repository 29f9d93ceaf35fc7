// Package geocode resolves raw (locality, country) pairs into coordinates.
package geocode

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/teammap/internal/engine/query"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.LocationResolver = (*Resolver)(nil)

// Resolver consults the static override table and the run memo before
// issuing a single geocoding request per distinct pair.
type Resolver struct {
	geocoder  ports.Geocoder
	countries ports.CountryCodes
	builder   *query.Builder
	overrides *domain.OverrideTable
	logger    ports.Logger

	mu    sync.RWMutex
	memo  map[string]domain.ResolvedLocation
	group singleflight.Group
}

// NewResolver creates a new Resolver.
func NewResolver(
	geocoder ports.Geocoder,
	countries ports.CountryCodes,
	states ports.StateCodes,
	overrides *domain.OverrideTable,
	logger ports.Logger,
) *Resolver {
	if overrides == nil {
		overrides = domain.NewOverrideTable()
	}
	return &Resolver{
		geocoder:  geocoder,
		countries: countries,
		builder:   query.NewBuilder(countries, states),
		overrides: overrides,
		logger:    logger,
		memo:      make(map[string]domain.ResolvedLocation),
	}
}

// Resolve returns the location of the pair.
func (r *Resolver) Resolve(ctx context.Context, locality, country string) (domain.ResolvedLocation, error) {
	key := domain.LocationKey(locality, country)

	if loc, ok := r.lookup(key); ok {
		r.logger.Info(fmt.Sprintf("Using cached coordinates for %s in %s", locality, country))
		return loc, nil
	}
	r.logger.Info(fmt.Sprintf("'%s' not cached", key))

	// Concurrent callers asking for the same pair share one request.
	v, err, _ := r.group.Do(key, func() (any, error) {
		if loc, ok := r.lookup(key); ok {
			return loc, nil
		}

		loc, err := r.geocode(ctx, locality, country)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.memo[key] = loc
		r.mu.Unlock()
		return loc, nil
	})
	if err != nil {
		return domain.ResolvedLocation{}, err
	}
	return v.(domain.ResolvedLocation), nil
}

func (r *Resolver) lookup(key string) (domain.ResolvedLocation, bool) {
	if loc, ok := r.overrides.Locations[key]; ok {
		return loc, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.memo[key]
	return loc, ok
}

// geocode performs exactly one request against the geocoding service.
func (r *Resolver) geocode(ctx context.Context, locality, country string) (domain.ResolvedLocation, error) {
	locality, _ = query.ApplyAliases(r.overrides.Aliases, locality)
	q := r.builder.Build(locality, country)

	var (
		lat, lng   float64
		adminCode1 string
		name       string
	)

	if q.IsCountryOnly() {
		records, err := r.geocoder.CountryInfo(ctx, *q.Country)
		if err != nil {
			return domain.ResolvedLocation{}, err
		}
		if len(records) == 0 || !records[0].HasBounds {
			return domain.ResolvedLocation{}, notFound(locality, country)
		}
		lat, lng = Centroid(records[0])
	} else {
		places, err := r.geocoder.Search(ctx, *q.Search)
		if err != nil {
			return domain.ResolvedLocation{}, err
		}
		if len(places) == 0 || !places[0].HasCoordinates {
			return domain.ResolvedLocation{}, notFound(locality, country)
		}
		best := places[0]
		lat, lng = best.Lat, best.Lng
		adminCode1 = best.AdminCode1
		name = best.Name
	}

	return domain.ResolvedLocation{
		Location:    domain.NewCoordinates(lat, lng),
		CountryCode: q.CountryCode,
		AdminCode1:  adminCode1,
		Locality:    name,
		Country:     r.countries.Name(q.CountryCode),
	}, nil
}

func notFound(locality, country string) error {
	err := zerr.With(domain.ErrLocationNotFound, "locality", locality)
	return zerr.With(err, "country", country)
}
