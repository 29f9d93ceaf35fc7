package geocode_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports/mocks"
	"go.trai.ch/teammap/internal/engine/geocode"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	geocoder  *mocks.MockGeocoder
	countries *mocks.MockCountryCodes
	states    *mocks.MockStateCodes
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		geocoder:  mocks.NewMockGeocoder(ctrl),
		countries: mocks.NewMockCountryCodes(ctrl),
		states:    mocks.NewMockStateCodes(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) resolver(table *domain.OverrideTable) *geocode.Resolver {
	return geocode.NewResolver(f.geocoder, f.countries, f.states, table, f.logger)
}

func TestResolver_Search(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("USA").Return("US")
	f.countries.EXPECT().Name("US").Return("USA")
	f.geocoder.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.SearchQuery) ([]domain.Place, error) {
			assert.Equal(t, "Austin", q.Query)
			assert.Equal(t, "TX", q.AdminCode1)
			// The country code of the query wins over the candidate.
			return []domain.Place{{Name: "Austin", CountryCode: "us", AdminCode1: "TX", HasCoordinates: true, Lat: 30.26715, Lng: -97.74306}}, nil
		})

	loc, err := f.resolver(nil).Resolve(context.Background(), "Austin, TX", "USA")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedLocation{
		Location:    domain.Coordinates{30.267, -97.743},
		CountryCode: "US",
		AdminCode1:  "TX",
		Locality:    "Austin",
		Country:     "USA",
	}, loc)
}

func TestResolver_Rounding(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("USA").Return("US")
	f.countries.EXPECT().Name("US").Return("USA")
	f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]domain.Place{{Name: "Washington", HasCoordinates: true, Lat: 38.89778, Lng: -77.03653}}, nil)

	loc, err := f.resolver(nil).Resolve(context.Background(), "Washington, DC", "USA")
	require.NoError(t, err)
	assert.InDelta(t, 38.898, loc.Location.Lat(), 1e-9)
	assert.InDelta(t, -77.037, loc.Location.Lng(), 1e-9)
}

func TestResolver_CountryCentroid(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Germany").Return("DE")
	f.countries.EXPECT().Name("DE").Return("Germany")
	f.geocoder.EXPECT().CountryInfo(gomock.Any(), domain.CountryQuery{Country: "DE"}).
		Return([]domain.CountryRecord{{CountryCode: "DE", CountryName: "Germany", HasBounds: true, North: 55.05, South: 47.27, East: 15.04, West: 5.87}}, nil)

	loc, err := f.resolver(nil).Resolve(context.Background(), "", "Germany")
	require.NoError(t, err)
	assert.Equal(t, "DE", loc.CountryCode)
	assert.Equal(t, "Germany", loc.Country)
	assert.Empty(t, loc.Locality)
	assert.InDelta(t, 51.249, loc.Location.Lat(), 1e-9)
	assert.InDelta(t, 10.843, loc.Location.Lng(), 1e-9)
}

func TestResolver_StaticOverride(t *testing.T) {
	f := newFixture(t)
	table := domain.NewOverrideTable()
	want := domain.ResolvedLocation{Location: domain.Coordinates{1.29, 103.85}, CountryCode: "SG", Locality: "Singapore", Country: "Singapore"}
	table.Locations["APAC|Singapore"] = want

	loc, err := f.resolver(table).Resolve(context.Background(), "APAC", "Singapore")
	require.NoError(t, err)
	assert.Equal(t, want, loc)
}

func TestResolver_AliasToCountryLevel(t *testing.T) {
	f := newFixture(t)
	table := domain.NewOverrideTable()
	table.Aliases["EMEA"] = nil

	f.countries.EXPECT().Code("Spain").Return("ES")
	f.countries.EXPECT().Name("ES").Return("Spain")
	f.geocoder.EXPECT().CountryInfo(gomock.Any(), domain.CountryQuery{Country: "ES"}).
		Return([]domain.CountryRecord{{CountryCode: "ES", HasBounds: true, North: 43.79, South: 36.0, East: 4.32, West: -9.3}}, nil)

	loc, err := f.resolver(table).Resolve(context.Background(), "EMEA", "Spain")
	require.NoError(t, err)
	assert.Equal(t, "ES", loc.CountryCode)
}

func TestResolver_AliasRewrite(t *testing.T) {
	f := newFixture(t)
	corrected := "Arlington, Texas"
	table := domain.NewOverrideTable()
	table.Aliases["Alrington, Texas"] = &corrected

	f.countries.EXPECT().Code("USA").Return("US")
	f.countries.EXPECT().Name("US").Return("USA")
	f.states.EXPECT().Code("Texas").Return("TX")
	f.geocoder.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.SearchQuery) ([]domain.Place, error) {
			assert.Equal(t, "Arlington", q.Query)
			assert.Equal(t, "TX", q.AdminCode1)
			return []domain.Place{{Name: "Arlington", AdminCode1: "TX", HasCoordinates: true, Lat: 32.7357, Lng: -97.1081}}, nil
		})

	loc, err := f.resolver(table).Resolve(context.Background(), "Alrington, Texas", "USA")
	require.NoError(t, err)
	assert.Equal(t, "Arlington", loc.Locality)
}

func TestResolver_MemoizesPerRun(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Germany").Return("DE").Times(1)
	f.countries.EXPECT().Name("DE").Return("Germany").Times(1)
	f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]domain.Place{{Name: "Berlin", HasCoordinates: true, Lat: 52.52437, Lng: 13.41053}}, nil).
		Times(1)

	r := f.resolver(nil)
	first, err := r.Resolve(context.Background(), "Berlin", "Germany")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "Berlin", "Germany")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolver_NotFound(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Greece").Return("GR")
	f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := f.resolver(nil).Resolve(context.Background(), "Atlantis", "Greece")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLocationNotFound.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "Atlantis", meta["locality"])
	assert.Equal(t, "Greece", meta["country"])
}

func TestResolver_CandidateWithoutCoordinates(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Greece").Return("GR")
	f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]domain.Place{{Name: "Atlantis", CountryCode: "GR"}}, nil)

	_, err := f.resolver(nil).Resolve(context.Background(), "Atlantis", "Greece")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLocationNotFound.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Atlantis", zErr.Metadata()["locality"])
}

func TestResolver_CountryWithoutBounds(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Atlantis").Return("Atlantis")
	f.geocoder.EXPECT().CountryInfo(gomock.Any(), domain.CountryQuery{Country: "Atlantis"}).
		Return([]domain.CountryRecord{{CountryCode: "XA"}}, nil)

	_, err := f.resolver(nil).Resolve(context.Background(), "", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLocationNotFound.Error())
}

func TestResolver_ZeroCoordinatesAreAccepted(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Ghana").Return("GH")
	f.countries.EXPECT().Name("GH").Return("Ghana")
	f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]domain.Place{{Name: "Null Island", HasCoordinates: true}}, nil)

	loc, err := f.resolver(nil).Resolve(context.Background(), "Null Island", "Ghana")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{0, 0}, loc.Location)
}

func TestResolver_ServiceErrorPropagates(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Germany").Return("DE")
	f.geocoder.EXPECT().CountryInfo(gomock.Any(), gomock.Any()).Return(nil, domain.ErrGeocoderService)

	_, err := f.resolver(nil).Resolve(context.Background(), "", "Germany")
	require.ErrorIs(t, err, domain.ErrGeocoderService)
}

func TestResolver_ErrorsAreNotMemoized(t *testing.T) {
	f := newFixture(t)
	f.countries.EXPECT().Code("Germany").Return("DE").Times(2)
	f.countries.EXPECT().Name("DE").Return("Germany")
	gomock.InOrder(
		f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")),
		f.geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]domain.Place{{Name: "Berlin", HasCoordinates: true, Lat: 52.5, Lng: 13.4}}, nil),
	)

	r := f.resolver(nil)
	_, err := r.Resolve(context.Background(), "Berlin", "Germany")
	require.Error(t, err)

	loc, err := r.Resolve(context.Background(), "Berlin", "Germany")
	require.NoError(t, err)
	assert.Equal(t, "Berlin", loc.Locality)
}

func TestCentroid_Antimeridian(t *testing.T) {
	lat, lng := geocode.Centroid(domain.CountryRecord{North: 10, South: -10, West: 170, East: -170})

	assert.InDelta(t, 0, lat, 1e-9)
	assert.InDelta(t, 180, math.Abs(lng), 1e-9, "centroid must lie inside the box, not at the naive mean 0")
}

func TestCentroid_Simple(t *testing.T) {
	lat, lng := geocode.Centroid(domain.CountryRecord{North: 10, South: -10, West: -20, East: 20})

	assert.InDelta(t, 0, lat, 1e-9)
	assert.InDelta(t, 0, lng, 1e-9)
}
