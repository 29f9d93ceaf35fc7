package geonames_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/teammap/internal/adapters/geonames"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/zerr"
)

const baseURL = "https://secure.geonames.org"

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestClient_Search(t *testing.T) {
	var captured *http.Request
	client := geonames.NewClientWithHTTP(baseURL, "tester", newMockClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{
			"totalResultsCount": 1,
			"geonames": [{"name": "Austin", "countryCode": "US", "adminCode1": "TX", "lat": "30.26715", "lng": "-97.74306"}]
		}`), nil
	}))

	places, err := client.Search(context.Background(), domain.SearchQuery{
		Query:          "Austin",
		Country:        "US",
		FeatureClasses: []string{"P", "A"},
		OrderBy:        "relevance",
		AdminCode1:     "TX",
		NameStartsWith: "Aus",
		MaxRows:        1,
		IncludeBBox:    true,
		NameRequired:   true,
	})
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, domain.Place{Name: "Austin", CountryCode: "US", AdminCode1: "TX", Lat: 30.26715, Lng: -97.74306, HasCoordinates: true}, places[0])

	require.NotNil(t, captured)
	assert.Equal(t, "/search", captured.URL.Path)
	q := captured.URL.Query()
	assert.Equal(t, []string{"P", "A"}, q["featureClass"])
	assert.Equal(t, "json", q.Get("type"))
	assert.Equal(t, "tester", q.Get("username"))
	assert.Equal(t, "Austin", q.Get("q"))
	assert.Equal(t, "1", q.Get("maxRows"))
	assert.Equal(t, "true", q.Get("inclBbox"))
	assert.Equal(t, "true", q.Get("isNameRequired"))
	assert.Equal(t, "relevance", q.Get("orderby"))
	assert.Equal(t, "US", q.Get("country"))
	assert.Equal(t, "TX", q.Get("adminCode1"))
	assert.Equal(t, "Aus", q.Get("name_startsWith"))
}

func TestClient_Search_OptionalParamsOmitted(t *testing.T) {
	var captured *http.Request
	client := geonames.NewClientWithHTTP(baseURL+"/", "tester", newMockClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"totalResultsCount": 0, "geonames": []}`), nil
	}))

	places, err := client.Search(context.Background(), domain.SearchQuery{Query: "San Jose", Country: "CR"})
	require.NoError(t, err)
	assert.Empty(t, places)

	require.NotNil(t, captured)
	assert.Equal(t, "/search", captured.URL.Path)
	q := captured.URL.Query()
	assert.NotContains(t, q, "adminCode1")
	assert.NotContains(t, q, "name_startsWith")
	assert.NotContains(t, q, "featureClass")
}

func TestClient_CountryInfo(t *testing.T) {
	client := geonames.NewClientWithHTTP(baseURL, "tester", newMockClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/countryInfo", req.URL.Path)
		assert.Equal(t, "FJ", req.URL.Query().Get("country"))
		return jsonResponse(http.StatusOK, `{"geonames": [{
			"countryCode": "FJ", "countryName": "Fiji",
			"north": -12.48, "south": -20.67, "east": -178.42, "west": 177.13
		}]}`), nil
	}))

	records, err := client.CountryInfo(context.Background(), domain.CountryQuery{Country: "FJ"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CountryRecord{
		CountryCode: "FJ",
		CountryName: "Fiji",
		North:       -12.48,
		South:       -20.67,
		East:        -178.42,
		West:        177.13,
		HasBounds:   true,
	}, records[0])
}

func TestClient_MissingCoordinates(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "absent", body: `{"name": "Atlantis", "countryCode": "GR"}`, want: false},
		{name: "null", body: `{"name": "Atlantis", "lat": null, "lng": null}`, want: false},
		{name: "empty strings", body: `{"name": "Atlantis", "lat": "", "lng": ""}`, want: false},
		{name: "zero is a value", body: `{"name": "Null Island", "lat": "0", "lng": "0"}`, want: true},
		{name: "latitude only", body: `{"name": "Equator", "lat": "0"}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := geonames.NewClientWithHTTP(baseURL, "tester", newMockClient(func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"geonames": [`+tt.body+`]}`), nil
			}))

			places, err := client.Search(context.Background(), domain.SearchQuery{Query: "Atlantis"})
			require.NoError(t, err)
			require.Len(t, places, 1)
			assert.Equal(t, tt.want, places[0].HasCoordinates)
		})
	}
}

func TestClient_CountryInfo_PartialBounds(t *testing.T) {
	client := geonames.NewClientWithHTTP(baseURL, "tester", newMockClient(func(_ *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"geonames": [{"countryCode": "AQ", "north": -60, "south": -90}]}`), nil
	}))

	records, err := client.CountryInfo(context.Background(), domain.CountryQuery{Country: "AQ"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].HasBounds)
}

func TestClient_ServiceError(t *testing.T) {
	client := geonames.NewClientWithHTTP(baseURL, "tester", newMockClient(func(_ *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status": {"message": "the daily limit of 20000 credits has been exceeded", "value": 18}}`), nil
	}))

	_, err := client.CountryInfo(context.Background(), domain.CountryQuery{Country: "DE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrGeocoderService.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, 18, meta["code"])
	assert.Equal(t, "the daily limit of 20000 credits has been exceeded", meta["message"])
	assert.Equal(t, "/countryInfo?country=DE", meta["path"])
}

func TestClient_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler func(req *http.Request) (*http.Response, error)
		want    error
	}{
		{
			name: "non-200 status",
			handler: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusServiceUnavailable, ""), nil
			},
			want: domain.ErrGeocoderRequestFailed,
		},
		{
			name: "transport failure",
			handler: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			want: domain.ErrGeocoderRequestFailed,
		},
		{
			name: "malformed body",
			handler: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"geonames": [`), nil
			},
			want: domain.ErrGeocoderParseFailed,
		},
		{
			name: "bad coordinate",
			handler: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"geonames": [{"name": "X", "lat": "north", "lng": "1"}]}`), nil
			},
			want: domain.ErrGeocoderParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := geonames.NewClientWithHTTP(baseURL, "tester", newMockClient(tt.handler))

			_, err := client.Search(context.Background(), domain.SearchQuery{Query: "Berlin", Country: "DE"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want.Error())
		})
	}
}

func TestClient_MissingUsername(t *testing.T) {
	called := false
	client := geonames.NewClientWithHTTP(baseURL, "", newMockClient(func(_ *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{}`), nil
	}))

	_, err := client.Search(context.Background(), domain.SearchQuery{Query: "Berlin"})
	require.ErrorIs(t, err, domain.ErrMissingUsername)
	assert.False(t, called)
}
