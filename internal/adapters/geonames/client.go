// Package geonames implements the Geocoder port against the GeoNames web services.
package geonames

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	searchEndpoint  = "search"
	countryEndpoint = "countryInfo"
)

var _ ports.Geocoder = (*Client)(nil)

// Client queries the GeoNames JSON endpoints.
type Client struct {
	baseURL    string
	username   string
	httpClient *http.Client
}

// NewClient creates a Client for baseURL authenticating as username.
func NewClient(baseURL, username string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, username, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a Client using the given http client.
func NewClientWithHTTP(baseURL, username string, client *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		httpClient: client,
	}
}

// Search runs a place search.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("q", query.Query)
	if query.MaxRows > 0 {
		params.Set("maxRows", strconv.Itoa(query.MaxRows))
	}
	if query.IncludeBBox {
		params.Set("inclBbox", "true")
	}
	for _, fc := range query.FeatureClasses {
		params.Add("featureClass", fc)
	}
	if query.Country != "" {
		params.Set("country", query.Country)
	}
	if query.OrderBy != "" {
		params.Set("orderby", query.OrderBy)
	}
	if query.NameRequired {
		params.Set("isNameRequired", "true")
	}
	if query.AdminCode1 != "" {
		params.Set("adminCode1", query.AdminCode1)
	}
	if query.NameStartsWith != "" {
		params.Set("name_startsWith", query.NameStartsWith)
	}

	var resp searchResponse
	if err := c.get(ctx, searchEndpoint, params, &resp); err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0, len(resp.GeoNames))
	for _, p := range resp.GeoNames {
		places = append(places, domain.Place{
			Name:           p.Name,
			CountryCode:    p.CountryCode,
			AdminCode1:     p.AdminCode1,
			Lat:            p.Lat.Value,
			Lng:            p.Lng.Value,
			HasCoordinates: p.Lat.Valid || p.Lng.Valid,
		})
	}
	return places, nil
}

// CountryInfo fetches the metadata of a single country.
func (c *Client) CountryInfo(ctx context.Context, query domain.CountryQuery) ([]domain.CountryRecord, error) {
	params := url.Values{}
	params.Set("country", query.Country)

	var resp countryResponse
	if err := c.get(ctx, countryEndpoint, params, &resp); err != nil {
		return nil, err
	}

	records := make([]domain.CountryRecord, 0, len(resp.GeoNames))
	for _, r := range resp.GeoNames {
		records = append(records, domain.CountryRecord{
			CountryCode: r.CountryCode,
			CountryName: r.CountryName,
			North:       r.North.Value,
			South:       r.South.Value,
			East:        r.East.Value,
			West:        r.West.Value,
			HasBounds:   r.North.Valid && r.South.Valid && r.East.Valid && r.West.Valid,
		})
	}
	return records, nil
}

// get calls endpoint and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.username == "" {
		return domain.ErrMissingUsername
	}

	// Path without credentials, used for error reports.
	path := "/" + endpoint + "?" + params.Encode()

	params.Set("type", "json")
	params.Set("username", c.username)
	target := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeocoderRequestFailed.Error()), "path", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeocoderRequestFailed.Error()), "path", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrGeocoderRequestFailed, "status_code", resp.StatusCode)
		return zerr.With(apiErr, "path", path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeocoderRequestFailed.Error()), "path", path)
	}

	var envelope statusEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeocoderParseFailed.Error()), "path", path)
	}
	if envelope.Status != nil {
		svcErr := zerr.With(domain.ErrGeocoderService, "code", envelope.Status.Value)
		svcErr = zerr.With(svcErr, "message", envelope.Status.Message)
		return zerr.With(svcErr, "path", path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeocoderParseFailed.Error()), "path", path)
	}
	return nil
}
