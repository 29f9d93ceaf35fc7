package geonames

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type statusEnvelope struct {
	Status *serviceStatus `json:"status"`
}

type serviceStatus struct {
	Message string `json:"message"`
	Value   int    `json:"value"`
}

type searchResponse struct {
	TotalResultsCount int           `json:"totalResultsCount"`
	GeoNames          []placeRecord `json:"geonames"`
}

type placeRecord struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	AdminCode1  string `json:"adminCode1"`
	Lat         number `json:"lat"`
	Lng         number `json:"lng"`
}

type countryResponse struct {
	GeoNames []countryRecord `json:"geonames"`
}

type countryRecord struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	North       number `json:"north"`
	South       number `json:"south"`
	East        number `json:"east"`
	West        number `json:"west"`
}

// number accepts both JSON numbers and numeric strings.
// GeoNames encodes search coordinates as strings and bounding boxes as numbers.
// Missing, null and empty values leave Valid unset.
type number struct {
	Value float64
	Valid bool
}

func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = number{Value: f, Valid: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = number{Value: f, Valid: true}
	return nil
}
