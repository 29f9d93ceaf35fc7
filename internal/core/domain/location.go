package domain

import "math"

// CountryCodeUS is the ISO 3166 alpha-2 code of the United States.
// State codes are only kept for members located there.
const CountryCodeUS = "US"

// Coordinates is a [latitude, longitude] pair in degrees.
type Coordinates [2]float64

// NewCoordinates returns the pair with both values rounded to three decimal places.
func NewCoordinates(lat, lng float64) Coordinates {
	return Coordinates{Round(lat), Round(lng)}
}

// Lat returns the latitude.
func (c Coordinates) Lat() float64 { return c[0] }

// Lng returns the longitude.
func (c Coordinates) Lng() float64 { return c[1] }

// Round rounds v to three decimal places.
func Round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ResolvedLocation is the geocoding result for one (locality, country) pair.
type ResolvedLocation struct {
	Location    Coordinates `yaml:"location"`
	CountryCode string      `yaml:"countryCode"`
	AdminCode1  string      `yaml:"adminCode1,omitempty"`
	Locality    string      `yaml:"locality,omitempty"`
	Country     string      `yaml:"country"`
}

// CacheEntry is the persisted result for a single member.
type CacheEntry struct {
	Key         IdentityKey `json:"key"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Location    Coordinates `json:"location"`
	CountryCode string      `json:"countryCode"`
	StateCode   string      `json:"stateCode,omitempty"`
	Locality    string      `json:"locality,omitempty"`
	Country     string      `json:"country"`
	Picture     string      `json:"picture"`
}

// NewCacheEntry builds the entry for a freshly resolved member.
func NewCacheEntry(key IdentityKey, m Member, loc ResolvedLocation) CacheEntry {
	entry := CacheEntry{
		Key:         key,
		Slug:        m.Slug,
		Name:        m.Name,
		Location:    loc.Location,
		CountryCode: loc.CountryCode,
		Locality:    loc.Locality,
		Country:     loc.Country,
		Picture:     m.Picture,
	}
	if loc.CountryCode == CountryCodeUS {
		entry.StateCode = loc.AdminCode1
	}
	return entry
}

// Dataset is the versioned document persisted between runs.
type Dataset struct {
	Version int          `json:"version"`
	Team    []CacheEntry `json:"team"`
}
