package domain

// SearchQuery is a free-text place search against the geocoding service.
type SearchQuery struct {
	Query          string
	Country        string
	FeatureClasses []string
	OrderBy        string
	AdminCode1     string
	NameStartsWith string
	MaxRows        int
	IncludeBBox    bool
	NameRequired   bool
}

// CountryQuery asks the geocoding service for country metadata only.
type CountryQuery struct {
	Country string
}

// GeocodeQuery is the request built for one (locality, country) pair.
// Exactly one of Search and Country is set.
type GeocodeQuery struct {
	Search      *SearchQuery
	Country     *CountryQuery
	CountryCode string
}

// IsCountryOnly reports whether the query skips the place search.
func (q GeocodeQuery) IsCountryOnly() bool {
	return q.Search == nil
}

// Place is a search candidate returned by the geocoding service.
type Place struct {
	Name        string
	CountryCode string
	AdminCode1  string
	Lat         float64
	Lng         float64

	// HasCoordinates is false when the service returned neither latitude nor longitude.
	HasCoordinates bool
}

// CountryRecord is the country metadata returned by the geocoding service.
type CountryRecord struct {
	CountryCode string
	CountryName string
	North       float64
	South       float64
	East        float64
	West        float64

	// HasBounds is set only when all four edges of the bounding box were returned.
	HasBounds bool
}
