package query

import (
	"regexp"
	"strings"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
)

const (
	searchMaxRows  = 1
	searchOrderBy  = "relevance"
	stateCodeLen   = 2
	featurePopular = "P"
	featureAdmin   = "A"
)

// stateCodeRegex matches a trailing ", TX" or ", Texas, USA".
var stateCodeRegex = regexp.MustCompile(`(?i),\s*([A-Z]+)\s*(,\s?USA?)?$`)

// Builder converts (locality, country) pairs into geocoding queries.
type Builder struct {
	countries ports.CountryCodes
	states    ports.StateCodes
}

// NewBuilder creates a Builder using the given lookup tables.
func NewBuilder(countries ports.CountryCodes, states ports.StateCodes) *Builder {
	return &Builder{countries: countries, states: states}
}

// Build returns a place search when locality is usable, otherwise a country lookup.
// Unknown countries are passed through; the service rejects them.
func (b *Builder) Build(locality, country string) domain.GeocodeQuery {
	code := b.countries.Code(country)

	if locality == "" || locality == LocalityTBD {
		return domain.GeocodeQuery{
			Country:     &domain.CountryQuery{Country: code},
			CountryCode: code,
		}
	}

	search := &domain.SearchQuery{
		Query:          locality,
		Country:        code,
		FeatureClasses: []string{featurePopular, featureAdmin},
		OrderBy:        searchOrderBy,
		MaxRows:        searchMaxRows,
		IncludeBBox:    true,
		NameRequired:   true,
	}

	if code == domain.CountryCodeUS {
		if m := stateCodeRegex.FindStringSubmatch(locality); m != nil {
			search.Query = stateCodeRegex.ReplaceAllString(locality, "")
			if state := b.stateCode(m[1]); len(state) == stateCodeLen {
				search.AdminCode1 = strings.ToUpper(state)
			}
		}
	}

	if !IsAmbiguousPrefix(locality) {
		search.NameStartsWith = string(firstRunes(locality, prefixHintLen))
	}

	return domain.GeocodeQuery{Search: search, CountryCode: code}
}

func (b *Builder) stateCode(token string) string {
	if len(token) == stateCodeLen {
		return token
	}
	return b.states.Code(token)
}
