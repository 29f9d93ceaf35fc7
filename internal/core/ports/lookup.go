package ports

// CountryCodes translates between country names and ISO 3166 alpha-2 codes.
//
//go:generate mockgen -source=lookup.go -destination=mocks/mock_lookup.go -package=mocks
type CountryCodes interface {
	// Code returns the alpha-2 code for a country name or alias.
	// Unknown names are returned unchanged.
	Code(name string) string

	// Name returns the canonical country name for an alpha-2 code.
	// Unknown codes are returned unchanged.
	Name(code string) string
}

// StateCodes translates US state names into their two-letter codes.
type StateCodes interface {
	// Code returns the two-letter code for a full state name, or "" if unknown.
	Code(name string) string
}
