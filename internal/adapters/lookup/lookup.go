// Package lookup translates country and US state names into their codes.
package lookup

import (
	"embed"
	"strings"
	"unicode"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml data/states.yaml
var dataFS embed.FS

var (
	_ ports.CountryCodes = (*Countries)(nil)
	_ ports.StateCodes   = (*States)(nil)
)

type countryRecord struct {
	Code    string   `yaml:"code"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Countries maps country names and aliases to ISO 3166-1 alpha-2 codes and back.
type Countries struct {
	codes map[string]string
	names map[string]string
}

// States maps US state names to their two-letter codes.
type States struct {
	codes map[string]string
}

// NewCountries loads the embedded country table.
func NewCountries() (*Countries, error) {
	data, err := dataFS.ReadFile("data/countries.yaml")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLookupDataInvalid.Error())
	}
	return ParseCountries(data)
}

// ParseCountries builds a country table from a YAML sequence of records.
func ParseCountries(data []byte) (*Countries, error) {
	var records []countryRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLookupDataInvalid.Error())
	}

	c := &Countries{
		codes: make(map[string]string, len(records)*2),
		names: make(map[string]string, len(records)),
	}

	for _, r := range records {
		code := strings.ToUpper(strings.TrimSpace(r.Code))
		if len(code) != 2 || r.Name == "" {
			return nil, zerr.With(domain.ErrLookupDataInvalid, "code", r.Code)
		}
		if _, dup := c.names[code]; dup {
			return nil, zerr.With(domain.ErrLookupDataInvalid, "duplicate_code", code)
		}
		c.names[code] = r.Name

		for _, name := range append([]string{r.Name}, r.Aliases...) {
			key := c.key(name)
			if prev, dup := c.codes[key]; dup && prev != code {
				return nil, zerr.With(domain.ErrLookupDataInvalid, "duplicate_name", name)
			}
			c.codes[key] = code
		}
	}

	return c, nil
}

// Code returns the alpha-2 code for name.
func (c *Countries) Code(name string) string {
	if code, ok := c.codes[c.key(name)]; ok {
		return code
	}
	return name
}

// Name returns the display name for code.
func (c *Countries) Name(code string) string {
	if name, ok := c.names[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// key folds name for case-insensitive matching. Casers are stateful, so one is built per call.
func (c *Countries) key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// NewStates loads the embedded US state table.
func NewStates() (*States, error) {
	data, err := dataFS.ReadFile("data/states.yaml")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLookupDataInvalid.Error())
	}

	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLookupDataInvalid.Error())
	}

	s := &States{codes: make(map[string]string, len(table))}
	for name, code := range table {
		s.codes[SanitizeStateName(name)] = strings.ToUpper(code)
	}
	return s, nil
}

// Code returns the two-letter code for a full state name, or "" if unknown.
func (s *States) Code(name string) string {
	return s.codes[SanitizeStateName(name)]
}

// SanitizeStateName lower-cases name, drops punctuation and collapses whitespace,
// so that "new   york." and "New York" compare equal.
func SanitizeStateName(name string) string {
	name = cases.Fold().String(name)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return r
		case unicode.IsSpace(r), r == '-', r == '_':
			return ' '
		default:
			return -1
		}
	}, name)
	return strings.Join(strings.Fields(cleaned), " ")
}
