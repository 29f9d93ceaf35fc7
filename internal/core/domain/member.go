// Package domain holds the core types of the team map resolver.
package domain

import (
	"cmp"
	"slices"
)

const (
	// MemberTypeVacancy marks a roster entry that is an open position, not a person.
	MemberTypeVacancy = "vacancy"

	// CountryRemote is the country value used by members without a fixed country.
	CountryRemote = "Remote"

	// SlugOpenRoles is the slug of the placeholder entry that links to open roles.
	SlugOpenRoles = "open-roles"
)

// Member is a single team roster entry.
type Member struct {
	Name      string `yaml:"name"`
	Slug      string `yaml:"slug"`
	Type      string `yaml:"type"`
	StartDate string `yaml:"start_date"`
	Locality  string `yaml:"locality"`
	Country   string `yaml:"country"`
	Picture   string `yaml:"picture"`

	// Key is the identity key computed for this run. It is never read from the roster.
	Key IdentityKey `yaml:"-"`
}

// IsPlaceholder reports whether the entry is a vacancy, the open roles link,
// or a member without a resolvable country.
func (m Member) IsPlaceholder() bool {
	return m.Type == MemberTypeVacancy ||
		m.Country == "" ||
		m.Country == CountryRemote ||
		m.Slug == SlugOpenRoles
}

// SortByStartDate orders members by start date ascending.
// Members sharing a start date keep their roster order.
func SortByStartDate(members []Member) {
	slices.SortStableFunc(members, func(a, b Member) int {
		return cmp.Compare(a.StartDate, b.StartDate)
	})
}
