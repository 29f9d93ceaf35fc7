// Package query turns raw roster locations into geocoding requests.
package query

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// LocalityAnywhere is the roster value for members without a fixed location.
	LocalityAnywhere = "Anywhere"

	// LocalityTBD marks a locality that is not known yet. It resolves at country level.
	LocalityTBD = "TBD"

	prefixHintLen = 3
)

// ambiguousPrefixes defeat a starts-with search because the service abbreviates them differently.
var ambiguousPrefixes = []string{"St. ", "San "}

// NormalizeLocality trims raw and upper-cases its first letter.
// "Anywhere" becomes the empty string.
func NormalizeLocality(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	s = cases.Upper(language.Und).String(string(r)) + s[size:]

	if s == LocalityAnywhere {
		return ""
	}
	return s
}

// ApplyAliases rewrites raw through the alias table and reports whether an alias matched.
// An alias without a target yields the empty string, so the caller falls back to the country.
func ApplyAliases(aliases map[string]*string, raw string) (string, bool) {
	target, ok := aliases[raw]
	if !ok {
		return raw, false
	}
	if target == nil {
		return "", true
	}
	return *target, true
}

// IsAmbiguousPrefix reports whether the first characters of name are unsafe
// as a name prefix filter.
func IsAmbiguousPrefix(name string) bool {
	if name == "" {
		return true
	}

	if slices.ContainsFunc(ambiguousPrefixes, func(prefix string) bool {
		return strings.HasPrefix(name, prefix)
	}) {
		return true
	}

	return slices.ContainsFunc(firstRunes(name, prefixHintLen), isNonWord)
}

// isNonWord is the complement of \w: letters, digits and the underscore are word runes.
func isNonWord(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func firstRunes(s string, n int) []rune {
	runes := make([]rune, 0, n)
	for _, r := range s {
		if len(runes) == n {
			break
		}
		runes = append(runes, r)
	}
	return runes
}
