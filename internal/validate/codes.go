// Package validate provides the static reference-data lookups used for
// argument validation: ISO 3166-1 alpha-2 country codes and ISO 639-1
// language codes, backed by golang.org/x/text.
package validate

import (
	"strings"

	"golang.org/x/text/language"
)

// CountryCode reports whether code is a known ISO 3166-1 alpha-2 country
// code. Matching is case-insensitive. Well-formed but unassigned codes
// ("ZZ", user-assigned ranges) are rejected.
func CountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}

	region, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil {
		return false
	}

	return region.IsCountry()
}

// LanguageCode reports whether code is a known ISO 639-1 language code.
// Matching is case-insensitive; three-letter ISO 639-2/3 codes are rejected,
// matching the two-letter contract of the API.
func LanguageCode(code string) bool {
	if len(code) != 2 {
		return false
	}

	_, err := language.ParseBase(strings.ToLower(code))

	return err == nil
}
