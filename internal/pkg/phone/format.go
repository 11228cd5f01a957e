// Package phone formats canonical numbers for display.
package phone

import (
	"github.com/nyaruka/phonenumbers"
)

// Display renders a canonical number in international format. Numbers that
// cannot be parsed are returned unchanged.
func Display(number, region string) string {
	if number == "" {
		return number
	}
	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return number
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}

// Region returns the ISO 3166-1 alpha-2 code the number belongs to, or "".
func Region(number, defaultRegion string) string {
	parsed, err := phonenumbers.Parse(number, defaultRegion)
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(parsed)
}
