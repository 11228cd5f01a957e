// Package domain defines core entities and value objects for findphone.
//
// The domain layer is independent of infrastructure concerns: it holds the
// lookup data model, the number normalizer, error kinds and configuration
// shapes shared by the application and infrastructure layers.
package domain

import "strings"

// MinQueryLength is the shortest canonical number that may be sent to the provider.
const MinQueryLength = 6

// Normalize strips every character that is not a digit or a plus sign.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, raw)
}

// Submittable reports whether a canonical number is long enough to be looked up.
func Submittable(number string) bool {
	return len(number) >= MinQueryLength
}
