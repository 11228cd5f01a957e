package numverify

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize uppercases the first rune only; the rest is left untouched, so
// "united states" becomes "United states".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
