// Package phone canonicalizes UAE phone numbers so that the same number
// entered with different prefixes compares equal: "+971501234567",
// "971501234567", "00971501234567" and "0501234567" all normalize to the
// local form "0501234567".
package phone

import "strings"

// localLength is the length of a bare local-format number (05XXXXXXXX).
const localLength = 10

// MinMatchable is the fewest digits a number may have and still be
// considered for client matching. Shorter strings are treated as partial
// input, not a phone number.
const MinMatchable = 7

// Digits strips every non-digit rune from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize strips non-digits and replaces a recognized country-code prefix
// with a single leading "0". The result is idempotent: normalizing an
// already-normalized number returns it unchanged.
func Normalize(raw string) string {
	d := Digits(raw)

	switch {
	case strings.HasPrefix(d, "00971"):
		return "0" + d[len("00971"):]
	case strings.HasPrefix(d, "971") && len(d) > localLength:
		// A bare local number never exceeds 10 digits, so anything longer
		// starting with 971 is carrying the country code.
		return "0" + d[len("971"):]
	}
	return d
}

// LastN returns the trailing n digits of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// IsPlaceholder reports whether d is a dummy number: empty, all zeros, or
// every digit the same. Seed data uses these and they must never match.
func IsPlaceholder(d string) bool {
	if d == "" {
		return true
	}
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
