// Package matcher detects whether a phone number typed for a walk-in
// customer already belongs to a registered client, so the operator can be
// offered the existing record instead of creating a duplicate.
package matcher

import (
	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/phone"
)

// suffixLength is how many trailing digits two numbers must share to be
// considered the same line under inconsistent prefixing.
const suffixLength = 9

// FindMatch returns the first client whose phone matches inputPhone.
// Inputs or candidates shorter than phone.MinMatchable digits never match,
// and placeholder candidates (all-same-digit, all-zero) are skipped so that
// seeded dummy data cannot produce false positives.
//
// A match is a suggestion only: callers surface "this phone belongs to X"
// and let the operator accept it explicitly.
func FindMatch(inputPhone string, clients []catalog.Client) (catalog.Client, bool) {
	inputDigits := phone.Digits(inputPhone)
	if len(inputDigits) < phone.MinMatchable {
		return catalog.Client{}, false
	}
	inputNorm := phone.Normalize(inputPhone)

	for _, c := range clients {
		candDigits := phone.Digits(c.Phone)
		if len(candDigits) < phone.MinMatchable || phone.IsPlaceholder(candDigits) {
			continue
		}
		candNorm := phone.Normalize(c.Phone)

		if inputNorm == candNorm {
			return c, true
		}
		// Tolerate one side carrying a prefix the other lacks.
		if len(inputNorm) >= suffixLength && len(candNorm) >= suffixLength &&
			phone.LastN(inputNorm, suffixLength) == phone.LastN(candNorm, suffixLength) {
			return c, true
		}
	}
	return catalog.Client{}, false
}
