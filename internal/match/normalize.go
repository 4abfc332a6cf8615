package match

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize prepares a title or name for comparison: full-width characters
// are folded to their half-width forms, the result is NFKC-normalized,
// lowercased, and runs of whitespace collapse to single spaces.
//
// The width fold matters for Japanese storefront data, where the same
// title routinely appears in both ＡＢＣ and ABC renderings; treating those
// as distinct would reject correct candidates.
func Normalize(s string) string {
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
