package match

import (
	"strings"
	"unicode"
)

// strippedSuffixes are trimmed by NormalizeStripped, longest first so that
// "ids" wins over "id".
var strippedSuffixes = []string{"timestamp", "ids", "utc", "id", "at"}

// Normalize folds an identifier to lower case and drops '_', '-' and spaces,
// so "OrderID", "order_id" and "order-id" all become "orderid".
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// NormalizeStripped is Normalize followed by removal of one common suffix
// (id, ids, at, utc, timestamp). The suffix is kept when nothing else would
// remain.
func NormalizeStripped(s string) string {
	n := Normalize(s)

	for _, suffix := range strippedSuffixes {
		if len(n) > len(suffix) && strings.HasSuffix(n, suffix) {
			return strings.TrimSuffix(n, suffix)
		}
	}

	return n
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
