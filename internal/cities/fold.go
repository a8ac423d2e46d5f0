package cities

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder strips combining marks: decompose, drop the marks, recompose.
// "Brasília" and "brasilia" fold to the same key.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases a name and removes its diacritics, producing the
// search key stored in (and matched against) the index.
func Fold(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		// Transform only fails on malformed input; fall back to the raw
		// string rather than losing the row.
		folded = s
	}
	return strings.ToLower(folded)
}
