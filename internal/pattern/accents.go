package pattern

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripTransform decomposes to NFD, drops combining marks, and recomposes,
// so á becomes a while characters without a decomposition pass through.
var stripTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripAccents returns the unaccented base letter for r, or r itself when it
// has no canonical decomposition (or decomposes to something that is not a
// single letter, like a ligature).
func stripAccents(r rune) rune {
	stripped, _, err := transform.String(stripTransform, string(r))
	if err != nil {
		return r
	}
	base := []rune(stripped)
	if len(base) != 1 || !unicode.IsLetter(base[0]) {
		return r
	}
	return base[0]
}
