package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops non-spacing marks, so "Dúplex" and
// "Duplex" fold to the same form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName canonicalizes a free-text name for duplicate comparison:
// lower-case, accents stripped, all whitespace removed. Never used for display.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// transform only fails on broken UTF-8; fall back to the lowered input
		folded = strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
