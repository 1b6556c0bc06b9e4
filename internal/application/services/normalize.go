package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldLower = cases.Lower(language.Und)

// normalizeTerm lower-cases a search term and strips diacritics ("Pão" -> "pao").
func normalizeTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return foldLower.String(out)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
