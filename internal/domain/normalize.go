package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// NormalizeText builds the comparison key of a headword, query or tag:
// NFC-composed, lowercased, typographic apostrophes folded to ASCII, and
// any run of whitespace collapsed to a single space. Diacritics and hyphens
// are kept.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	joined := strings.Join(fields, " ")
	return apostrophes.Replace(strings.ToLower(norm.NFC.String(joined)))
}
