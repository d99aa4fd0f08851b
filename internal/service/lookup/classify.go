package lookup

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

// Classify decides whether query is a single dictionary word or a phrase.
// A word is exactly one whitespace-separated token made of letters, marks,
// digits, apostrophes and hyphens, with at least one letter.
func Classify(query string) domain.QueryKind {
	fields := strings.Fields(query)
	if len(fields) != 1 {
		return domain.QueryKindPhrase
	}

	hasLetter := false
	for _, r := range fields[0] {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsMark(r), unicode.IsDigit(r), r == '\'', r == '’', r == '-':
		default:
			return domain.QueryKindPhrase
		}
	}
	if !hasLetter {
		return domain.QueryKindPhrase
	}
	return domain.QueryKindWord
}
