package lookup

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

// MaxQueryLength is the longest accepted query, in runes.
const MaxQueryLength = 200

// cleanQuery collapses whitespace and validates the result.
func cleanQuery(raw string) (string, error) {
	q := strings.Join(strings.Fields(raw), " ")

	var errs []domain.FieldError
	switch {
	case q == "":
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	case utf8.RuneCountInString(q) > MaxQueryLength:
		errs = append(errs, domain.FieldError{Field: "query", Message: "too long (max 200)"})
	case !utf8.ValidString(q):
		errs = append(errs, domain.FieldError{Field: "query", Message: "invalid encoding"})
	}

	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return q, nil
}
