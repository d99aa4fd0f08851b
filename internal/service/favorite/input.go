package favorite

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

// SaveInput holds the parameters for saving a lookup result.
type SaveInput struct {
	Result domain.LookupResult
	Tags   []string
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeText(i.Result.Headword) == "" {
		errs = append(errs, domain.FieldError{Field: "result.headword", Message: "required"})
	}
	if !i.Result.HasSenses() {
		errs = append(errs, domain.FieldError{Field: "result.entries", Message: "at least one entry required"})
	}
	for n, e := range i.Result.Entries {
		if e.Definition == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("result.entries[%d].definition", n), Message: "required"})
		}
	}
	if !i.Result.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result.source", Message: "must be primary or secondary"})
	}
	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing favorites.
type ListInput struct {
	Tags   []string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	errs = append(errs, validateTags(i.Tags)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTagsInput holds the parameters for replacing a favorite's tags.
type UpdateTagsInput struct {
	ID   uuid.UUID
	Tags []string
}

// Validate checks all fields and collects all errors.
func (i UpdateTagsInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateTags(i.Tags)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	normalized := domain.NormalizeTags(tags)
	if len(normalized) > domain.MaxTagsPerFavorite {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 20)"})
	}
	for _, t := range normalized {
		if utf8.RuneCountInString(t) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag too long (max 50 characters)"})
			break
		}
	}
	return errs
}
