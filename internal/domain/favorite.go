package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxTagsPerFavorite bounds the number of tags a single favorite can carry.
const MaxTagsPerFavorite = 20

// Favorite is a LookupResult saved by a client together with its tags.
type Favorite struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Result    LookupResult
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FavoriteFilter narrows a favorites listing. A favorite matches when it
// carries every tag in Tags.
type FavoriteFilter struct {
	Tags   []string
	Limit  int
	Offset int
}

// NormalizeTags lowercases, trims, and deduplicates tags. The result is
// sorted so that equal tag sets compare equal. Empty tags are dropped.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = NormalizeText(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
