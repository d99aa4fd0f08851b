package domain

// LookupResult is the unified definition record returned for a query.
// It is also the exact payload a Favorite stores.
type LookupResult struct {
	Headword string       `json:"headword"`
	Phonetic *string      `json:"phonetic,omitempty"`
	AudioRef *string      `json:"audioRef,omitempty"`
	Entries  []SenseEntry `json:"entries"`
	Synonyms []string     `json:"synonyms,omitempty"`
	Source   Source       `json:"source"`
}

// SenseEntry is one definition unit of a LookupResult.
type SenseEntry struct {
	PartOfSpeech *string  `json:"partOfSpeech,omitempty"`
	Definition   string   `json:"definition"`
	Examples     []string `json:"examples"`
}

// HasSenses reports whether the result satisfies the non-empty entries invariant.
func (r *LookupResult) HasSenses() bool {
	return r != nil && len(r.Entries) > 0
}
