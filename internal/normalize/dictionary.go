package normalize

import (
	"strings"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

// Dictionary maps a structured dictionary payload. Senses keep the
// provider's order; senses without a definition are skipped.
func Dictionary(r *provider.DictionaryResult) (*domain.LookupResult, error) {
	if r == nil {
		return nil, malformed(domain.SourcePrimary, "nil dictionary result")
	}

	result := &domain.LookupResult{
		Headword: strings.TrimSpace(r.Word),
		Phonetic: optional(r.Phonetic),
		Entries:  []domain.SenseEntry{},
		Source:   domain.SourcePrimary,
	}

	for _, pron := range r.Pronunciations {
		if result.Phonetic == nil && pron.Transcription != nil {
			result.Phonetic = optional(*pron.Transcription)
		}
		if result.AudioRef == nil && pron.AudioURL != nil {
			result.AudioRef = audioRef(*pron.AudioURL)
		}
	}

	senseSynonyms := make([][]string, 0, len(r.Senses)+1)
	for _, s := range r.Senses {
		def := strings.TrimSpace(s.Definition)
		if def == "" {
			continue
		}
		entry := domain.SenseEntry{
			Definition: def,
			Examples:   cleanExamples(s.Examples),
		}
		if s.PartOfSpeech != nil {
			entry.PartOfSpeech = optional(*s.PartOfSpeech)
		}
		result.Entries = append(result.Entries, entry)
		senseSynonyms = append(senseSynonyms, s.Synonyms)
	}
	senseSynonyms = append(senseSynonyms, r.Synonyms)
	result.Synonyms = dedupeSynonyms(senseSynonyms...)

	if result.Headword == "" {
		return nil, malformed(domain.SourcePrimary, "dictionary result has no headword")
	}
	if !result.HasSenses() {
		return nil, malformed(domain.SourcePrimary, "no senses for %q", result.Headword)
	}

	return result, nil
}

// audioRef makes protocol-relative audio links absolute and drops anything
// that is not an http(s) URL.
func audioRef(raw string) *string {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "//"):
		raw = "https:" + raw
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
	default:
		return nil
	}
	return &raw
}
