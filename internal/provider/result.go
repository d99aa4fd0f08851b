package provider

import "github.com/heartmarshall/vocabvault-backend/internal/domain"

// Payload is a raw provider response awaiting normalization.
type Payload interface {
	Source() domain.Source
}

// DictionaryResult is the structured result from a dictionary API provider.
// Fields mirror the provider's own schema; shaping into a LookupResult is the
// normalizer's job.
type DictionaryResult struct {
	Word           string
	Phonetic       string
	Senses         []SenseResult
	Pronunciations []PronunciationResult
	Synonyms       []string
}

func (*DictionaryResult) Source() domain.Source { return domain.SourcePrimary }

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech *string
	Examples     []string
	Synonyms     []string
}

// PronunciationResult represents pronunciation data from an external dictionary.
type PronunciationResult struct {
	Transcription *string
	AudioURL      *string
}

// TextResult is the free-form answer of a generative provider, captured verbatim.
type TextResult struct {
	Query string
	Model string
	Text  string
}

func (*TextResult) Source() domain.Source { return domain.SourceSecondary }
