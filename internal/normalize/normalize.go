// Package normalize maps raw provider payloads onto domain.LookupResult.
//
// Structured dictionary payloads are mapped field by field. Generative text
// payloads are parsed best-effort: an embedded JSON entry first, then
// structural markers in plain text, and finally the whole text as a single
// sense. A payload that yields no sense is reported as
// domain.ErrMalformedResponse.
package normalize

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

// maxSynonyms caps the synonyms carried by a result.
const maxSynonyms = 10

// Normalize converts a provider payload into a LookupResult.
// The payload is not modified.
func Normalize(payload provider.Payload) (*domain.LookupResult, error) {
	switch p := payload.(type) {
	case *provider.DictionaryResult:
		return Dictionary(p)
	case *provider.TextResult:
		return Text(p)
	default:
		return nil, fmt.Errorf("normalize: unsupported payload %T", payload)
	}
}

func malformed(src domain.Source, format string, args ...any) error {
	return domain.NewProviderError(src, domain.ErrMalformedResponse, fmt.Errorf(format, args...))
}

// dedupeSynonyms keeps the first occurrence of each synonym (case-insensitive)
// and caps the list at maxSynonyms.
func dedupeSynonyms(lists ...[]string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			key := strings.ToLower(s)
			if s == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
			if len(out) == maxSynonyms {
				return out
			}
		}
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func cleanExamples(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
