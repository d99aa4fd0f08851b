package freedict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/vocabvault-backend/internal/config"
	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

// maxBodyBytes caps the response body read from the API.
const maxBodyBytes = 2 << 20

// Provider fetches dictionary data from the FreeDictionary API.
// It only accepts single-word queries and never retries on its own.
type Provider struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from DictionaryConfig.
func NewProvider(cfg config.DictionaryConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// Source reports that results of this adapter are primary.
func (p *Provider) Source() domain.Source { return domain.SourcePrimary }

// Accepts reports whether the query kind can be looked up. Only words are.
func (p *Provider) Accepts(kind domain.QueryKind) bool { return kind == domain.QueryKindWord }

// Fetch fetches the dictionary entries for the given word.
// A missing word is reported as domain.ErrNotFound, transport failures and
// unexpected statuses as domain.ErrUnavailable, deadlines as domain.ErrTimeout.
func (p *Provider) Fetch(ctx context.Context, word string) (provider.Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewProviderError(domain.SourcePrimary, domain.ErrUnavailable, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewProviderError(domain.SourcePrimary, domain.ErrNotFound, nil)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewProviderError(domain.SourcePrimary, domain.ErrUnavailable,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(fmt.Errorf("read body: %w", err))
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, domain.NewProviderError(domain.SourcePrimary, domain.ErrUnavailable, fmt.Errorf("decode json: %w", err))
	}

	if len(entries) == 0 {
		return nil, domain.NewProviderError(domain.SourcePrimary, domain.ErrNotFound, nil)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("senses", len(result.Senses)),
		slog.Int("pronunciations", len(result.Pronunciations)),
	)

	return result, nil
}

// transportError classifies a failed round trip as timeout or unavailable.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewProviderError(domain.SourcePrimary, domain.ErrTimeout, err)
	}
	return domain.NewProviderError(domain.SourcePrimary, domain.ErrUnavailable, err)
}

// mapAPIResponse converts the API entries into a provider.DictionaryResult.
// Multiple entries (different etymologies) are merged: senses concatenated,
// pronunciations deduplicated by transcription text.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Senses:         []provider.SenseResult{},
		Pronunciations: []provider.PronunciationResult{},
	}

	if len(entries) == 0 {
		return result
	}

	result.Word = entries[0].Word

	// Key: transcription text, Value: index in result.Pronunciations.
	seenTranscriptions := make(map[string]int)

	for _, entry := range entries {
		if result.Phonetic == "" {
			result.Phonetic = strings.TrimSpace(entry.Phonetic)
		}

		for _, meaning := range entry.Meanings {
			pos := meaning.PartOfSpeech
			for _, def := range meaning.Definitions {
				sense := provider.SenseResult{
					Definition: def.Definition,
					Examples:   []string{},
					Synonyms:   def.Synonyms,
				}
				if pos != "" {
					posCopy := pos
					sense.PartOfSpeech = &posCopy
				}
				if def.Example != "" {
					sense.Examples = append(sense.Examples, def.Example)
				}
				result.Senses = append(result.Senses, sense)
			}
			result.Synonyms = append(result.Synonyms, meaning.Synonyms...)
		}

		for _, ph := range entry.Phonetics {
			pron := mapPhonetic(ph)
			if pron == nil {
				continue
			}

			if pron.Transcription != nil {
				key := *pron.Transcription
				if idx, exists := seenTranscriptions[key]; exists {
					// Keep the first transcription but take audio from a later duplicate.
					if result.Pronunciations[idx].AudioURL == nil && pron.AudioURL != nil {
						result.Pronunciations[idx].AudioURL = pron.AudioURL
					}
					continue
				}
				seenTranscriptions[key] = len(result.Pronunciations)
			}

			result.Pronunciations = append(result.Pronunciations, *pron)
		}
	}

	return result
}

// mapPhonetic converts an API phonetic to a PronunciationResult.
// Returns nil if both text and audio are empty.
func mapPhonetic(ph apiPhonetic) *provider.PronunciationResult {
	if ph.Text == "" && ph.Audio == "" {
		return nil
	}

	pron := &provider.PronunciationResult{}

	if ph.Text != "" {
		t := ph.Text
		pron.Transcription = &t
	}

	if ph.Audio != "" {
		a := ph.Audio
		pron.AudioURL = &a
	}

	return pron
}
