package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockAdapter struct {
	src       domain.Source
	kinds     []domain.QueryKind
	FetchFunc func(ctx context.Context, query string) (provider.Payload, error)
	queries   []string
}

func (m *mockAdapter) Source() domain.Source { return m.src }

func (m *mockAdapter) Accepts(kind domain.QueryKind) bool {
	for _, k := range m.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (m *mockAdapter) Fetch(ctx context.Context, query string) (provider.Payload, error) {
	m.queries = append(m.queries, query)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, query)
	}
	return nil, domain.NewProviderError(m.src, domain.ErrNotFound, nil)
}

func newPrimary(fn func(ctx context.Context, query string) (provider.Payload, error)) *mockAdapter {
	return &mockAdapter{src: domain.SourcePrimary, kinds: []domain.QueryKind{domain.QueryKindWord}, FetchFunc: fn}
}

func newSecondary(fn func(ctx context.Context, query string) (provider.Payload, error)) *mockAdapter {
	return &mockAdapter{
		src:       domain.SourceSecondary,
		kinds:     []domain.QueryKind{domain.QueryKindWord, domain.QueryKindPhrase},
		FetchFunc: fn,
	}
}

// ===========================================================================
// Helpers
// ===========================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func dictionaryPayload(word string) func(context.Context, string) (provider.Payload, error) {
	return func(context.Context, string) (provider.Payload, error) {
		pos := "noun"
		return &provider.DictionaryResult{
			Word:   word,
			Senses: []provider.SenseResult{{Definition: "definition of " + word, PartOfSpeech: &pos}},
		}, nil
	}
}

func textPayload(text string) func(context.Context, string) (provider.Payload, error) {
	return func(_ context.Context, query string) (provider.Payload, error) {
		return &provider.TextResult{Query: query, Model: "m", Text: text}, nil
	}
}

func failWith(src domain.Source, kind error) func(context.Context, string) (provider.Payload, error) {
	return func(context.Context, string) (provider.Payload, error) {
		return nil, domain.NewProviderError(src, kind, nil)
	}
}

// ===========================================================================
// Resolve
// ===========================================================================

func TestService_Resolve_PrimarySuccess(t *testing.T) {
	t.Parallel()

	primary := newPrimary(dictionaryPayload("run"))
	secondary := newSecondary(textPayload("unused"))
	svc := NewService(testLogger(), primary, secondary)

	got, err := svc.Resolve(context.Background(), "run")
	require.NoError(t, err)

	assert.Equal(t, domain.SourcePrimary, got.Source)
	assert.Equal(t, "run", got.Headword)
	assert.True(t, got.HasSenses())
	assert.Equal(t, []string{"run"}, primary.queries)
	assert.Empty(t, secondary.queries)
}

func TestService_Resolve_FallsBackOnPrimaryFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fetch func(context.Context, string) (provider.Payload, error)
	}{
		{"not found", failWith(domain.SourcePrimary, domain.ErrNotFound)},
		{"unavailable", failWith(domain.SourcePrimary, domain.ErrUnavailable)},
		{"timeout", failWith(domain.SourcePrimary, domain.ErrTimeout)},
		{"zero senses", func(context.Context, string) (provider.Payload, error) {
			return &provider.DictionaryResult{Word: "run"}, nil
		}},
		{"unwrapped error", func(context.Context, string) (provider.Payload, error) {
			return nil, errors.New("boom")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			primary := newPrimary(tt.fetch)
			secondary := newSecondary(textPayload("**Verb**\n1. To move fast."))
			svc := NewService(testLogger(), primary, secondary)

			got, err := svc.Resolve(context.Background(), "run")
			require.NoError(t, err)

			assert.Equal(t, domain.SourceSecondary, got.Source)
			assert.Len(t, primary.queries, 1)
			assert.Equal(t, []string{"run"}, secondary.queries)
		})
	}
}

func TestService_Resolve_PhraseSkipsPrimary(t *testing.T) {
	t.Parallel()

	primary := newPrimary(dictionaryPayload("give up"))
	secondary := newSecondary(textPayload(`{"word":"give up","senses":[{"definition":"to stop trying"}]}`))
	svc := NewService(testLogger(), primary, secondary)

	got, err := svc.Resolve(context.Background(), "  give   up ")
	require.NoError(t, err)

	assert.Equal(t, domain.SourceSecondary, got.Source)
	assert.Empty(t, primary.queries)
	assert.Equal(t, []string{"give up"}, secondary.queries)
}

func TestService_Resolve_MissingCredential(t *testing.T) {
	t.Parallel()

	primary := newPrimary(dictionaryPayload("unused"))
	secondary := newSecondary(failWith(domain.SourceSecondary, domain.ErrUnconfigured))
	svc := NewService(testLogger(), primary, secondary)

	_, err := svc.Resolve(context.Background(), "break the ice")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.NotErrorIs(t, err, domain.ErrLookupFailed)

	var re *domain.ResolveError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "break the ice", re.Query)
	require.Len(t, re.Attempts, 2)
	assert.ErrorIs(t, re.Attempts[0], domain.ErrIneligible)
	assert.ErrorIs(t, re.Attempts[1], domain.ErrUnconfigured)
}

func TestService_Resolve_WordWithMissingCredential(t *testing.T) {
	t.Parallel()

	primary := newPrimary(failWith(domain.SourcePrimary, domain.ErrNotFound))
	secondary := newSecondary(failWith(domain.SourceSecondary, domain.ErrUnconfigured))
	svc := NewService(testLogger(), primary, secondary)

	_, err := svc.Resolve(context.Background(), "zzxq")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestService_Resolve_LookupFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		primaryKind   error
		secondaryKind error
		allMisses     bool
	}{
		{"both miss", domain.ErrNotFound, domain.ErrMalformedResponse, true},
		{"secondary down", domain.ErrNotFound, domain.ErrUnavailable, false},
		{"secondary timeout", domain.ErrUnavailable, domain.ErrTimeout, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(testLogger(),
				newPrimary(failWith(domain.SourcePrimary, tt.primaryKind)),
				newSecondary(failWith(domain.SourceSecondary, tt.secondaryKind)),
			)

			got, err := svc.Resolve(context.Background(), "word")
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrLookupFailed)

			var re *domain.ResolveError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.allMisses, re.AllMisses())
			assert.Len(t, re.Attempts, 2)
		})
	}
}

func TestService_Resolve_UnstructuredTextIsOneSense(t *testing.T) {
	t.Parallel()

	text := "An informal expression of surprise or delight."
	svc := NewService(testLogger(),
		newPrimary(failWith(domain.SourcePrimary, domain.ErrNotFound)),
		newSecondary(textPayload(text)),
	)

	got, err := svc.Resolve(context.Background(), "wowzers")
	require.NoError(t, err)

	require.Len(t, got.Entries, 1)
	assert.Equal(t, text, got.Entries[0].Definition)
	assert.Nil(t, got.Entries[0].PartOfSpeech)
	assert.Empty(t, got.Entries[0].Examples)
	assert.Equal(t, "wowzers", got.Headword)
}

func TestService_Resolve_Validation(t *testing.T) {
	t.Parallel()

	primary := newPrimary(dictionaryPayload("x"))
	secondary := newSecondary(textPayload("x"))
	svc := NewService(testLogger(), primary, secondary)

	for _, q := range []string{"", "   \t\n", strings.Repeat("a", MaxQueryLength+1)} {
		_, err := svc.Resolve(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrValidation, "query %q", q)

		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))
	}
	assert.Empty(t, primary.queries)
	assert.Empty(t, secondary.queries)
}

func TestService_Resolve_CancelledContext(t *testing.T) {
	t.Parallel()

	primary := newPrimary(dictionaryPayload("run"))
	svc := NewService(testLogger(), primary, newSecondary(textPayload("x")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Resolve(ctx, "run")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, primary.queries)
}

func TestService_Resolve_DeadlineFromAdapterIsTimeout(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(),
		newPrimary(func(context.Context, string) (provider.Payload, error) {
			return nil, fmt.Errorf("get: %w", context.DeadlineExceeded)
		}),
	)

	_, err := svc.Resolve(context.Background(), "run")

	var re *domain.ResolveError
	require.True(t, errors.As(err, &re))
	require.Len(t, re.Attempts, 1)
	assert.ErrorIs(t, re.Attempts[0], domain.ErrTimeout)
}

func TestService_Resolve_NoAdapters(t *testing.T) {
	t.Parallel()

	_, err := NewService(testLogger()).Resolve(context.Background(), "run")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestService_Resolve_Deterministic(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(),
		newPrimary(dictionaryPayload("run")),
		newSecondary(textPayload("x")),
	)

	first, err := svc.Resolve(context.Background(), "run")
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), "run")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
