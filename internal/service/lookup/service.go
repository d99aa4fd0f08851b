// Package lookup resolves a query into a LookupResult by trying provider
// adapters in priority order and normalizing the first usable answer.
package lookup

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/normalize"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

// Adapter is a lookup provider. Implementations report failures as
// *domain.ProviderError and must not retry internally.
type Adapter interface {
	Source() domain.Source
	Accepts(kind domain.QueryKind) bool
	Fetch(ctx context.Context, query string) (provider.Payload, error)
}

// Service implements the lookup resolution pipeline.
type Service struct {
	log      *slog.Logger
	adapters []Adapter
}

// NewService creates a lookup Service. Adapters are tried in the given order.
func NewService(logger *slog.Logger, adapters ...Adapter) *Service {
	return &Service{
		log:      logger.With("service", "lookup"),
		adapters: adapters,
	}
}

// Resolve classifies query and returns the first result with at least one
// sense. Adapters are called one at a time; an adapter that does not accept
// the query kind is skipped without a call.
//
// On failure the error is a *domain.ValidationError or a *domain.ResolveError
// whose Kind is domain.ErrConfiguration when a provider lacked credentials,
// and domain.ErrLookupFailed otherwise.
func (s *Service) Resolve(ctx context.Context, query string) (*domain.LookupResult, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}

	kind := Classify(q)
	log := s.log.With(slog.String("query", q), slog.String("kind", kind.String()))

	var attempts []error
	for _, a := range s.adapters {
		src := a.Source()

		if !a.Accepts(kind) {
			attempts = append(attempts, domain.NewProviderError(src, domain.ErrIneligible, nil))
			continue
		}

		if err := ctx.Err(); err != nil {
			attempts = append(attempts, err)
			break
		}

		result, err := s.attempt(ctx, a, q)
		if err == nil {
			if len(attempts) > 0 {
				log.InfoContext(ctx, "resolved by fallback provider", slog.String("source", src.String()))
			}
			return result, nil
		}

		log.WarnContext(ctx, "provider attempt failed",
			slog.String("source", src.String()),
			slog.String("error", err.Error()),
		)
		attempts = append(attempts, err)
	}

	resolveErr := &domain.ResolveError{Kind: domain.ErrLookupFailed, Query: q, Attempts: attempts}
	for _, a := range attempts {
		if errors.Is(a, domain.ErrUnconfigured) {
			resolveErr.Kind = domain.ErrConfiguration
			break
		}
	}

	log.WarnContext(ctx, "lookup failed", slog.String("error", resolveErr.Error()))
	return nil, resolveErr
}

// attempt fetches and normalizes one provider answer. Every failure comes
// back as a *domain.ProviderError.
func (s *Service) attempt(ctx context.Context, a Adapter, query string) (*domain.LookupResult, error) {
	src := a.Source()

	payload, err := a.Fetch(ctx, query)
	if err != nil {
		return nil, asProviderError(src, domain.ErrUnavailable, err)
	}

	result, err := normalize.Normalize(payload)
	if err != nil {
		return nil, asProviderError(src, domain.ErrMalformedResponse, err)
	}
	if !result.HasSenses() {
		return nil, domain.NewProviderError(src, domain.ErrMalformedResponse, nil)
	}
	return result, nil
}

func asProviderError(src domain.Source, kind, err error) error {
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		kind = domain.ErrTimeout
	}
	return domain.NewProviderError(src, kind, err)
}
