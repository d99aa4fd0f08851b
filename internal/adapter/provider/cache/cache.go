// Package cache provides a bounded in-memory cache in front of a lookup
// adapter. Only successful payloads are cached; misses and failures always
// reach the wrapped adapter.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

type adapter interface {
	Source() domain.Source
	Accepts(kind domain.QueryKind) bool
	Fetch(ctx context.Context, query string) (provider.Payload, error)
}

// Provider wraps an adapter with an LRU cache keyed by the normalized query.
// Cached payloads are shared between callers and must be treated as read-only.
type Provider struct {
	next adapter
	lru  *expirable.LRU[string, provider.Payload]
	log  *slog.Logger
}

// New creates a caching Provider holding at most size entries for ttl each.
func New(next adapter, size int, ttl time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		next: next,
		lru:  expirable.NewLRU[string, provider.Payload](size, nil, ttl),
		log:  logger.With("adapter", "cache", "source", next.Source().String()),
	}
}

func (p *Provider) Source() domain.Source { return p.next.Source() }

func (p *Provider) Accepts(kind domain.QueryKind) bool { return p.next.Accepts(kind) }

// Fetch returns the cached payload for query or delegates to the wrapped adapter.
func (p *Provider) Fetch(ctx context.Context, query string) (provider.Payload, error) {
	key := domain.NormalizeText(query)

	if payload, ok := p.lru.Get(key); ok {
		p.log.DebugContext(ctx, "cache hit", slog.String("query", key))
		return payload, nil
	}

	payload, err := p.next.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	p.lru.Add(key, payload)
	return payload, nil
}

// Len returns the number of cached entries.
func (p *Provider) Len() int { return p.lru.Len() }
