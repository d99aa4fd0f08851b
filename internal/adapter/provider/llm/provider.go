// Package llm implements the generative fallback lookup adapter. It talks to
// any endpoint that speaks the Anthropic Messages protocol (MiniMax by
// default) and returns the model's text verbatim; parsing is left to the
// normalizer.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/vocabvault-backend/internal/config"
	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

// Provider looks up words and phrases through a language model.
type Provider struct {
	client      *anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	log         *slog.Logger
}

// NewProvider creates a Provider from LLMConfig. Without an API key the
// provider is still usable, but every Fetch reports domain.ErrUnconfigured.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	p := &Provider{
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		log:         logger.With("adapter", "llm"),
	}

	if cfg.Configured() {
		client := anthropic.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			option.WithMaxRetries(0),
		)
		p.client = &client
	}

	return p
}

// Source reports that results of this adapter are secondary.
func (p *Provider) Source() domain.Source { return domain.SourceSecondary }

// Accepts reports whether the query kind can be looked up. Words and phrases both are.
func (p *Provider) Accepts(kind domain.QueryKind) bool { return kind.IsValid() }

// Configured reports whether the provider has a credential.
func (p *Provider) Configured() bool { return p.client != nil }

// Fetch asks the model for a dictionary entry and returns its first text block.
func (p *Provider) Fetch(ctx context.Context, query string) (provider.Payload, error) {
	if p.client == nil {
		return nil, domain.NewProviderError(domain.SourceSecondary, domain.ErrUnconfigured, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.log.DebugContext(ctx, "llm request", slog.String("query", query), slog.String("model", p.model))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   p.maxTokens,
		Temperature: anthropic.Float(p.temperature),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(query))),
		},
	})
	if err != nil {
		p.log.WarnContext(ctx, "llm request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, classifyError(ctx, err)
	}

	// Reasoning models may emit thinking blocks first; take the first text block.
	var text string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, domain.NewProviderError(domain.SourceSecondary, domain.ErrMalformedResponse,
			fmt.Errorf("no text content in response for %q", query))
	}

	p.log.DebugContext(ctx, "llm response",
		slog.String("query", query),
		slog.Int("chars", len(text)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return &provider.TextResult{
		Query: query,
		Model: string(msg.Model),
		Text:  text,
	}, nil
}

// classifyError maps SDK and transport errors onto lookup error kinds.
func classifyError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewProviderError(domain.SourceSecondary, domain.ErrTimeout, err)
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return domain.NewProviderError(domain.SourceSecondary, domain.ErrUnavailable,
			fmt.Errorf("status %d", apiErr.StatusCode))
	}

	return domain.NewProviderError(domain.SourceSecondary, domain.ErrUnavailable, err)
}
