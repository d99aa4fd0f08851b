package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// A missing LLM credential is not an error: the secondary provider reports
// itself as unconfigured at lookup time.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.LookupPerMinute < 0 {
		return fmt.Errorf("rate_limit.lookup_per_minute must be >= 0 (got %d)", c.RateLimit.LookupPerMinute)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	if err := validateURL(d.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	if d.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", d.CacheSize)
	}
	if d.CacheSize > 0 && d.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 when cache is enabled (got %v)", d.CacheTTL)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if err := validateURL(l.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 1 {
		return fmt.Errorf("temperature must be in [0, 1] (got %v)", l.Temperature)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required (got %q)", raw)
	}
	return nil
}
