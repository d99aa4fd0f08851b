package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	LLM        LLMConfig        `yaml:"llm"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Client-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// StaticDir, when set, is served at "/" (the browser front-end).
	StaticDir string `yaml:"static_dir" env:"SERVER_STATIC_DIR"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN disables
// the favorites store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// DictionaryConfig holds settings of the primary (structured dictionary) provider.
type DictionaryConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"DICT_BASE_URL"   env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout   time.Duration `yaml:"timeout"    env:"DICT_TIMEOUT"    env-default:"8s"`
	CacheSize int           `yaml:"cache_size" env:"DICT_CACHE_SIZE" env-default:"1024"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"DICT_CACHE_TTL"  env-default:"24h"`
}

// LLMConfig holds settings of the secondary (generative) provider.
// The endpoint speaks the Anthropic Messages protocol.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"     env:"MINIMAX_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"    env-default:"https://api.minimax.io/anthropic/"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"MiniMax-M2.5"`
	MaxTokens   int64         `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"2000"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"1.0"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"30s"`
}

// Configured reports whether the credential needed by the provider is present.
func (c LLMConfig) Configured() bool { return c.APIKey != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables a limit.
type RateLimitConfig struct {
	LookupPerMinute int           `yaml:"lookup_per_minute" env:"RATE_LIMIT_LOOKUP_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}
