package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration with priority ENV > YAML > env-default tags.
//
// The YAML path comes from CONFIG_PATH. When CONFIG_PATH is unset and
// ./config.yaml is absent, only ENV and defaults are used. PORT is honored
// as a fallback for SERVER_PORT so that platform-assigned ports work. A
// blank SERVER_PORT counts as unset.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	explicit = explicit && path != ""
	if !explicit {
		path = defaultConfigPath
	}

	// A blank SERVER_PORT (common in templated manifests) means unset;
	// cleanenv would otherwise fail to parse it as a number.
	if v, ok := os.LookupEnv("SERVER_PORT"); ok && v == "" {
		if err := os.Unsetenv("SERVER_PORT"); err != nil {
			return nil, fmt.Errorf("config: unset SERVER_PORT: %w", err)
		}
	}

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}

	if err := applyPortFallback(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}

func applyPortFallback(cfg *Config) error {
	if os.Getenv("SERVER_PORT") != "" {
		return nil
	}
	raw := os.Getenv("PORT")
	if raw == "" {
		return nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("config: PORT %q: %w", raw, err)
	}
	cfg.Server.Port = port
	return nil
}
