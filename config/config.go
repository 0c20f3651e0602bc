// Package config holds the GreenLoop client configuration. The application
// shell decides where the file lives; this package owns its shape and
// defaults. There are no mode globals: the same Config is handed to whatever
// transport the caller constructs.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	// Endpoint is the single GraphQL URL every operation posts to.
	Endpoint string `yaml:"endpoint"`
	// TimeoutSeconds bounds one round trip; zero means the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Headers are set on every outgoing request, e.g. an API key.
	Headers map[string]string `yaml:"headers"`
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("config: endpoint is required")
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("config: endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: endpoint %q must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("config: endpoint %q has no host", c.Endpoint)
	}

	return nil
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
