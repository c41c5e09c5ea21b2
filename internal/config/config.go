package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "TOOLBAR_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TOOLBAR_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: TOOLBAR_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if strings.TrimSpace(c.ToolbarTitle) == "" {
		return fmt.Errorf("toolbar_title is required")
	}
	if _, err := parsePositive("session_ttl", c.SessionTTL); err != nil {
		return err
	}
	if _, err := parsePositive("request_timeout", c.RequestTimeout); err != nil {
		return err
	}
	if c.MaxViews < 1 {
		return fmt.Errorf("max_views must be at least 1, got %d", c.MaxViews)
	}
	for _, p := range c.Stylesheets {
		if strings.HasPrefix(p, "/") || strings.Contains(p, "..") {
			return fmt.Errorf("stylesheet pattern %q must be relative to frontend_dir", p)
		}
	}
	return nil
}

// SessionTTLDuration returns session_ttl as a duration.
func (c *Config) SessionTTLDuration() time.Duration {
	d, _ := parsePositive("session_ttl", c.SessionTTL)
	return d
}

// RequestTimeoutDuration returns request_timeout as a duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := parsePositive("request_timeout", c.RequestTimeout)
	return d
}

func parsePositive(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
