package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/dex/internal/api"
	"github.com/gravitrone/dex/internal/catalog"
)

// BaseURLEnv overrides base_url when set.
const BaseURLEnv = "DEX_BASE_URL"

const (
	defaultConcurrency = 8
	defaultTimeout     = 30 * time.Second
)

// Config holds CLI configuration stored at ~/.dex/config.
type Config struct {
	BaseURL          string   `yaml:"base_url"`
	PageSize         int      `yaml:"page_size"`
	EntryLimit       int      `yaml:"entry_limit"`
	FetchConcurrency int      `yaml:"fetch_concurrency"`
	Timeout          Duration `yaml:"timeout"`
	LogFile          string   `yaml:"log_file,omitempty"`
	LogLevel         string   `yaml:"log_level,omitempty"`
}

// Duration is a time.Duration written as a Go duration string in YAML.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:          api.DefaultBaseURL,
		PageSize:         catalog.DefaultPageSize,
		EntryLimit:       api.DefaultEntryLimit,
		FetchConcurrency: defaultConcurrency,
		Timeout:          Duration(defaultTimeout),
		LogLevel:         "info",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dex", "config")
}

// Load reads the config file and fills unset fields with defaults. A missing
// file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(BaseURLEnv)); env != "" {
		cfg.BaseURL = env
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	def := Default()
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = def.BaseURL
	}
	if c.PageSize == 0 {
		c.PageSize = def.PageSize
	}
	if c.EntryLimit == 0 {
		c.EntryLimit = def.EntryLimit
	}
	if c.FetchConcurrency == 0 {
		c.FetchConcurrency = def.FetchConcurrency
	}
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("config base_url must be an http(s) URL: %q", c.BaseURL)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("config page_size must be positive: %d", c.PageSize)
	}
	if c.EntryLimit < 1 {
		return fmt.Errorf("config entry_limit must be positive: %d", c.EntryLimit)
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("config fetch_concurrency must be positive: %d", c.FetchConcurrency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config timeout must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// HTTPTimeout returns the configured timeout as a time.Duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeout)
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
