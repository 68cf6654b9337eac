package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"digitex_go/internal/domain"
)

// Config holds the whole application configuration. After LoadConfig reads
// the file, sensitive values are overridden from the environment.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Venue struct {
		WSURL   string   `yaml:"ws_url"`
		RestURL string   `yaml:"rest_url"`
		APIKey  string   `yaml:"api_key"`
		Markets []string `yaml:"markets"` // venue market codes to subscribe
	} `yaml:"venue"`

	Engine struct {
		InboxSize int `yaml:"inbox_size"`
	} `yaml:"engine"`

	Journal struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"journal"`

	RefData struct {
		// TablePath optionally replaces the built-in reference table.
		TablePath string `yaml:"table_path"`
	} `yaml:"refdata"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if c.Venue.WSURL == "" || (!hasPrefix(c.Venue.WSURL, "ws://") && !hasPrefix(c.Venue.WSURL, "wss://")) {
		return fmt.Errorf("invalid venue WS URL: %s", c.Venue.WSURL)
	}
	if len(c.Venue.Markets) == 0 {
		return fmt.Errorf("at least one market code is required")
	}
	if c.Engine.InboxSize < 0 {
		return fmt.Errorf("inbox size must be non-negative")
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("journal enabled without a path")
	}
	return nil
}

// InboxSize returns the configured inbox capacity or a sane default.
func (c *Config) InboxSize() int {
	if c.Engine.InboxSize == 0 {
		return 1024
	}
	return c.Engine.InboxSize
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[0:len(prefix)] == prefix
}

// overrideWithEnv overrides settings from environment variables when present.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("DIGITEX_API_KEY"); key != "" {
		cfg.Venue.APIKey = key
	}
	if url := os.Getenv("DIGITEX_WS_URL"); url != "" {
		cfg.Venue.WSURL = url
	}
	if url := os.Getenv("DIGITEX_REST_URL"); url != "" {
		cfg.Venue.RestURL = url
	}
}
