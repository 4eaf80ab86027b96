package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	News   NewsConfig   `toml:"news"`
	Search SearchConfig `toml:"search"`
	AI     AIConfig     `toml:"ai"`
	Server ServerConfig `toml:"server"`
}

// NewsConfig holds live news provider settings.
type NewsConfig struct {
	APIKey          string `toml:"api_key"`
	Region          string `toml:"region"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
	MockMode        bool   `toml:"mock_mode"`
}

// SearchConfig holds the secondary web-search provider used for
// corroboration. Provider may be "bing", "googlenews", or empty to disable
// corroboration entirely.
type SearchConfig struct {
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
	TopK     int    `toml:"top_k"`
}

// AIConfig holds the answer-service provider settings.
type AIConfig struct {
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

const defaultConfigContent = `[news]
api_key = ""                      # NewsAPI key (or set NEWS_API_KEY env var)
region = "us"                     # Two-letter country code for headlines
cache_ttl_seconds = 900           # Live results are cached per TTL bucket
mock_mode = false                 # Force the deterministic mock dataset

[search]
provider = "bing"                 # "bing", "googlenews", or "" to disable
api_key = ""                      # Bing subscription key (or SEARCH_API_KEY)
top_k = 5

[ai]
provider = "openai"               # "anthropic" or "openai"
api_key = ""                      # Your API key (or set AI_API_KEY env var)
model = "gpt-4o-mini"

[server]
port = 8080
`

// Load reads and parses the TOML config from the given path. If the file does
// not exist, it creates a default config file at that path. Environment
// variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "cache_ttl_seconds = 0" is an error rather than
	// silently being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	if md.IsDefined("news", "cache_ttl_seconds") {
		if cfg.News.CacheTTLSeconds < 1 {
			return fmt.Errorf("invalid news.cache_ttl_seconds %d: must be >= 1", cfg.News.CacheTTLSeconds)
		}
	}
	if md.IsDefined("search", "top_k") {
		if cfg.Search.TopK < 1 {
			return fmt.Errorf("invalid search.top_k %d: must be >= 1", cfg.Search.TopK)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.News.Region == "" {
		cfg.News.Region = "us"
	}
	if cfg.News.CacheTTLSeconds == 0 {
		cfg.News.CacheTTLSeconds = 900
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = 5
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "openai"
	}
	if cfg.AI.Model == "" {
		switch cfg.AI.Provider {
		case "anthropic":
			cfg.AI.Model = "claude-haiku-4-5"
		default:
			cfg.AI.Model = "gpt-4o-mini"
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
//
// Priority for ai.api_key:
//  1. AI_API_KEY (generic, highest)
//  2. ANTHROPIC_API_KEY (when provider is "anthropic")
//  3. OPENAI_API_KEY (when provider is "openai")
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("REGION"); v != "" {
		cfg.News.Region = v
	}
	if v := os.Getenv("CACHE_TTL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.News.CacheTTLSeconds = n
		} else {
			slog.Warn("ignoring invalid CACHE_TTL_SEC", "value", v)
		}
	}
	if v := os.Getenv("MOCK_MODE"); v != "" {
		cfg.News.MockMode = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("SEARCH_API_KEY"); v != "" {
		cfg.Search.APIKey = strings.TrimSpace(v)
	}

	// Apply provider-specific env var first (lower priority).
	switch cfg.AI.Provider {
	case "anthropic":
		if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
			cfg.AI.APIKey = v
		}
	case "openai":
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			cfg.AI.APIKey = v
		}
	}

	// AI_API_KEY overrides everything (highest priority).
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	switch cfg.AI.Provider {
	case "anthropic", "openai":
		// valid
	default:
		return fmt.Errorf("invalid ai.provider %q: must be \"anthropic\" or \"openai\"", cfg.AI.Provider)
	}

	switch cfg.Search.Provider {
	case "", "bing", "googlenews":
		// valid; empty disables corroboration
	default:
		return fmt.Errorf("invalid search.provider %q: must be \"bing\", \"googlenews\", or empty", cfg.Search.Provider)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if len(cfg.News.Region) != 2 {
		return fmt.Errorf("invalid news.region %q: must be a two-letter country code", cfg.News.Region)
	}

	if cfg.News.APIKey == "" && !cfg.News.MockMode {
		slog.Warn("news.api_key is empty: falling back to the mock dataset until a key is configured")
	}

	return nil
}
