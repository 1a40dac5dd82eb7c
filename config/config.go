// Package config loads the settings of the dsk tool.
//
// Settings come from the defaults, then TOML files, then environment
// variables (a .env file in the working directory is read first).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all the settings of dsk.
type Config struct {
	// PortfolioFile is the JSON portfolio file.
	PortfolioFile string `toml:"portfolio_file"`
	// FreeAllowance is used when the portfolio file has no tax configuration.
	FreeAllowance float64       `toml:"free_allowance"`
	Logging       LoggingConfig `toml:"logging"`
	Quote         QuoteConfig   `toml:"quote"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// QuoteConfig is the web service prices are read from.
type QuoteConfig struct {
	// URL contains a {ticker} placeholder.
	URL     string `toml:"url"`
	Path    string `toml:"path"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *QuoteConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		PortfolioFile: "portfolio.json",
		FreeAllowance: 1000,
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
		Quote: QuoteConfig{
			URL:     "https://query1.finance.yahoo.com/v7/finance/quote?symbols={ticker}",
			Path:    "$.quoteResponse.result[0].regularMarketPrice",
			Timeout: "30s",
		},
	}
}

// DefaultPath returns the user config file, in the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "divistack", "config.toml")
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones, missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// .env does not override variables already set.
	_ = godotenv.Load()
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies DIVISTACK_* environment variables to config
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("DIVISTACK_PORTFOLIO"); v != "" {
		config.PortfolioFile = v
	}
	if v := os.Getenv("DIVISTACK_FREE_ALLOWANCE"); v != "" {
		a, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid DIVISTACK_FREE_ALLOWANCE %q: %w", v, err)
		}
		config.FreeAllowance = a
	}
	if v := os.Getenv("DIVISTACK_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("DIVISTACK_LOG_PRETTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Logging.Pretty = b
		}
	}
	if v := os.Getenv("DIVISTACK_QUOTE_URL"); v != "" {
		config.Quote.URL = v
	}
	if v := os.Getenv("DIVISTACK_QUOTE_PATH"); v != "" {
		config.Quote.Path = v
	}
	if v := os.Getenv("DIVISTACK_QUOTE_TIMEOUT"); v != "" {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid DIVISTACK_QUOTE_TIMEOUT %q: %w", v, err)
		}
		config.Quote.Timeout = v
	}
	return nil
}
