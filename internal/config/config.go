// Package config handles TOML configuration loading for the guessarr
// CLI. The matching engine itself needs no configuration; this covers
// the scan workers, the optional corpus database, and user extensions
// to the known-value tables.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/guessarr/pkg/guess"
)

// Config is the root configuration structure.
type Config struct {
	Scan       ScanConfig          `toml:"scan"`
	Database   DatabaseConfig      `toml:"database"`
	Properties map[string][]string `toml:"properties"`
	Synonyms   map[string][]string `toml:"synonyms"`
}

// ScanConfig controls the scan command.
type ScanConfig struct {
	Roots      []string `toml:"roots"`
	Workers    int      `toml:"workers"`
	Extensions []string `toml:"extensions"`
	LogLevel   string   `toml:"log_level"`
}

// DatabaseConfig locates the optional corpus database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// defaultExtensions are the container extensions worth scanning when
// the config does not name any.
var defaultExtensions = []string{
	"avi", "mkv", "mp4", "m4v", "mov", "wmv", "ogv", "ts", "srt", "sub",
}

// Load reads and parses the configuration file, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and
// applies defaults, skipping validation. Useful for commands that only
// need part of the config.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Scan.Workers <= 0 {
		c.Scan.Workers = 4
	}
	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = append([]string(nil), defaultExtensions...)
	}
	if c.Scan.LogLevel == "" {
		c.Scan.LogLevel = "info"
	}
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors. Returns a slice of
// error messages, empty if valid.
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Scan.LogLevel] {
		errs = append(errs, fmt.Sprintf("scan.log_level: must be one of debug, info, warn, error; got %q", c.Scan.LogLevel))
	}
	if c.Scan.Workers > 256 {
		errs = append(errs, fmt.Sprintf("scan.workers: %d is unreasonable, use 256 or fewer", c.Scan.Workers))
	}
	for prop, values := range c.Properties {
		if len(values) == 0 {
			errs = append(errs, fmt.Sprintf("properties.%s: empty value list", prop))
		}
	}
	for canonical, synonyms := range c.Synonyms {
		if len(synonyms) == 0 {
			errs = append(errs, fmt.Sprintf("synonyms.%s: empty synonym list", canonical))
		}
	}
	return errs
}

// MatcherOptions converts the user table extensions into matcher
// options, in deterministic property order.
func (c *Config) MatcherOptions() []guess.Option {
	var opts []guess.Option
	for _, prop := range sortedKeys(c.Properties) {
		opts = append(opts, guess.WithKnownValues(prop, c.Properties[prop]...))
	}
	for _, canonical := range sortedKeys(c.Synonyms) {
		opts = append(opts, guess.WithSynonyms(canonical, c.Synonyms[canonical]...))
	}
	return opts
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
