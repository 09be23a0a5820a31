package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the run settings. Precedence, lowest first: DefaultConfig,
// the YAML file, USI_* environment variables, command-line flags.
type Config struct {
	// MaxLinks is the number of connectors the game allows at once.
	MaxLinks int `yaml:"max_links" env:"USI_MAX_LINKS"`
	// Ignore lists foci excluded from the search and the report.
	Ignore []string `yaml:"ignore" env:"USI_IGNORE" envSeparator:","`
	// Workers bounds how many crew allocations are explored concurrently.
	// Results do not depend on it.
	Workers int `yaml:"workers" env:"USI_WORKERS"`
	// CatalogPath replaces the embedded catalog when set.
	CatalogPath string `yaml:"catalog" env:"USI_CATALOG"`
	// DBPath enables run history in a SQLite file.
	DBPath string `yaml:"db" env:"USI_DB"`
	// MetricsFile receives search counters in Prometheus text format.
	MetricsFile string `yaml:"metrics_file" env:"USI_METRICS_FILE"`
	JSON        bool   `yaml:"json" env:"USI_JSON"`
	Verbose     bool   `yaml:"verbose" env:"USI_VERBOSE"`
}

func DefaultConfig() Config {
	return Config{
		MaxLinks: 6,
		Ignore:   []string{"Fghtr", "Shard"},
		Workers:  1,
	}
}

// LoadConfig builds a Config from defaults, an optional YAML file and the
// environment. A missing file is not an error when path is empty. The result
// is not validated: flags may still override it, so callers run Validate
// once everything is applied.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.MaxLinks < 0 {
		errs = append(errs, fmt.Errorf("max_links must be >= 0, got %d", c.MaxLinks))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}
	if _, err := c.IgnoreSet(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// IgnoreSet resolves Ignore against the focus domain.
func (c Config) IgnoreSet() (FocusSet, error) {
	var out FocusSet
	for _, name := range c.Ignore {
		f := parseFocus(name)
		if f == FocusNone {
			return 0, &ConfigurationError{Entry: "config", Field: "ignored focus", Value: name}
		}
		out = out.Add(f)
	}
	return out, nil
}
