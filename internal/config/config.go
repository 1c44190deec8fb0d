// Package config loads, validates and saves the bisko configuration file
// ($BISKO_HOME/config.yaml) and merges project-local overlays onto it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatXLSX   = "xlsx"
	FormatPDF    = "pdf"
)

const (
	outputTypeFile    = "file"
	outputTypeStderr  = "stderr"
	defaultPrecision  = 2
	maxPrecision      = 10
	defaultTTLSeconds = 24 * 60 * 60
)

// Config is the complete configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Data    DataConfig    `yaml:"data"`
	Calc    CalcConfig    `yaml:"calc"`
	Cache   CacheConfig   `yaml:"cache"`

	configPath string
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the logger. File empty means stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DataConfig points at the facts and assumptions CSV tables.
type DataConfig struct {
	Facts       string `yaml:"facts,omitempty"`
	Assumptions string `yaml:"assumptions,omitempty"`
}

// CalcConfig controls the engine.
type CalcConfig struct {
	Parallel    bool `yaml:"parallel"`
	Concurrency int  `yaml:"concurrency"`
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	Directory  string `yaml:"directory,omitempty"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Calc: CalcConfig{
			Parallel:    true,
			Concurrency: 4,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: defaultTTLSeconds,
		},
	}
}

// New returns the configuration from $BISKO_HOME/config.yaml layered over
// the defaults, with environment overrides applied. A missing or unreadable
// file yields the defaults.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, "config.yaml")
		_ = cfg.Load()
	}
	cfg.applyEnv()
	return cfg
}

// NewFromFile loads the configuration at path. Unlike New, read and parse
// errors are returned.
func NewFromFile(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// ConfigPath returns the file the configuration is loaded from and saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Load reads the configuration file over the current values.
func (c *Config) Load() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes the configuration to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BISKO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BISKO_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("BISKO_OUTPUT_FORMAT"); v != "" {
		c.Output.DefaultFormat = v
	}
}

// OutputFormats lists the valid output formats.
func OutputFormats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON, FormatXLSX, FormatPDF}
}

// Validate checks formats, precision, log settings and the engine and
// cache limits.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(OutputFormats(), c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of %s",
			c.Output.DefaultFormat, strings.Join(OutputFormats(), ", ")))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision %d must be between 0 and %d", c.Output.Precision, maxPrecision))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q must be one of trace, debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be console or json", c.Logging.Format))
	}

	if c.Calc.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("calc.concurrency %d must be at least 1", c.Calc.Concurrency))
	}
	if c.Cache.TTLSeconds < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl_seconds %d must not be negative", c.Cache.TTLSeconds))
	}

	for name, path := range map[string]string{"data.facts": c.Data.Facts, "data.assumptions": c.Data.Assumptions} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
