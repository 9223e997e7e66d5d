package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats understood by the report writers.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// ScanConfig holds k-range scan configuration
type ScanConfig struct {
	MinK         int `yaml:"min_k"`
	MaxK         int `yaml:"max_k"`
	Threads      int `yaml:"threads"`
	AlphabetSize int `yaml:"alphabet_size"`
}

// OutputConfig holds report configuration
type OutputConfig struct {
	Format string `yaml:"format"`
	Sort   bool   `yaml:"sort"`
	Header *bool  `yaml:"header"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds metrics endpoint configuration
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Config is the complete run configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// LoadFile loads configuration from a YAML file and fills defaults. The result
// is not validated; callers lay flag overrides on top and call Validate.
func LoadFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	setDefaults(&cfg)
	return &cfg, nil
}

// setDefaults sets default values for unspecified configuration
func setDefaults(cfg *Config) {
	if cfg.Scan.MinK == 0 {
		cfg.Scan.MinK = 2
	}
	if cfg.Scan.MaxK == 0 {
		cfg.Scan.MaxK = 6
	}
	if cfg.Scan.AlphabetSize == 0 {
		cfg.Scan.AlphabetSize = 4
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Output.Header == nil {
		h := true
		cfg.Output.Header = &h
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// HeaderEnabled reports whether text/TSV output starts with a header line.
func (c *Config) HeaderEnabled() bool {
	return c.Output.Header == nil || *c.Output.Header
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scan.MinK < 1 {
		return fmt.Errorf("%w: min_k must be >= 1 (got %d)", ErrInvalidConfig, c.Scan.MinK)
	}
	if c.Scan.MinK > c.Scan.MaxK {
		return fmt.Errorf("%w: min_k (%d) exceeds max_k (%d)", ErrInvalidConfig, c.Scan.MinK, c.Scan.MaxK)
	}
	if c.Scan.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0", ErrInvalidConfig)
	}
	if c.Scan.AlphabetSize < 1 {
		return fmt.Errorf("%w: alphabet_size must be >= 1", ErrInvalidConfig)
	}
	switch c.Output.Format {
	case FormatText, FormatTSV, FormatJSONL, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
