package app

import (
	"fmt"

	"github.com/specialistvlad/encryptdecrypt/internal/config"
)

// Default values for the settings a user does not give.
const (
	DefaultMode      = "enc"
	DefaultAlgorithm = "shift"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode      string
	Algorithm string
	Data      string // literal input, wins over InPath when non-empty
	InPath    string
	Key       int
	OutPath   string

	ConfigPath string // optional job file
	LogFormat  string
	LogLevel   string

	// Explicit holds the names of the settings given on the command line.
	// They take precedence over the job file.
	Explicit map[string]bool
}

// NewConfig validates cfg, fills in logging defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// FromFile reports whether the input must be read from InPath.
func (c *Config) FromFile() bool {
	return c.Data == ""
}

// ToFile reports whether the result goes to OutPath instead of stdout.
func (c *Config) ToFile() bool {
	return c.OutPath != ""
}

// Merge returns a copy of c with every setting the job file defines applied,
// except those given explicitly on the command line.
func (c *Config) Merge(m *config.Model) *Config {
	merged := *c
	if m == nil {
		return &merged
	}

	setString := func(name string, dst *string, src *string) {
		if src != nil && !c.Explicit[name] {
			*dst = *src
		}
	}
	setString("mode", &merged.Mode, m.Mode)
	setString("alg", &merged.Algorithm, m.Algorithm)
	setString("data", &merged.Data, m.Data)
	setString("in", &merged.InPath, m.InPath)
	setString("out", &merged.OutPath, m.OutPath)
	if m.Key != nil && !c.Explicit["key"] {
		merged.Key = *m.Key
	}

	return &merged
}
