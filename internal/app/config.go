package app

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Addr         string
	CatalogPaths []string // hcl files; empty selects the embedded catalog

	LogFormat        string
	LogLevel         string
	StrictValidation bool
	CORSOrigins      []string
	MaxBodyBytes     int64
	ShutdownTimeout  time.Duration
}

// Defaults applied by the CLI when neither a flag nor the config file sets a value.
const (
	DefaultAddr            = ":8080"
	DefaultLogFormat       = "json"
	DefaultLogLevel        = "info"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 5 * time.Second
)

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Addr == "" {
		return nil, errors.New("Addr is a required configuration field and cannot be empty")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("invalid max-body-bytes %d: must be positive", cfg.MaxBodyBytes)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("invalid shutdown-timeout %s: must be positive", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	return &cfg, nil
}
