package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/tlvconfig/internal/app"
	"github.com/vk/tlvconfig/internal/hcl"
	"github.com/vk/tlvconfig/internal/schema"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tlvconfig", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tlvconfig - Typed configuration parameters for TL-Verilog macro preprocessing.

Serves the parameter catalog and translates JSON overrides into m4 macro lines.

Usage:
  tlvconfig [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	addrFlag := flagSet.String("addr", app.DefaultAddr, "Address for the HTTP server to listen on.")
	catalogFlag := flagSet.String("catalog", "", "Path to a catalog .hcl file or directory. Empty uses the built-in catalog.")
	configFlag := flagSet.String("config", "", "Optional HCL file with a 'server' block. Explicit flags take precedence.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict-validation", false, "Reject override values that violate the parameter's validation rule.")
	corsFlag := flagSet.String("cors-origins", "*", "Comma separated list of allowed CORS origins.")
	maxBodyFlag := flagSet.Int64("max-body-bytes", app.DefaultMaxBodyBytes, "Maximum size of a translate request body.")
	shutdownFlag := flagSet.Duration("shutdown-timeout", app.DefaultShutdownTimeout, "Grace period for in-flight requests on shutdown.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := app.Config{
		Addr:             *addrFlag,
		LogFormat:        *logFormatFlag,
		LogLevel:         *logLevelFlag,
		StrictValidation: *strictFlag,
		CORSOrigins:      splitList(*corsFlag),
		MaxBodyBytes:     *maxBodyFlag,
		ShutdownTimeout:  *shutdownFlag,
	}
	if *catalogFlag != "" {
		cfg.CatalogPaths = []string{*catalogFlag}
	}

	if *configFlag != "" {
		server, err := hcl.LoadServerConfig(*configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		explicit := map[string]bool{}
		flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := applyServerFile(&cfg, server, explicit); err != nil {
			return nil, false, usageError("invalid config file %s: %v", *configFlag, err)
		}
		slog.Debug("Server config file applied.", "path", *configFlag)
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// applyServerFile copies values from the server block into cfg unless the
// matching flag was set on the command line.
func applyServerFile(cfg *app.Config, s *schema.Server, explicit map[string]bool) error {
	if s.Addr != nil && !explicit["addr"] {
		cfg.Addr = *s.Addr
	}
	if s.Catalog != nil && !explicit["catalog"] && *s.Catalog != "" {
		cfg.CatalogPaths = []string{*s.Catalog}
	}
	if s.LogFormat != nil && !explicit["log-format"] {
		cfg.LogFormat = *s.LogFormat
	}
	if s.LogLevel != nil && !explicit["log-level"] {
		cfg.LogLevel = *s.LogLevel
	}
	if s.StrictValidation != nil && !explicit["strict-validation"] {
		cfg.StrictValidation = *s.StrictValidation
	}
	if s.CORSOrigins != nil && !explicit["cors-origins"] {
		cfg.CORSOrigins = s.CORSOrigins
	}
	if s.MaxBodyBytes != nil && !explicit["max-body-bytes"] {
		cfg.MaxBodyBytes = *s.MaxBodyBytes
	}
	if s.ShutdownTimeout != nil && !explicit["shutdown-timeout"] {
		d, err := time.ParseDuration(*s.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("shutdown_timeout: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
