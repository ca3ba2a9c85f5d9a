package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// File redirects output to a file. Interactive hosts that own the
	// terminal set it so log lines do not corrupt the screen.
	File string
	// MaxSizeMB rotates File once it grows past this size. Zero disables rotation.
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to out.
func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	var output = out

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	case "json":
		// JSON is the default zerolog format
		output = out
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFile creates a logger appending to cfg.File, rotated according to
// cfg.MaxSizeMB. The returned closer must be called when the logger is no
// longer used.
func NewFile(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return New(cfg), nopCloser{}, nil
	}
	f, err := NewRotatingFile(cfg.File, cfg.MaxSizeMB, cfg.MaxBackups, cfg.Compress)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return NewWithWriter(cfg, f), f, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// PANEDRAWER_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// PANEDRAWER_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overlays the PANEDRAWER_LOG_* variables onto cfg.
func ConfigFromEnv(cfg Config) Config {
	if level := os.Getenv("PANEDRAWER_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("PANEDRAWER_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
