package capi

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/native"
)

// Config is read from the environment of the host process the first time
// the flat layer is used.
type Config struct {
	// Backend selects the native library: "auto", "gdiplus" or "software".
	Backend string `env:"GDIP_BACKEND" envDefault:"auto"`

	// LogLevel is "debug", "info", "warn", "error" or "off".
	LogLevel string `env:"GDIP_LOG_LEVEL" envDefault:"off"`

	// LogFormat is "text" or "json".
	LogFormat string `env:"GDIP_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the logger described by the configuration, writing to w.
// It returns nil when logging is off.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "", "off", "none":
		return nil, nil
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("capi: unknown log level %q", c.LogLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("capi: unknown log format %q", c.LogFormat)
	}
}

// NewNative returns the backend named by the configuration.
func (c Config) NewNative() (gdip.Native, error) {
	name := strings.ToLower(c.Backend)
	if name == "" || name == "auto" {
		return native.Default()
	}
	n, err := native.Get(name)
	if err != nil {
		return nil, fmt.Errorf("capi: backend %q: %w", c.Backend, err)
	}
	return n, nil
}
