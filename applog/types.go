package applog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Sentinel errors.
var (
	// ErrAlreadyInitialized is returned by Init after the instance exists.
	ErrAlreadyInitialized = errors.New("applog: logger already initialized")

	// ErrBadWorkers is returned by Probe for a non-positive worker count.
	ErrBadWorkers = errors.New("applog: workers must be positive")

	// ErrBadConfig is returned by Init for an invalid Config.
	ErrBadConfig = errors.New("applog: invalid config")
)

// Encoding names accepted in Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config configures the singleton before first use.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Format is FormatJSON or FormatConsole. Empty means json.
	Format string
	// Output receives log lines. Nil means os.Stderr.
	Output io.Writer
}

// DefaultConfig is used when Init is never called.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatJSON}
}

func (c Config) level() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return lvl, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return lvl, nil
}

func (c Config) validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Format {
	case "", FormatJSON, FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q", ErrBadConfig, c.Format)
	}
}
