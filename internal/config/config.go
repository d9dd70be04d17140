// SPDX-License-Identifier: MIT

// Package config loads numerics CLI settings.
//
// Precedence (highest to lowest): flags > NUMERICS_* env vars > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/numerics/linalg"
)

// Defaults.
const (
	DefaultScalar    = "float64"
	DefaultOutput    = "table"
	DefaultPrecision = -1 // shortest representation that round-trips
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultFile      = "numerics.yaml"

	envPrefix = "NUMERICS_"
)

// Sentinel errors returned by Validate.
var (
	ErrScalar    = errors.New("config: scalar must be float64, complex128 or int64")
	ErrOutput    = errors.New("config: output must be table, plain or yaml")
	ErrEpsilon   = errors.New("config: epsilon must be finite and >= 0")
	ErrLogLevel  = errors.New("config: unknown log level")
	ErrLogFormat = errors.New("config: log format must be text or json")
)

// Config is the resolved CLI configuration.
type Config struct {
	Scalar    string    `koanf:"scalar"`
	Output    string    `koanf:"output"`
	Epsilon   float64   `koanf:"epsilon"`
	Precision int       `koanf:"precision"`
	Log       LogConfig `koanf:"log"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Scalar:    DefaultScalar,
		Output:    DefaultOutput,
		Epsilon:   linalg.DefaultEpsilon,
		Precision: DefaultPrecision,
		Log:       LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load resolves the configuration. An explicit cfgFile must exist; otherwise
// ./numerics.yaml is read when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	d := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"scalar":     d.Scalar,
		"output":     d.Output,
		"epsilon":    d.Epsilon,
		"precision":  d.Precision,
		"log.level":  d.Log.Level,
		"log.format": d.Log.Format,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: NUMERICS_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}

			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile returns the explicit path, or DefaultFile when it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}

	return ""
}

// envKey maps NUMERICS_LOG_FORMAT to log.format and NUMERICS_SCALAR to scalar.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}

	return key
}

// flagKey maps --log-level to log.level.
func flagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "log-"); ok {
		return "log." + rest
	}

	return strings.ReplaceAll(name, "-", "_")
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	switch c.Scalar {
	case "float64", "complex128", "int64":
	default:
		return fmt.Errorf("%w: got %q", ErrScalar, c.Scalar)
	}
	switch c.Output {
	case "table", "plain", "yaml":
	default:
		return fmt.Errorf("%w: got %q", ErrOutput, c.Output)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: got %v", ErrEpsilon, c.Epsilon)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrLogFormat, c.Log.Format)
	}

	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrLogLevel, l.Level)
	}

	return lv, nil
}

// NewLogger builds a slog logger writing to w with the configured level and format.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lv, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lv}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
