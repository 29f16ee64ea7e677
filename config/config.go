// SPDX-License-Identifier: MIT

// Package config loads the lvlump run configuration.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// an optional .env file, and LVLUMP_* process environment variables. They are
// merged into one generic map and decoded into Config with mapstructure, so
// environment strings such as LVLUMP_WORKERS=4 land in typed fields.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultWorkers      = 1
	DefaultMaxPasses    = 0
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultOutputFormat = "text"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "LVLUMP_"
)

// ErrInvalidConfig indicates a value outside its documented range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective run configuration.
type Config struct {
	Workers   int    `yaml:"workers" mapstructure:"workers"`
	MaxPasses int    `yaml:"max_passes" mapstructure:"max_passes"`
	Log       Log    `yaml:"log" mapstructure:"log"`
	Output    Output `yaml:"output" mapstructure:"output"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text, json
}

// Output selects how results are written.
type Output struct {
	Format      string `yaml:"format" mapstructure:"format"` // text, yaml, json
	MetricsFile string `yaml:"metrics_file" mapstructure:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:   DefaultWorkers,
		MaxPasses: DefaultMaxPasses,
		Log:       Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Output:    Output{Format: DefaultOutputFormat},
	}
}

// envKeys maps environment suffixes to configuration paths.
var envKeys = map[string][]string{
	"WORKERS":       {"workers"},
	"MAX_PASSES":    {"max_passes"},
	"LOG_LEVEL":     {"log", "level"},
	"LOG_FORMAT":    {"log", "format"},
	"OUTPUT_FORMAT": {"output", "format"},
	"METRICS_FILE":  {"output", "metrics_file"},
}

// Load merges the defaults, the YAML file at path and the environment. Empty
// path or envFile skip that source; a named file must exist.
func Load(path, envFile string) (Config, error) {
	return load(path, envFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (Config, error) {
	merged := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		var fromFile map[string]any
		if err = yaml.Unmarshal(data, &fromFile); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		merge(merged, fromFile)
	}

	var dotenv map[string]string
	if envFile != "" {
		var err error
		if dotenv, err = godotenv.Read(envFile); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	for suffix, keyPath := range envKeys {
		name := EnvPrefix + suffix
		v, ok := lookup(name)
		if !ok {
			v, ok = dotenv[name]
		}
		if ok {
			set(merged, keyPath, strings.TrimSpace(v))
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = dec.Decode(merged); err != nil {
		return Config{}, fmt.Errorf("config: %w: %w", ErrInvalidConfig, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if cur, ok := dst[k].(map[string]any); ok {
				merge(cur, sub)

				continue
			}
			next := map[string]any{}
			merge(next, sub)
			dst[k] = next

			continue
		}
		dst[k] = v
	}
}

func set(m map[string]any, path []string, v string) {
	for _, k := range path[:len(path)-1] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = map[string]any{}
			m[k] = sub
		}
		m = sub
	}
	m[path[len(path)-1]] = v
}

// Validate rejects values outside their documented ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d < 1", c.Workers))
	}
	if c.MaxPasses < 0 {
		errs = append(errs, fmt.Errorf("max_passes %d < 0", c.MaxPasses))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q", c.Log.Format))
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "yaml", "yml", "json":
	default:
		errs = append(errs, fmt.Errorf("output.format %q", c.Output.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q", s)
	}

	return l, nil
}

// NewLogger builds the slog.Logger described by c, writing to w.
func (c Log) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
