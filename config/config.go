// Package config loads the settings of the listcmp command.
//
// Settings come from an optional TOML or YAML file, picked by extension,
// and are then overridden by LISTCMP_* environment variables, which may in
// turn be loaded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/xiam/listcmp/parser"
)

var ErrInvalidConfig = errors.New("invalid config")

// Environment variables that override file settings.
const (
	EnvSentinels = "LISTCMP_SENTINELS"
	EnvMode      = "LISTCMP_MODE"
	EnvWorkers   = "LISTCMP_WORKERS"
	EnvLogLevel  = "LISTCMP_LOG_LEVEL"
)

// Config holds the settings of a run.
type Config struct {
	// Sentinels are the two expressions ranked by the rank query.
	Sentinels []string `toml:"sentinels" yaml:"sentinels"`
	// Mode selects the comparator: "stream" or "tree".
	Mode     string `toml:"mode" yaml:"mode"`
	Workers  int    `toml:"workers" yaml:"workers"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Sentinels: []string{`[[2]]`, `[[6]]`},
		Mode:      "stream",
		Workers:   1,
		LogLevel:  "info",
	}
}

// Format is the syntax of a config file
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read reads the config file at path on top of the defaults, an empty path
// skips the file, and applies environment overrides. The result is not
// validated, so callers can override fields first.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := cfg.Decode(data, detectFormat(path)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode merges the given document into c.
func (c *Config) Decode(data []byte, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%w: TOML parse error: %v", ErrInvalidConfig, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%w: YAML parse error: %v", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: unsupported format %v", ErrInvalidConfig, format)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSentinels); v != "" {
		c.Sentinels = strings.Fields(v)
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvWorkers, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that the settings can be used for a run.
func (c *Config) Validate() error {
	if len(c.Sentinels) != 2 {
		return fmt.Errorf("%w: expected 2 sentinels, got %d", ErrInvalidConfig, len(c.Sentinels))
	}
	for _, s := range c.Sentinels {
		if err := parser.Validate([]byte(s)); err != nil {
			return fmt.Errorf("%w: sentinel %q: %v", ErrInvalidConfig, s, err)
		}
	}

	switch strings.ToLower(c.Mode) {
	case "stream", "tree":
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// LoadDotEnv loads environment variables from a .env file. A missing file
// is only an error when the path was given explicitly.
func LoadDotEnv(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !explicit && errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Skipping .env ...", "path", path)
		return nil
	}

	return fmt.Errorf("loading %s: %w", path, err)
}
