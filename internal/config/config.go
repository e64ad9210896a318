// Package config loads CLI configuration: defaults, an optional
// config.yaml, and DOCSTRUCT_-prefixed environment variables, in
// increasing precedence. No secrets are involved and nothing is
// compiled in beyond plain defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI settings.
type Config struct {
	// OutputDir is where derived-name JSON artifacts are written
	// (default: current directory).
	OutputDir string `mapstructure:"output_dir"`

	// ImageDir is where the images command writes extracted parts
	// (default: "images").
	ImageDir string `mapstructure:"image_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		ImageDir:  "images",
		LogLevel:  "info",
	}
}

// Load reads configuration from the given file (optional; a missing
// default config file is not an error), the environment, and the
// defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("image_dir", defaults.ImageDir)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("DOCSTRUCT")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.docstruct")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level to a slog.Level, defaulting
// to info for unrecognized values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
