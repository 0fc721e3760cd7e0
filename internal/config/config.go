// Package config provides Viper-based configuration loading for snapshot naming tools.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/snapshot/internal/naming"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// OutputPaths lists zap sinks; empty means stderr.
	OutputPaths []string `mapstructure:"output_paths"`
}

// EnvironmentConfig overrides descriptors that would otherwise be probed from the host.
type EnvironmentConfig struct {
	DeviceModel  string  `mapstructure:"device_model"`
	OSVersion    string  `mapstructure:"os_version"`
	ScreenWidth  float64 `mapstructure:"screen_width"`
	ScreenHeight float64 `mapstructure:"screen_height"`
}

// ReferenceConfig holds reference-image lookup settings.
type ReferenceConfig struct {
	// ImagesDir is the base reference-image directory.
	ImagesDir string `mapstructure:"images_dir"`
	// Suffixes replaces the platform default suffix set when non-empty.
	Suffixes []string `mapstructure:"suffixes"`
	// Scale is the display scale; values above 1 add an "@<scale>x" marker.
	Scale float64 `mapstructure:"scale"`
	// Agnostic is a comma separated AgnosticOption list.
	Agnostic string `mapstructure:"agnostic"`
	// Include is a comma separated IncludeOption list.
	Include string `mapstructure:"include"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Environment EnvironmentConfig `mapstructure:"environment"`
	Reference   ReferenceConfig   `mapstructure:"reference"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEnvironment(c.Environment); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReference(c.Reference); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateEnvironment(e EnvironmentConfig) error {
	var errs []string
	if e.ScreenWidth < 0 {
		errs = append(errs, fmt.Sprintf("environment.screen_width must be >= 0, got %g", e.ScreenWidth))
	}
	if e.ScreenHeight < 0 {
		errs = append(errs, fmt.Sprintf("environment.screen_height must be >= 0, got %g", e.ScreenHeight))
	}
	if (e.ScreenWidth == 0) != (e.ScreenHeight == 0) {
		errs = append(errs, "environment.screen_width and environment.screen_height must be set together")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateReference(r ReferenceConfig) error {
	var errs []string
	if r.ImagesDir == "" {
		errs = append(errs, "reference.images_dir must not be empty")
	}
	if r.Scale <= 0 {
		errs = append(errs, fmt.Sprintf("reference.scale must be > 0, got %g", r.Scale))
	}
	if r.Agnostic != "" && r.Include != "" {
		errs = append(errs, "reference.agnostic and reference.include are mutually exclusive")
	}
	if _, err := naming.ParseAgnosticOption(r.Agnostic); err != nil {
		errs = append(errs, "reference.agnostic: "+err.Error())
	}
	if _, err := naming.ParseIncludeOption(r.Include); err != nil {
		errs = append(errs, "reference.include: "+err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// Default returns the configuration used when no file is given, with
// environment variable overrides applied.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Default() (Config, error) {
	return LoadFromViper(newViper())
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with SNAPSHOT_ prefix
	v.SetEnvPrefix("SNAPSHOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_paths", []string{"stderr"})

	v.SetDefault("environment.device_model", "")
	v.SetDefault("environment.os_version", "")
	v.SetDefault("environment.screen_width", 0)
	v.SetDefault("environment.screen_height", 0)

	v.SetDefault("reference.images_dir", "ReferenceImages")
	v.SetDefault("reference.suffixes", []string{})
	v.SetDefault("reference.scale", 1)
	v.SetDefault("reference.agnostic", "")
	v.SetDefault("reference.include", "")
}
