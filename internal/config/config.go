// Package config holds the application configuration and resolves it from
// command-line flags, SAMPLER_* environment variables, an optional YAML file
// and built-in defaults, in that order of priority.
package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	apperrors "github.com/agbru/sampler/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "SAMPLER_"

// Default values.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultListenAddr = ":8080"
	DefaultMaxN       = 1000
	DefaultLogLevel   = "info"
	DefaultCity       = "London"
)

// Flag names shared by RegisterFlags and the override tables.
const (
	FlagTimeout    = "timeout"
	FlagListen     = "listen"
	FlagMaxN       = "max-n"
	FlagLogLevel   = "log-level"
	FlagQuiet      = "quiet"
	FlagNoColor    = "no-color"
	FlagSequential = "sequential"
	FlagConfig     = "config"
	FlagCity       = "city"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Timeout bounds each remote request.
	Timeout time.Duration
	// ListenAddr is the address the form server binds to.
	ListenAddr string
	// MaxN is the largest sequence index accepted by the server and the TUI.
	MaxN int
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
	// Quiet suppresses spinners and decorative output.
	Quiet bool
	// NoColor disables ANSI styling.
	NoColor bool
	// Sequential makes the fetch command run targets one after another.
	Sequential bool
	// ConfigFile is the YAML file path. Empty means the default location.
	ConfigFile string
	// City selects the weather endpoint used by the demo.
	City string
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Timeout:    DefaultTimeout,
		ListenAddr: DefaultListenAddr,
		MaxN:       DefaultMaxN,
		LogLevel:   DefaultLogLevel,
		City:       DefaultCity,
	}
}

// RegisterFlags binds the global flags to cfg. Flag defaults are taken from
// the current values in cfg, so cfg should come from Defaults.
func RegisterFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.DurationVar(&cfg.Timeout, FlagTimeout, cfg.Timeout, "Timeout for each remote request (e.g., 5s, 1m).")
	fs.StringVar(&cfg.ListenAddr, FlagListen, cfg.ListenAddr, "Address the form server listens on.")
	fs.IntVar(&cfg.MaxN, FlagMaxN, cfg.MaxN, "Largest sequence index accepted by the server and the form.")
	fs.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "Log level: debug, info, warn or error.")
	fs.BoolVarP(&cfg.Quiet, FlagQuiet, "q", cfg.Quiet, "Quiet mode: no spinner and minimal output.")
	fs.BoolVar(&cfg.NoColor, FlagNoColor, cfg.NoColor, "Disable colored output.")
	fs.StringVar(&cfg.ConfigFile, FlagConfig, cfg.ConfigFile, "Path to a YAML config file (default ~/.config/sampler/config.yaml).")
	fs.StringVar(&cfg.City, FlagCity, cfg.City, "City used for the weather request.")
}

// Load completes cfg after flags have been parsed. Every setting whose flag
// was not given on the command line is taken from the config file, then from
// the environment, so flags win over environment variables, which win over
// the file, which wins over defaults.
//
// Parameters:
//   - fs: The parsed flag set. Flags absent from fs count as not set.
//   - cfg: The configuration bound to fs by RegisterFlags.
//
// Returns:
//   - error: A ConfigError if the file is unreadable or the result is invalid.
func Load(fs *pflag.FlagSet, cfg *AppConfig) error {
	if !isFlagSet(fs, FlagConfig) {
		if v, ok := lookupEnv("CONFIG"); ok {
			cfg.ConfigFile = v
		}
	}
	if err := applyFileOverrides(cfg, fs); err != nil {
		return err
	}
	applyEnvOverrides(cfg, fs)
	return cfg.Validate()
}

// Validate checks the configuration for semantic consistency.
//
// Returns:
//   - error: A ConfigError describing the first invalid setting, or nil.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive, got %s", c.Timeout)
	}
	if c.MaxN < 0 {
		return apperrors.NewConfigError("max-n cannot be negative, got %d", c.MaxN)
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return apperrors.NewConfigError("listen address cannot be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the zerolog level for LogLevel, defaulting to info.
func (c AppConfig) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
