package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/sampler/internal/errors"
)

// fileConfig mirrors AppConfig with snake_case YAML keys. Pointer fields
// distinguish "absent" from the zero value.
type fileConfig struct {
	Timeout    *string `yaml:"timeout"`
	ListenAddr *string `yaml:"listen_addr"`
	MaxN       *int    `yaml:"max_n"`
	LogLevel   *string `yaml:"log_level"`
	Quiet      *bool   `yaml:"quiet"`
	NoColor    *bool   `yaml:"no_color"`
	Sequential *bool   `yaml:"sequential"`
	City       *string `yaml:"city"`
}

// DefaultConfigPath returns ~/.config/sampler/config.yaml, or "" when the
// user config directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sampler", "config.yaml")
}

// readFile loads path. A missing file at the default location is not an
// error; a missing file the user asked for is.
func readFile(path string, explicit bool) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, apperrors.NewConfigError("read config file %s: %v", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, apperrors.NewConfigError("parse config file %s: %v", path, err)
	}
	return &fc, nil
}

// applyFileOverrides copies every file value whose flag was not set
// explicitly into cfg.
func applyFileOverrides(cfg *AppConfig, fs *pflag.FlagSet) error {
	path, explicit := cfg.ConfigFile, cfg.ConfigFile != ""
	if !explicit {
		path = DefaultConfigPath()
		if path == "" {
			return nil
		}
	}
	fc, err := readFile(path, explicit)
	if err != nil || fc == nil {
		return err
	}

	if fc.Timeout != nil && !isFlagSet(fs, FlagTimeout) {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return apperrors.NewConfigError("config file %s: invalid timeout %q", path, *fc.Timeout)
		}
		cfg.Timeout = d
	}
	setIfUnset(fs, FlagListen, fc.ListenAddr, &cfg.ListenAddr)
	setIfUnset(fs, FlagMaxN, fc.MaxN, &cfg.MaxN)
	setIfUnset(fs, FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	setIfUnset(fs, FlagQuiet, fc.Quiet, &cfg.Quiet)
	setIfUnset(fs, FlagNoColor, fc.NoColor, &cfg.NoColor)
	setIfUnset(fs, FlagSequential, fc.Sequential, &cfg.Sequential)
	setIfUnset(fs, FlagCity, fc.City, &cfg.City)
	return nil
}

func setIfUnset[T any](fs *pflag.FlagSet, flag string, src *T, dst *T) {
	if src != nil && !isFlagSet(fs, flag) {
		*dst = *src
	}
}
