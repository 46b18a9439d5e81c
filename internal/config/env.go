// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// lookupEnv returns the non-empty value of EnvPrefix+key.
func lookupEnv(key string) (string, bool) {
	val := os.Getenv(EnvPrefix + key)
	return val, val != ""
}

// isFlagSet checks if a flag was explicitly set on the command line.
// A nil flag set, or a flag the set does not define, counts as not set.
func isFlagSet(fs *pflag.FlagSet, name string) bool {
	if fs == nil || fs.Lookup(name) == nil {
		return false
	}
	return fs.Changed(name)
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the SAMPLER_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Unparsable values are ignored and the previous value is kept.
var envOverrides = []envOverride{
	{"TIMEOUT", FlagTimeout, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"MAX_N", FlagMaxN, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxN = parsed
		}
	}},

	{"LISTEN_ADDR", FlagListen, func(c *AppConfig, v string) {
		c.ListenAddr = v
	}},
	{"LOG_LEVEL", FlagLogLevel, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"CITY", FlagCity, func(c *AppConfig, v string) {
		c.City = v
	}},

	{"QUIET", FlagQuiet, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", FlagNoColor, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"SEQUENTIAL", FlagSequential, func(c *AppConfig, v string) {
		c.Sequential = parseBoolEnv(v, c.Sequential)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with SAMPLER_):
//   - TIMEOUT, MAX_N, LISTEN_ADDR, LOG_LEVEL, CITY, QUIET, NO_COLOR,
//     SEQUENTIAL, CONFIG
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val, ok := lookupEnv(o.envKey); ok {
			o.apply(config, val)
		}
	}
}
