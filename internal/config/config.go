// Package config loads abacus settings from abacus.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rail44/abacus/calc"
)

const fileName = "abacus.toml"

// Config represents the complete configuration for abacus.
type Config struct {
	// Precision is the number of decimal places used when rounding
	// displayed results.
	Precision int `toml:"precision"`

	// Round enables rounding of displayed results. Raw IEEE-754 results
	// are printed when false.
	Round bool `toml:"round"`

	// LogLevel is one of error, warn, info, debug.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no abacus.toml exists.
func Default() *Config {
	return &Config{
		Precision: calc.DefaultPrecision,
		LogLevel:  "info",
	}
}

// Load loads configuration from the nearest abacus.toml, searching upward
// from startPath. A missing config file is not an error; defaults apply.
func Load(startPath string) (*Config, error) {
	configPath, err := findConfigFile(startPath)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return Default(), nil
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// findConfigFile searches for abacus.toml starting from the given path.
// It returns an empty path when no config file exists.
func findConfigFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, fileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", nil
}

func (c *Config) validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", c.Precision)
	}
	switch c.LogLevel {
	case "", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
