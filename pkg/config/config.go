// Package config loads rtt's optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "RTT_CONFIG"

// Config represents rtt configuration options
type Config struct {
	// Extensions apply when none are given on the command line
	Extensions []string `yaml:"extensions"`

	// SkipDirs are pruned in addition to the built-in skip list
	SkipDirs []string `yaml:"skip_dirs"`

	// Ignore holds gitignore-style patterns
	Ignore []string `yaml:"ignore"`

	// IgnoreFile is the per-root ignore file name
	IgnoreFile string `yaml:"ignore_file"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		IgnoreFile: ".rttignore",
		LogLevel:   "warn",
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rtt", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rtt", "config.yaml")
}

// Resolve picks the config file: the explicit path, then $RTT_CONFIG, then
// DefaultPath. explicit reports whether the file must exist.
func Resolve(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true
	}
	return DefaultPath(), false
}

// LoadConfig reads the config at path over the defaults. A missing file is
// not an error unless required is set; a malformed one always is.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = fileCfg.Extensions
	}
	if len(fileCfg.SkipDirs) > 0 {
		cfg.SkipDirs = fileCfg.SkipDirs
	}
	if len(fileCfg.Ignore) > 0 {
		cfg.Ignore = fileCfg.Ignore
	}
	if fileCfg.IgnoreFile != "" {
		cfg.IgnoreFile = fileCfg.IgnoreFile
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(fileCfg.LogLevel))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	for _, d := range c.SkipDirs {
		if d == "" || strings.ContainsAny(d, `/\`) {
			return fmt.Errorf("invalid skip_dirs entry %q: must be a bare directory name", d)
		}
	}
	return nil
}
