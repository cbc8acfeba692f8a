// Package config loads the optional restdown YAML configuration file.
// The file supplies defaults that command-line flags override.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcavage/restdown/internal/fileutil"
	"github.com/mcavage/restdown/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// DefaultConfigName is the base name searched when no -c flag is given.
const DefaultConfigName = "restdown"

// Config holds all configuration for document conversion.
type Config struct {
	Brand     BrandConfig     `yaml:"brand"`
	Highlight HighlightConfig `yaml:"highlight"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BrandConfig defines brand resolution defaults.
type BrandConfig struct {
	Name string `yaml:"name"` // Default brand name (empty = "api")
	Dir  string `yaml:"dir"`  // Explicit brand directory (empty = resolve by name)
	Root string `yaml:"root"` // Brands root directory (empty = embedded only)
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Style string `yaml:"style"` // chroma style name (empty = "github")
}

// LoggingConfig defines default log verbosity.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet"`
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks that config values are coherent.
func (c *Config) Validate() error {
	if c.Logging.Verbose && c.Logging.Quiet {
		return fmt.Errorf("%w: logging.verbose and logging.quiet are mutually exclusive", ErrConfigParse)
	}
	if c.Brand.Name != "" && fileutil.IsFilePath(c.Brand.Name) {
		return fmt.Errorf("%w: brand.name %q looks like a path (use brand.dir)", ErrConfigParse, c.Brand.Name)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/restdown/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "restdown", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
