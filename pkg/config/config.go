// Package config provides configuration parsing and validation for pin-check.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blairham/go-pin-check/pkg/version"
)

// Config represents the .pin-check.yaml structure describing the tool
// under test and the scenario parameters.
type Config struct {
	Tool       string `yaml:"tool"`
	Runtime    string `yaml:"runtime"`
	PinVersion string `yaml:"pin_version"`
	MarkerFile string `yaml:"marker_file"`
	Verbose    bool   `yaml:"verbose,omitempty"`
}

// ConfigFileName is the default name for the pin-check configuration file
const ConfigFileName = ".pin-check.yaml"

// DefaultConfig returns the configuration for the original scenario:
// uv pinning CPython 3.12 through a .python-version file.
func DefaultConfig() *Config {
	return &Config{
		Tool:       "uv",
		Runtime:    "python",
		PinVersion: "3.12",
		MarkerFile: ".python-version",
	}
}

// LoadConfig loads the pin-check configuration from file. Fields left
// empty in the file fall back to their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ConfigFileName
	}

	if !filepath.IsAbs(configPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, configPath)
	}

	// Basic path validation to address gosec G304
	if strings.Contains(configPath, "..") {
		return nil, fmt.Errorf("invalid config path: %s", configPath)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("config file %s is empty", configPath)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigOrDefault loads the configuration file when present and
// falls back to DefaultConfig when it is not. An explicitly requested
// path that does not exist is still an error.
func LoadConfigOrDefault(configPath string) (*Config, error) {
	path := configPath
	if path == "" {
		path = ConfigFileName
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Tool == "" {
		c.Tool = defaults.Tool
	}
	if c.Runtime == "" {
		c.Runtime = defaults.Runtime
	}
	if c.PinVersion == "" {
		c.PinVersion = defaults.PinVersion
	}
	if c.MarkerFile == "" {
		c.MarkerFile = defaults.MarkerFile
	}
}

// Validate checks the configuration for values the scenario cannot run
// with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tool) == "" {
		return fmt.Errorf("tool must not be empty")
	}
	if strings.TrimSpace(c.Runtime) == "" {
		return fmt.Errorf("runtime must not be empty")
	}
	if err := version.Validate(c.PinVersion); err != nil {
		return fmt.Errorf("pin_version: %w", err)
	}
	if c.MarkerFile == "" || c.MarkerFile != filepath.Base(c.MarkerFile) {
		return fmt.Errorf("marker_file must be a bare file name, got %q", c.MarkerFile)
	}
	return nil
}
