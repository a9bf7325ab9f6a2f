// Package config provides configuration management for gridfacts.
//
// Everything in the config file is optional: with no file present the tool
// discovers the Grid Infrastructure home, runs the tools locally and prints
// JSON. The file pins a home, scopes queries to a node name, bounds command
// execution, selects the output format, or points the runner at a remote
// node over SSH.
//
// Config file locations (priority order):
//  1. $GRIDFACTS_CONFIG
//  2. ./gridfacts.yaml
//  3. ~/.config/gridfacts/config.yaml
//  4. /etc/gridfacts/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// DefaultConfig returns sensible defaults for running on a cluster node
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		CommandTimeout: Duration(30 * time.Second),
		Output:         "json",
		LogLevel:       "info",
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = Duration(30 * time.Second)
	}
	if c.Output == "" {
		c.Output = "json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Remote != nil && c.Remote.Port == 0 {
		c.Remote.Port = 22
	}
}

// validate rejects configurations that cannot work
func (c *Config) validate() error {
	switch c.Output {
	case "json", "yaml", "ansible":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.Remote != nil {
		if c.Remote.Host == "" || c.Remote.User == "" {
			return fmt.Errorf("remote config requires host and user")
		}
		if c.OracleHome == "" {
			return fmt.Errorf("remote operation requires an explicit oracle_home")
		}
	}
	return nil
}
