package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version int `yaml:"version"`
	// OracleHome pins the Grid Infrastructure home; empty means discover it
	// ($ORACLE_HOME, oratab, running daemons).
	OracleHome string `yaml:"oracle_home,omitempty"`
	// Node overrides the short host name used to scope per-node queries.
	Node string `yaml:"node,omitempty"`
	// CommandTimeout bounds each tool invocation.
	CommandTimeout Duration `yaml:"command_timeout"`
	// Output selects the export format: json, yaml or ansible.
	Output   string        `yaml:"output"`
	LogLevel string        `yaml:"log_level"`
	Remote   *RemoteConfig `yaml:"remote,omitempty"`
}

// RemoteConfig makes the collector run the administrative tools on a remote
// cluster node over SSH instead of the local host. OracleHome must be set
// explicitly in remote operation; home discovery inspects local files.
type RemoteConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port,omitempty"`
	User       string `yaml:"user"`
	KeyFile    string `yaml:"key_file,omitempty"`
	Passphrase string `yaml:"passphrase,omitempty"`
	Password   string `yaml:"password,omitempty"`
}

// Duration is a time.Duration that marshals as a string like "30s"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
