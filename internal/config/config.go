// Package config handles the persisted tool configuration, stored as a YAML
// file at '${CLOCKCTL_HOME}/config.yaml' (defaulting to
// '~/.config/clockctl/config.yaml').
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in the config file.
type Config struct {
	// APIToken authenticates against the time-tracking service.
	APIToken string `yaml:"api-token"`
	// BaseURL overrides the service endpoint; empty means the default.
	BaseURL string `yaml:"base-url,omitempty"`
	// Workspace is the id of the workspace all commands operate on.
	Workspace string `yaml:"workspace"`
	// User is the id of the tracked user; empty means "resolve via the
	// service's current-user endpoint".
	User string `yaml:"user,omitempty"`
	// Billable is the default billable flag for new entries.
	Billable bool `yaml:"billable"`
}

// Dir returns the configuration directory, honoring CLOCKCTL_HOME.
func Dir() string {
	home := os.Getenv("CLOCKCTL_HOME")
	if home == "" {
		return os.Getenv("HOME") + "/.config/clockctl"
	}
	return strings.TrimRight(home, "/")
}

// Path returns the path of the config file.
func Path() string { return filepath.Join(Dir(), "config.yaml") }

// Load reads the configuration from the config file. A missing file is not an
// error; it yields a zero configuration so that precondition checks (token,
// workspace) produce their own, more helpful messages.
func Load() (Config, error) {
	var cfg Config
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("can't read config file (%w)", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("can't parse config file (%w)", err)
	}
	return cfg, nil
}

// Save writes the configuration back to the config file, creating the
// directory if necessary. The file is written user-only readable since it
// holds the API token.
func (c Config) Save() error {
	if err := os.MkdirAll(Dir(), 0700); err != nil {
		return fmt.Errorf("can't create config directory (%w)", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("can't serialize config (%w)", err)
	}
	if err := os.WriteFile(Path(), data, 0600); err != nil {
		return fmt.Errorf("can't write config file (%w)", err)
	}
	return nil
}

// Get returns the value of a single configuration key by its file name.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "api-token":
		return c.APIToken, nil
	case "base-url":
		return c.BaseURL, nil
	case "workspace":
		return c.Workspace, nil
	case "user":
		return c.User, nil
	case "billable":
		return strconv.FormatBool(c.Billable), nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set assigns a single configuration key by its file name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api-token":
		c.APIToken = value
	case "base-url":
		c.BaseURL = value
	case "workspace":
		c.Workspace = value
	case "user":
		c.User = value
	case "billable":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("billable must be a boolean, got %q", value)
		}
		c.Billable = parsed
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
