package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/FocusTorn/outerm/errors"
)

// candidateNames are the recognized config file names, probed in order.
var candidateNames = []string{"outerm.yml", "outerm.yaml", "outerm.toml"}

// Load reads and parses a configuration file, dispatching on its extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault loads the configuration from the user config directory,
// returning Default when no config file exists. Only a malformed file is an
// error; a missing one is not.
func LoadDefault() (*Config, error) {
	path, err := FindConfigFile(ConfigDir())
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// ConfigDir returns the directory searched for the config file:
// $XDG_CONFIG_HOME/outerm, falling back to ~/.config/outerm.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "outerm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "outerm")
}

// FindConfigFile returns the first recognized config file inside dir.
func FindConfigFile(dir string) (string, error) {
	if dir == "" {
		return "", errors.ConfigNotFound(dir)
	}
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.ConfigNotFound(dir)
}
