// Package config loads the application configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the export server.
	Listen string `yaml:"listen"`
	// OutputDir is where exported .ics files are written.
	OutputDir string `yaml:"output_dir"`
	// SettingsDB is the path of the persistent settings database.
	SettingsDB string `yaml:"settings_db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:     "127.0.0.1:8080",
		OutputDir:  ".",
		SettingsDB: "cunycal-settings",
		LogLevel:   "info",
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return conf, nil
}
