// Package config loads the optional makeregex defaults file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds user defaults for pattern generation. Flags override these.
type Config struct {
	// Accents enables accent-insensitive letter classes by default.
	Accents bool `yaml:"accents"`
	// Color enables colored output in interactive mode.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no defaults file exists.
func Default() *Config {
	return &Config{Color: true}
}

// Load reads the defaults file at path. A missing file is not an error; all
// defaults apply, so the tool works with no configuration at all.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
