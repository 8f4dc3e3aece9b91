// Package config loads the optional structarray.yaml tool
// configuration. All settings have working defaults; the file only
// exists so a project can pin its package patterns and generation
// knobs next to its sources.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no explicit
// path is given.
const DefaultFilename = "structarray.yaml"

// Config holds the tool configuration.
type Config struct {
	// Packages are the package patterns scanned when the command line
	// names none.
	Packages []string `yaml:"packages"`
	// Caps is the default capability selection for records whose
	// directive does not choose one: "deref", "convert" or "all".
	Caps string `yaml:"caps"`
	// Suffix is the output filename suffix.
	Suffix string `yaml:"suffix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Packages: []string{"./..."},
		Caps:     "all",
		Suffix:   "_structarray",
	}
}

// LoadFile loads and parses a YAML configuration file from the given
// path. A missing default file is not an error; an explicitly named
// file must exist.
func LoadFile(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	def := Default()

	if len(cfg.Packages) == 0 {
		cfg.Packages = def.Packages
	}

	if cfg.Caps == "" {
		cfg.Caps = def.Caps
	}

	if cfg.Suffix == "" {
		cfg.Suffix = def.Suffix
	}
}
