// Package config loads optional CLI defaults from a YAML file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds user-tunable rendering and guard defaults.
type Config struct {
	// TrueGlyph and FalseGlyph override the T/F truth symbols.
	TrueGlyph  string `yaml:"trueGlyph"`
	FalseGlyph string `yaml:"falseGlyph"`

	// Format selects the default output format: "text" or "markdown".
	Format string `yaml:"format"`

	// Color forces colored output on or off; unset defers to terminal
	// detection.
	Color *bool `yaml:"color"`

	// MaxVars bounds the truth-table enumeration; 0 keeps the built-in
	// default.
	MaxVars int `yaml:"maxVars"`
}

// DefaultPath returns the conventional config location, or "" when no
// home directory is available.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".proptab.yaml")
}

// Load reads the config at path. A missing file is not an error: the
// zero Config is returned so flags and defaults apply.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Format != "" && cfg.Format != "text" && cfg.Format != "markdown" {
		return cfg, fmt.Errorf("parse %s: unknown format %q", path, cfg.Format)
	}
	return cfg, nil
}
