// Package config loads the optional medialint YAML config file. Every field
// has a default, so running without a file works; command-line flags
// override whatever the file sets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/medialint/medialint/internal/scanner"
)

// Config holds the per-run settings.
type Config struct {
	// Extensions lists the file extensions treated as media candidates.
	Extensions []string `yaml:"extensions"`

	// ContentType is "movie", "tv" or "auto".
	ContentType string `yaml:"content_type"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Extensions:  scanner.DefaultExtensions(),
		ContentType: "auto",
		LogLevel:    "info",
	}
}

// Load reads the YAML config at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
