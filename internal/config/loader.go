package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config sources reported in Config.Source.
const (
	SourceEmbedded = "embedded"
	SourceDefault  = "default"
)

// localConfigPath is checked relative to the working directory.
var localConfigPath = filepath.Join("configs", "sumstack.yaml")

// Load loads the configuration.
// Search order: customPath -> ~/.sumstack/config.yaml -> ./configs/sumstack.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		path, err := ExpandPath(customPath)
		if err != nil {
			return Default(), err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		cfg.Source = path
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or malformed files are skipped.
	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			cfg.Source = path
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
		cfg.Source = SourceDefault
		return cfg, nil
	}
	cfg.Source = SourceEmbedded
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Game.Mode {
	case "", "classic", "time":
	default:
		return fmt.Errorf("config: unknown mode %q (use classic or time)", c.Game.Mode)
	}

	preset, err := ParseDifficulty(string(c.Game.Difficulty))
	if err != nil {
		return err
	}
	c.Game.Difficulty = preset

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sumstack", "config.yaml")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
