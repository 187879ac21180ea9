package config

import (
	_ "embed"
)

//go:embed defaults/sumstack.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Mode:          "classic",
			StartLevel:    1,
			TimeLimitSecs: 120,
		},
		Storage: StorageConfig{
			Path: "~/.sumstack/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			Path:  "~/.sumstack/sumstack.log",
		},
		UI: UIConfig{
			ShowHelp: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
