// Package config provides YAML-based configuration loading for the game
// shell: mode and start level selection, storage and log paths, UI toggles.
package config

import (
	"time"

	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
)

// Config is the root of sumstack.yaml.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`

	// Source names where the configuration was read from.
	Source string `yaml:"-"`
}

// GameConfig selects what a new game looks like. Engine constants are fixed.
type GameConfig struct {
	Mode          string           `yaml:"mode"`        // "classic" or "time"
	StartLevel    int              `yaml:"start_level"` // clamped to 1-10
	Difficulty    DifficultyPreset `yaml:"difficulty"`  // overrides start_level when set
	TimeLimitSecs int              `yaml:"time_limit_secs"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`
}

// UIConfig toggles optional interface elements.
type UIConfig struct {
	ShowHelp bool `yaml:"show_help"`
}

// EngineMode returns the configured engine mode.
func (g GameConfig) EngineMode() engine.Mode {
	return engine.ParseMode(g.Mode)
}

// EffectiveStartLevel returns the start level after applying the difficulty
// preset and clamping.
func (g GameConfig) EffectiveStartLevel() int {
	if lvl, ok := StartLevelForPreset(g.Difficulty); ok {
		return lvl
	}
	return engine.ClampStartLevel(g.StartLevel)
}

// TimeLimit returns the time-mode clock as a duration.
func (g GameConfig) TimeLimit() time.Duration {
	if g.TimeLimitSecs <= 0 {
		return engine.DefaultTimeLimit
	}
	return time.Duration(g.TimeLimitSecs) * time.Second
}
