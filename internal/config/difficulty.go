package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
// Presets only choose a start level; the scroll and target formulas never change.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// StartLevelForPreset returns the start level a preset maps to.
// The second result is false when the preset is empty or unknown.
func StartLevelForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 1, true
	case DifficultyNormal:
		return 4, true
	case DifficultyHard:
		return 7, true
	default:
		return 0, false
	}
}
