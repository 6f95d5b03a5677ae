package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset resolves a preset name, case-insensitively.
// An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", &ConfigError{Field: "difficulty", Reason: fmt.Sprintf("unknown preset %q", name)}
	}
}

// ApplyPreset modifies the settings based on a difficulty preset.
// Normal keeps whatever the loaded file says.
func ApplyPreset(cfg *Settings, preset DifficultyPreset) {
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
		cfg.Enemies.Count = 4
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Enemies.Count = 9
		cfg.Enemies.PatrolLimit = 12
	}
}
