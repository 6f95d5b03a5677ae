package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every settings validation failure.
var ErrInvalidConfig = errors.New("config: invalid settings")

// ConfigError describes one rejected setting.
type ConfigError struct {
	Field  string
	Reason string
	Err    error // underlying cause, if any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}
	return []error{ErrInvalidConfig}
}

// Validate checks that the settings describe a playable crypt.
func Validate(cfg Settings) error {
	if err := cfg.GeneratorParams().Validate(); err != nil {
		return &ConfigError{Field: "map", Reason: err.Error(), Err: err}
	}

	floorRange := func(field string, min, max int) error {
		if min > max {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("min %d exceeds max %d", min, max)}
		}
		if min < 0 {
			return &ConfigError{Field: field, Reason: "negative extent"}
		}
		return nil
	}

	switch {
	case cfg.Player.Health < 1:
		return &ConfigError{Field: "player.health", Reason: fmt.Sprintf("must be at least 1, got %d", cfg.Player.Health)}
	case cfg.Enemies.Count < 0:
		return &ConfigError{Field: "enemies.count", Reason: "must not be negative"}
	case cfg.Enemies.PatrolLimit < 1:
		return &ConfigError{Field: "enemies.patrol_limit", Reason: "must be at least 1"}
	case cfg.Input.ReleaseAfterMS < 0:
		return &ConfigError{Field: "input.release_after_ms", Reason: "must not be negative"}
	case cfg.Input.RepeatDelayMS < 0:
		return &ConfigError{Field: "input.repeat_delay_ms", Reason: "must not be negative"}
	case cfg.Audio.MasterVolume < 0 || cfg.Audio.MasterVolume > 1:
		return &ConfigError{Field: "audio.master_volume", Reason: "must be within 0..1"}
	case cfg.Audio.MusicVolume < 0 || cfg.Audio.MusicVolume > 1:
		return &ConfigError{Field: "audio.music_volume", Reason: "must be within 0..1"}
	case cfg.Animation.HeroIdleFPS <= 0 || cfg.Animation.HeroMoveFPS <= 0 ||
		cfg.Animation.EnemyIdleFPS <= 0 || cfg.Animation.EnemyMoveFPS <= 0:
		return &ConfigError{Field: "animation", Reason: "frame rates must be positive"}
	case cfg.Animation.HitFlashMS < 0:
		return &ConfigError{Field: "animation.hit_flash_ms", Reason: "must not be negative"}
	}

	if err := floorRange("enemies.patrol_half_w", cfg.Enemies.PatrolHalfW.Min, cfg.Enemies.PatrolHalfW.Max); err != nil {
		return err
	}
	if err := floorRange("enemies.patrol_half_h", cfg.Enemies.PatrolHalfH.Min, cfg.Enemies.PatrolHalfH.Max); err != nil {
		return err
	}

	switch cfg.Difficulty {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		return &ConfigError{Field: "difficulty", Reason: fmt.Sprintf("unknown preset %q", cfg.Difficulty)}
	}
	return nil
}
