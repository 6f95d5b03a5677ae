// Package config provides YAML-based settings loading, environment overrides
// and difficulty presets for the crypt.
package config

import (
	"time"

	"github.com/vovakirdan/cryptsteps/internal/crawl"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

// Settings contains all tunable parameters of a crypt session.
type Settings struct {
	Difficulty DifficultyPreset  `yaml:"difficulty"`
	Grid       GridSettings      `yaml:"grid"`
	Map        MapSettings       `yaml:"map"`
	Player     PlayerSettings    `yaml:"player"`
	Enemies    EnemySettings     `yaml:"enemies"`
	Input      InputSettings     `yaml:"input"`
	Audio      AudioSettings     `yaml:"audio"`
	Animation  AnimationSettings `yaml:"animation"`
}

// GridSettings defines the crypt dimensions in cells.
type GridSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MapSettings defines how rooms and corridors are carved.
type MapSettings struct {
	CentralHalfW int           `yaml:"central_half_w"`
	CentralHalfH int           `yaml:"central_half_h"`
	Rooms        int           `yaml:"rooms"`
	RoomHalfW    dungeon.Range `yaml:"room_half_w"`
	RoomHalfH    dungeon.Range `yaml:"room_half_h"`
	Corridors    int           `yaml:"corridors"`
	CorridorLen  dungeon.Range `yaml:"corridor_len"`
}

// PlayerSettings defines the hero.
type PlayerSettings struct {
	Health int `yaml:"health"`
}

// EnemySettings defines the patrolling skeletons.
type EnemySettings struct {
	Count       int           `yaml:"count"`
	PatrolLimit int           `yaml:"patrol_limit"` // Max waypoints per patrol
	PatrolHalfW dungeon.Range `yaml:"patrol_half_w"`
	PatrolHalfH dungeon.Range `yaml:"patrol_half_h"`
}

// InputSettings defines key repeat suppression.
type InputSettings struct {
	// ReleaseAfterMS is the silence after which a repeating key counts as released.
	ReleaseAfterMS int `yaml:"release_after_ms"`
	// RepeatDelayMS bounds the OS delay before the first auto-repeat.
	RepeatDelayMS int `yaml:"repeat_delay_ms"`
}

// AudioSettings defines sound output.
type AudioSettings struct {
	Enabled      bool    `yaml:"enabled"`
	Music        bool    `yaml:"music"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

// AnimationSettings defines sprite frame rates.
type AnimationSettings struct {
	HeroIdleFPS  float64 `yaml:"hero_idle_fps"`
	HeroMoveFPS  float64 `yaml:"hero_move_fps"`
	EnemyIdleFPS float64 `yaml:"enemy_idle_fps"`
	EnemyMoveFPS float64 `yaml:"enemy_move_fps"`
	HitFlashMS   int     `yaml:"hit_flash_ms"`
}

// ReleaseAfter returns the input release window as a duration.
func (s InputSettings) ReleaseAfter() time.Duration {
	return time.Duration(s.ReleaseAfterMS) * time.Millisecond
}

// RepeatDelay returns the first auto-repeat bound as a duration.
func (s InputSettings) RepeatDelay() time.Duration {
	return time.Duration(s.RepeatDelayMS) * time.Millisecond
}

// HitFlash returns the damage flash length as a duration.
func (s AnimationSettings) HitFlash() time.Duration {
	return time.Duration(s.HitFlashMS) * time.Millisecond
}

// GeneratorParams converts the grid and map sections for dungeon.NewGenerator.
func (s Settings) GeneratorParams() dungeon.Params {
	return dungeon.Params{
		Width:         s.Grid.Width,
		Height:        s.Grid.Height,
		CentralHalfW:  s.Map.CentralHalfW,
		CentralHalfH:  s.Map.CentralHalfH,
		RoomCount:     s.Map.Rooms,
		RoomHalfW:     s.Map.RoomHalfW,
		RoomHalfH:     s.Map.RoomHalfH,
		CorridorCount: s.Map.Corridors,
		CorridorLen:   s.Map.CorridorLen,
	}
}

// SpawnParams converts the player and enemy sections for crawl.Spawn.
func (s Settings) SpawnParams() crawl.SpawnParams {
	return crawl.SpawnParams{
		PlayerHealth: s.Player.Health,
		EnemyCount:   s.Enemies.Count,
		PatrolLimit:  s.Enemies.PatrolLimit,
		PatrolHalfW:  s.Enemies.PatrolHalfW,
		PatrolHalfH:  s.Enemies.PatrolHalfH,
	}
}
