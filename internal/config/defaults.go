package config

import (
	_ "embed"

	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

//go:embed defaults/cryptsteps.yaml
var defaultYAML []byte

// Default returns the hardcoded settings of the classic crypt.
func Default() Settings {
	return Settings{
		Difficulty: DifficultyNormal,
		Grid: GridSettings{
			Width:  20,
			Height: 15,
		},
		Map: MapSettings{
			CentralHalfW: 4,
			CentralHalfH: 3,
			Rooms:        8,
			RoomHalfW:    dungeon.Range{Min: 2, Max: 4},
			RoomHalfH:    dungeon.Range{Min: 2, Max: 3},
			Corridors:    30,
			CorridorLen:  dungeon.Range{Min: 3, Max: 8},
		},
		Player: PlayerSettings{
			Health: 3,
		},
		Enemies: EnemySettings{
			Count:       6,
			PatrolLimit: 8,
			PatrolHalfW: dungeon.Range{Min: 2, Max: 4},
			PatrolHalfH: dungeon.Range{Min: 1, Max: 3},
		},
		Input: InputSettings{
			ReleaseAfterMS: 120,
			RepeatDelayMS:  700,
		},
		Audio: AudioSettings{
			Enabled:      true,
			Music:        true,
			MasterVolume: 1.0,
			MusicVolume:  0.5,
		},
		Animation: AnimationSettings{
			HeroIdleFPS:  3,
			HeroMoveFPS:  8,
			EnemyIdleFPS: 3,
			EnemyMoveFPS: 6,
			HitFlashMS:   600,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
