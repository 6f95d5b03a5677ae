package crawl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

// Verdict is the terminal flag of an episode.
type Verdict int

const (
	VerdictOngoing Verdict = iota
	VerdictWon
	VerdictLost
)

func (v Verdict) String() string {
	switch v {
	case VerdictWon:
		return "won"
	case VerdictLost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Episode is one game from spawn to verdict. It is owned by a single Engine
// and replaced wholesale on restart.
type Episode struct {
	ID      uuid.UUID
	Seed    int64
	Grid    *dungeon.Grid
	Player  *Player
	Enemies []*Enemy
	Goal    core.Point
	Verdict Verdict
}

// NewEpisode assembles an episode from already placed pieces.
func NewEpisode(grid *dungeon.Grid, player *Player, enemies []*Enemy, goal core.Point) *Episode {
	return &Episode{
		ID:      uuid.New(),
		Grid:    grid,
		Player:  player,
		Enemies: enemies,
		Goal:    goal,
	}
}

// SpawnParams controls actor placement on a fresh grid.
type SpawnParams struct {
	PlayerHealth int
	EnemyCount   int
	PatrolLimit  int
	PatrolHalfW  dungeon.Range
	PatrolHalfH  dungeon.Range
}

// DefaultSpawnParams mirrors the classic crypt: 3 health, 6 enemies, 8 waypoints.
func DefaultSpawnParams() SpawnParams {
	return SpawnParams{
		PlayerHealth: 3,
		EnemyCount:   6,
		PatrolLimit:  8,
		PatrolHalfW:  dungeon.Range{Min: 2, Max: 4},
		PatrolHalfH:  dungeon.Range{Min: 1, Max: 3},
	}
}

// Validate rejects parameters Spawn cannot place. A zero PatrolLimit keeps
// every cell of the patrol area.
func (p SpawnParams) Validate() error {
	switch {
	case p.PlayerHealth < 1:
		return fmt.Errorf("crawl: %w: player health %d", dungeon.ErrInvalidParams, p.PlayerHealth)
	case p.EnemyCount < 0:
		return fmt.Errorf("crawl: %w: negative enemy count", dungeon.ErrInvalidParams)
	case p.PatrolLimit < 0:
		return fmt.Errorf("crawl: %w: negative patrol limit", dungeon.ErrInvalidParams)
	case p.PatrolHalfW.Min < 0 || p.PatrolHalfW.Min > p.PatrolHalfW.Max,
		p.PatrolHalfH.Min < 0 || p.PatrolHalfH.Min > p.PatrolHalfH.Max:
		return fmt.Errorf("crawl: %w: bad patrol extent range", dungeon.ErrInvalidParams)
	}
	return nil
}

// Spawn places the player, the enemies and the goal on grid.
// Player and enemies never share a cell; the goal is never the player's start
// but may sit under an enemy.
func Spawn(src dungeon.Source, grid *dungeon.Grid, p SpawnParams) (*Episode, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	taken := mapset.New[core.Point]()

	start, err := dungeon.RandomFloorCell(src, grid, &taken)
	if err != nil {
		return nil, fmt.Errorf("crawl: place player: %w", err)
	}
	taken.Put(start)
	player := NewPlayer(start, p.PlayerHealth)

	enemies := make([]*Enemy, 0, p.EnemyCount)
	for i := 0; i < p.EnemyCount; i++ {
		pos, err := dungeon.RandomFloorCell(src, grid, &taken)
		if err != nil {
			return nil, fmt.Errorf("crawl: place enemy %d: %w", i, err)
		}
		taken.Put(pos)
		patrol := dungeon.PatrolArea(src, grid, pos, p.PatrolHalfW.Between(src), p.PatrolHalfH.Between(src), p.PatrolLimit)
		e, err := NewEnemy(pos, patrol)
		if err != nil {
			return nil, fmt.Errorf("crawl: enemy %d at %v: %w", i, pos, err)
		}
		enemies = append(enemies, e)
	}

	notStart := mapset.New[core.Point]()
	notStart.Put(start)
	goal, err := dungeon.RandomFloorCell(src, grid, &notStart)
	if err != nil {
		return nil, fmt.Errorf("crawl: place goal: %w", err)
	}

	return NewEpisode(grid, player, enemies, goal), nil
}
