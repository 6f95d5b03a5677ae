package crawl

import (
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

// ActorView is the render-side copy of an actor.
type ActorView struct {
	Pos    core.Point
	Facing core.Point
	Motion Motion
}

// Snapshot is a read-only copy of everything a frame needs to draw.
type Snapshot struct {
	EpisodeID string
	Grid      *dungeon.Grid // shared, never mutated after generation
	Player    ActorView
	Health    int
	Enemies   []ActorView
	Goal      core.Point
	State     State
	Verdict   Verdict
	Turn      int
}

// Snapshot captures the current episode. A discarded episode yields only the state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{State: e.state, Turn: e.turn}
	ep := e.ep
	if ep == nil {
		return snap
	}

	snap.EpisodeID = ep.ID.String()
	snap.Grid = ep.Grid
	snap.Player = ActorView{Pos: ep.Player.Pos, Facing: ep.Player.Facing, Motion: ep.Player.Motion}
	snap.Health = ep.Player.Health
	snap.Goal = ep.Goal
	snap.Verdict = ep.Verdict
	snap.Enemies = make([]ActorView, len(ep.Enemies))
	for i, en := range ep.Enemies {
		snap.Enemies[i] = ActorView{Pos: en.Pos, Facing: en.Facing, Motion: en.Motion}
	}
	return snap
}
