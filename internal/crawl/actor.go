// Package crawl implements the turn-resolution engine of the crypt: actors,
// occupancy, enemy patrols and the turn state machine.
package crawl

import (
	"errors"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

// Motion is the animation signal an actor last raised.
type Motion int

const (
	MotionIdle Motion = iota
	MotionMoving
)

func (m Motion) String() string {
	if m == MotionMoving {
		return "moving"
	}
	return "idle"
}

// initialFacing is the direction every actor faces when spawned.
var initialFacing = core.StepRight

// Player is the avatar controlled by the human.
type Player struct {
	Pos       core.Point
	Facing    core.Point
	Health    int
	MaxHealth int
	Motion    Motion
}

// NewPlayer creates a player standing at pos with the given health.
func NewPlayer(pos core.Point, health int) *Player {
	return &Player{
		Pos:       pos,
		Facing:    initialFacing,
		Health:    health,
		MaxHealth: health,
	}
}

// TryMove attempts a one-cell cardinal move. The move succeeds iff the target
// cell is not blocked on the grid and no enemy stands on it. Facing records
// the attempted direction either way.
func (p *Player) TryMove(g *dungeon.Grid, occ *Occupancy, delta core.Point) bool {
	p.Facing = delta
	candidate := p.Pos.Add(delta)
	if g.IsBlocked(candidate) || occ.OccupiedByOthers(candidate, p.Pos) {
		p.Motion = MotionIdle
		return false
	}
	p.Pos = candidate
	p.Motion = MotionMoving
	return true
}

// Hurt applies one unit of damage.
func (p *Player) Hurt() {
	p.Health--
}

// Alive reports whether the player still has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// ErrEmptyPatrol is returned when an enemy is given no waypoints.
var ErrEmptyPatrol = errors.New("crawl: enemy patrol is empty")

// Enemy walks a fixed cycle of waypoints.
type Enemy struct {
	Pos    core.Point
	Facing core.Point
	Motion Motion

	patrol []core.Point
	cursor int
}

// NewEnemy creates an enemy at pos patrolling the given waypoints in order.
func NewEnemy(pos core.Point, patrol []core.Point) (*Enemy, error) {
	if len(patrol) == 0 {
		return nil, ErrEmptyPatrol
	}
	waypoints := make([]core.Point, len(patrol))
	copy(waypoints, patrol)
	return &Enemy{
		Pos:    pos,
		Facing: initialFacing,
		patrol: waypoints,
	}, nil
}

// Patrol returns a copy of the waypoint cycle.
func (e *Enemy) Patrol() []core.Point {
	out := make([]core.Point, len(e.patrol))
	copy(out, e.patrol)
	return out
}

// Cursor returns the index of the current waypoint.
func (e *Enemy) Cursor() int {
	return e.cursor
}

// Target returns the current waypoint.
func (e *Enemy) Target() core.Point {
	return e.patrol[e.cursor]
}

// SetCursor positions the patrol cursor, wrapping out-of-range values.
func (e *Enemy) SetCursor(i int) {
	n := len(e.patrol)
	e.cursor = ((i % n) + n) % n
}
