package crawl

import (
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

// PlanStep returns the step the enemy wants to take this turn.
// An enemy already standing on its waypoint advances the cursor and aims at
// the next waypoint within the same turn.
func (e *Enemy) PlanStep() core.Point {
	step := e.Pos.StepToward(e.Target())
	if step.IsZero() {
		e.SetCursor(e.cursor + 1)
		step = e.Pos.StepToward(e.Target())
	}
	return step
}

// Advance runs one patrol turn. Facing and motion follow the planned step
// whether or not it executes; the move itself happens only when the target
// cell is neither a wall nor reserved in occ. Reports whether the enemy moved.
//
// The caller owns occ bookkeeping: release the enemy's own cell before the
// call and reserve its resulting cell afterwards.
func (e *Enemy) Advance(g *dungeon.Grid, occ *Occupancy) bool {
	step := e.PlanStep()
	e.Facing = step
	if step.IsZero() {
		e.Motion = MotionIdle
		return false
	}
	e.Motion = MotionMoving

	candidate := e.Pos.Add(step)
	if occ.Blocked(g, candidate) {
		return false
	}
	e.Pos = candidate
	return true
}
