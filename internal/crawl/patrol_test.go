package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

var corridorFixture = []string{
	"#######",
	"#.....#",
	"#.....#",
	"#.....#",
	"#######",
}

func mustEnemy(t *testing.T, pos core.Point, patrol ...core.Point) *Enemy {
	t.Helper()
	e, err := NewEnemy(pos, patrol)
	require.NoError(t, err)
	return e
}

func TestNewEnemyRejectsEmptyPatrol(t *testing.T) {
	_, err := NewEnemy(core.Pt(1, 1), nil)
	assert.ErrorIs(t, err, ErrEmptyPatrol)
}

func TestPatrolWrapsWithinSameTurn(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	e := mustEnemy(t, core.Pt(1, 3), core.Pt(5, 3), core.Pt(3, 1), core.Pt(1, 3))
	e.SetCursor(2)

	moved := e.Advance(g, NewOccupancy())

	assert.True(t, moved)
	assert.Equal(t, 0, e.Cursor(), "cursor wraps past the last waypoint")
	assert.Equal(t, core.Pt(2, 3), e.Pos, "enemy heads to patrol[0] without waiting a turn")
	assert.Equal(t, core.StepRight, e.Facing)
	assert.Equal(t, MotionMoving, e.Motion)
}

func TestPatrolCycle(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	e := mustEnemy(t, core.Pt(1, 1), core.Pt(3, 1), core.Pt(1, 1))

	want := []core.Point{
		core.Pt(2, 1), core.Pt(3, 1), // to waypoint 0
		core.Pt(2, 1), core.Pt(1, 1), // back to waypoint 1
		core.Pt(2, 1),
	}
	for i, p := range want {
		e.Advance(g, NewOccupancy())
		require.Equal(t, p, e.Pos, "turn %d", i)
		require.GreaterOrEqual(t, e.Cursor(), 0)
		require.Less(t, e.Cursor(), 2)
	}
}

func TestPatrolDiagonalStep(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	e := mustEnemy(t, core.Pt(1, 1), core.Pt(4, 3))

	e.Advance(g, NewOccupancy())
	assert.Equal(t, core.Pt(2, 2), e.Pos)
	assert.Equal(t, core.Pt(1, 1), e.Facing)
}

func TestPatrolStallsAgainstWall(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	e := mustEnemy(t, core.Pt(1, 1), core.Pt(0, 0))

	for i := 0; i < 3; i++ {
		assert.False(t, e.Advance(g, NewOccupancy()))
	}
	assert.Equal(t, core.Pt(1, 1), e.Pos)
	assert.Equal(t, core.Pt(-1, -1), e.Facing, "facing follows the planned step")
	assert.Equal(t, MotionMoving, e.Motion)
}

func TestPatrolSingleWaypointOnSelfIsIdle(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	e := mustEnemy(t, core.Pt(2, 2), core.Pt(2, 2))

	assert.False(t, e.Advance(g, NewOccupancy()))
	assert.Equal(t, core.Pt(2, 2), e.Pos)
	assert.Equal(t, core.Point{}, e.Facing)
	assert.Equal(t, MotionIdle, e.Motion)
	assert.Equal(t, 0, e.Cursor())
}

func TestEnemiesResolveInSpawnOrder(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	first := mustEnemy(t, core.Pt(2, 1), core.Pt(2, 3))  // wants (2,2)
	second := mustEnemy(t, core.Pt(3, 2), core.Pt(1, 2)) // also wants (2,2)
	third := mustEnemy(t, core.Pt(1, 1), core.Pt(3, 1))  // wants (2,1), vacated by first

	ep := NewEpisode(g, NewPlayer(core.Pt(5, 3), 3), []*Enemy{first, second, third}, core.Pt(5, 1))
	eng := NewEngine(ep, WithStrictInvariants())

	_, err := eng.Handle(IntentLeft)
	require.NoError(t, err)

	assert.Equal(t, core.Pt(2, 2), first.Pos)
	assert.Equal(t, core.Pt(3, 2), second.Pos, "reservation by the first enemy blocks the second")
	assert.Equal(t, core.StepLeft, second.Facing)
	assert.Equal(t, core.Pt(2, 1), third.Pos, "a cell vacated earlier in the pass is free")
}

func TestOccupancy(t *testing.T) {
	g := dungeon.MustParse(corridorFixture...)
	e1 := mustEnemy(t, core.Pt(1, 1), core.Pt(1, 1))
	e2 := mustEnemy(t, core.Pt(4, 2), core.Pt(4, 2))
	occ := EnemyOccupancy([]*Enemy{e1, e2})

	assert.Equal(t, 2, occ.Size())
	assert.True(t, occ.Has(core.Pt(4, 2)))
	assert.False(t, occ.OccupiedByOthers(core.Pt(1, 1), core.Pt(1, 1)), "own cell is not occupied by others")
	assert.True(t, occ.OccupiedByOthers(core.Pt(1, 1), core.Pt(2, 1)))
	assert.True(t, occ.Blocked(g, core.Pt(0, 1)), "walls block")
	assert.True(t, occ.Blocked(g, core.Pt(4, 2)), "reservations block")
	assert.False(t, occ.Blocked(g, core.Pt(3, 3)))

	occ.Release(core.Pt(4, 2))
	assert.False(t, occ.Has(core.Pt(4, 2)))
}
