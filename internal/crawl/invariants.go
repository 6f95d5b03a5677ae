package crawl

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/cryptsteps/internal/core"
)

// InvariantViolation reports an episode state the turn rules should never produce.
type InvariantViolation struct {
	Rule   string
	Detail string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("crawl: invariant %s violated: %s", v.Rule, v.Detail)
}

// CheckInvariants verifies a resolved episode: every actor on floor, no two
// actors on one cell, every patrol cursor in range, and player health within
// bounds (never above the start, exhausted only in a lost episode).
func CheckInvariants(ep *Episode) error {
	if ep == nil {
		return nil
	}
	seen := mapset.New[core.Point]()

	p := ep.Player
	switch {
	case p.Health > p.MaxHealth:
		return &InvariantViolation{Rule: "health-bounds", Detail: fmt.Sprintf("health %d above %d", p.Health, p.MaxHealth)}
	case p.Health <= 0 && ep.Verdict != VerdictLost:
		return &InvariantViolation{Rule: "health-bounds", Detail: fmt.Sprintf("health %d in a %v episode", p.Health, ep.Verdict)}
	}

	if !ep.Grid.IsFloor(ep.Player.Pos) {
		return &InvariantViolation{Rule: "actor-on-floor", Detail: fmt.Sprintf("player at %v", ep.Player.Pos)}
	}
	seen.Put(ep.Player.Pos)

	for i, en := range ep.Enemies {
		if !ep.Grid.IsFloor(en.Pos) {
			return &InvariantViolation{Rule: "actor-on-floor", Detail: fmt.Sprintf("enemy %d at %v", i, en.Pos)}
		}
		if seen.Has(en.Pos) {
			return &InvariantViolation{Rule: "no-overlap", Detail: fmt.Sprintf("enemy %d shares %v", i, en.Pos)}
		}
		seen.Put(en.Pos)
		if en.cursor < 0 || en.cursor >= len(en.patrol) {
			return &InvariantViolation{Rule: "cursor-in-range", Detail: fmt.Sprintf("enemy %d cursor %d of %d", i, en.cursor, len(en.patrol))}
		}
	}
	return nil
}

// checkReservations verifies that occ holds exactly the enemy cells.
func checkReservations(ep *Episode, occ *Occupancy) error {
	if occ.Size() != len(ep.Enemies) {
		return &InvariantViolation{Rule: "reservation-count", Detail: fmt.Sprintf("%d reservations for %d enemies", occ.Size(), len(ep.Enemies))}
	}
	for i, en := range ep.Enemies {
		if !occ.Has(en.Pos) {
			return &InvariantViolation{Rule: "reservation-count", Detail: fmt.Sprintf("enemy %d at %v not reserved", i, en.Pos)}
		}
	}
	return nil
}
