package dungeon

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/cryptsteps/internal/core"
)

// ErrNoFloor is returned when no free floor cell is left to place something on.
var ErrNoFloor = errors.New("dungeon: no free floor cell")

// RandomFloorCell picks a uniformly random interior floor cell that is not in avoid.
// A nil avoid set excludes nothing.
func RandomFloorCell(src Source, g *Grid, avoid *mapset.Set[core.Point]) (core.Point, error) {
	var candidates []core.Point
	for _, p := range g.FloorCells() {
		if !g.IsInterior(p) {
			continue
		}
		if avoid != nil && avoid.Has(p) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return core.Point{}, ErrNoFloor
	}
	return candidates[src.Intn(len(candidates))], nil
}

// PatrolArea returns up to limit waypoints drawn from the interior cells of the
// inclusive rectangle center±(halfW, halfH), in random order. Walls are kept:
// an enemy aiming at one stalls against it. An interior center makes the
// result non-empty.
func PatrolArea(src Source, g *Grid, center core.Point, halfW, halfH, limit int) []core.Point {
	var cells []core.Point
	for y := center.Y - halfH; y <= center.Y+halfH; y++ {
		for x := center.X - halfW; x <= center.X+halfW; x++ {
			p := core.Pt(x, y)
			if g.IsInterior(p) {
				cells = append(cells, p)
			}
		}
	}
	Shuffle(src, cells)
	if limit > 0 && len(cells) > limit {
		cells = cells[:limit]
	}
	return cells
}

// Shuffle permutes cells in place with a Fisher-Yates pass over src.
func Shuffle(src Source, cells []core.Point) {
	for i := len(cells) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}
