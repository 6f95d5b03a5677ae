// Package dungeon builds the tile grid of a crypt and places things on it.
package dungeon

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cryptsteps/internal/core"
)

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
)

// Rune returns the ASCII glyph used for the tile in text dumps.
func (t Tile) Rune() rune {
	if t == TileFloor {
		return '.'
	}
	return '#'
}

// Grid is a fixed-size tile map stored row-major.
// It is read-only outside this package once generated.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// newGrid returns a grid filled with walls.
func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height), // TileWall is the zero value
	}
}

// Parse builds a grid from rows of '#' (wall) and '.' (floor).
// All rows must have the same length.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dungeon: parse: no rows")
	}
	width := len(rows[0])
	g := newGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("dungeon: parse: row %d has width %d, expected %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
			case '.':
				g.set(core.Pt(x, y), TileFloor)
			default:
				return nil, fmt.Errorf("dungeon: parse: unknown tile %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on malformed input. Intended for fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// IsInterior reports whether p lies strictly inside the border.
func (g *Grid) IsInterior(p core.Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < g.width-1 && p.Y < g.height-1
}

// At returns the tile at p. Out-of-bounds cells read as walls.
func (g *Grid) At(p core.Point) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.tiles[p.Y*g.width+p.X]
}

// IsBlocked reports whether p is out of bounds or a wall.
func (g *Grid) IsBlocked(p core.Point) bool {
	return g.At(p) == TileWall
}

// IsFloor reports whether p is an in-bounds floor cell.
func (g *Grid) IsFloor(p core.Point) bool {
	return !g.IsBlocked(p)
}

// FloorCells returns every floor cell in row-major order.
func (g *Grid) FloorCells() []core.Point {
	var cells []core.Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == TileFloor {
				cells = append(cells, core.Pt(x, y))
			}
		}
	}
	return cells
}

// FloorCount returns the number of floor cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// String renders the grid as '#' and '.' rows separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.tiles[y*g.width+x].Rune())
		}
	}
	return sb.String()
}

func (g *Grid) set(p core.Point, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.tiles[p.Y*g.width+p.X] = t
}

// carveRoom floors the inclusive rectangle center±(rw,rh), clipped to the interior.
func (g *Grid) carveRoom(center core.Point, rw, rh int) {
	x0 := core.Max(1, center.X-rw)
	x1 := core.Min(g.width-2, center.X+rw)
	y0 := core.Max(1, center.Y-rh)
	y1 := core.Min(g.height-2, center.Y+rh)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.set(core.Pt(x, y), TileFloor)
		}
	}
}

// carveRun floors length cells from start along step, each clamped to the interior.
func (g *Grid) carveRun(start, step core.Point, length int) {
	p := start
	for i := 0; i < length; i++ {
		g.set(core.Pt(
			core.Clamp(p.X, 1, g.width-2),
			core.Clamp(p.Y, 1, g.height-2),
		), TileFloor)
		p = p.Add(step)
	}
}
