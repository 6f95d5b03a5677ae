package dungeon

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cryptsteps/internal/core"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("dungeon: invalid generator parameters")

// Source is the random source consumed by generation and spawning.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Between draws a uniform integer from r.
func (r Range) Between(src Source) int {
	return r.Min + src.Intn(r.Max-r.Min+1)
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// Params controls the shape of a generated crypt.
type Params struct {
	Width  int
	Height int

	// CentralHalfW and CentralHalfH are the half-extents of the room that is
	// always carved at the grid center.
	CentralHalfW int
	CentralHalfH int

	RoomCount     int
	RoomHalfW     Range
	RoomHalfH     Range
	CorridorCount int
	CorridorLen   Range
}

// DefaultParams returns the classic 20x15 crypt layout.
func DefaultParams() Params {
	return Params{
		Width:         20,
		Height:        15,
		CentralHalfW:  4,
		CentralHalfH:  3,
		RoomCount:     8,
		RoomHalfW:     Range{Min: 2, Max: 4},
		RoomHalfH:     Range{Min: 2, Max: 3},
		CorridorCount: 30,
		CorridorLen:   Range{Min: 3, Max: 8},
	}
}

// Validate rejects parameters that leave no room for the central room or
// give an empty range for random room and corridor centers.
func (p Params) Validate() error {
	switch {
	case p.Width < 5 || p.Height < 5:
		return fmt.Errorf("%w: grid %dx%d is smaller than 5x5", ErrInvalidParams, p.Width, p.Height)
	case p.CentralHalfW < 0 || p.CentralHalfH < 0:
		return fmt.Errorf("%w: negative central room extents", ErrInvalidParams)
	case p.Width < 2*p.CentralHalfW+3 || p.Height < 2*p.CentralHalfH+3:
		return fmt.Errorf("%w: central room %dx%d does not fit inside a %dx%d grid",
			ErrInvalidParams, 2*p.CentralHalfW+1, 2*p.CentralHalfH+1, p.Width, p.Height)
	case p.RoomCount < 0 || p.CorridorCount < 0:
		return fmt.Errorf("%w: negative room or corridor count", ErrInvalidParams)
	case !p.RoomHalfW.valid() || !p.RoomHalfH.valid() || p.RoomHalfW.Min < 0 || p.RoomHalfH.Min < 0:
		return fmt.Errorf("%w: bad room extent range", ErrInvalidParams)
	case !p.CorridorLen.valid() || p.CorridorLen.Min < 1:
		return fmt.Errorf("%w: bad corridor length range", ErrInvalidParams)
	}
	return nil
}

// Generator carves crypts with fixed parameters.
type Generator struct {
	params Params
}

// NewGenerator validates params and returns a generator for them.
func NewGenerator(params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: params}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate builds a new grid. The result depends only on the values drawn
// from src: a wall canvas, the central room, RoomCount random rooms, then
// CorridorCount straight runs. Connectivity is not guaranteed.
func (g *Generator) Generate(src Source) *Grid {
	p := g.params
	grid := newGrid(p.Width, p.Height)

	grid.carveRoom(core.Pt(p.Width/2, p.Height/2), p.CentralHalfW, p.CentralHalfH)

	centers := Range{Min: 2, Max: p.Width - 3}
	rows := Range{Min: 2, Max: p.Height - 3}

	for i := 0; i < p.RoomCount; i++ {
		center := core.Pt(centers.Between(src), rows.Between(src))
		grid.carveRoom(center, p.RoomHalfW.Between(src), p.RoomHalfH.Between(src))
	}

	for i := 0; i < p.CorridorCount; i++ {
		start := core.Pt(centers.Between(src), rows.Between(src))
		length := p.CorridorLen.Between(src)
		step := core.StepRight
		if src.Intn(2) == 1 {
			step = core.StepDown
		}
		grid.carveRun(start, step, length)
	}

	return grid
}
