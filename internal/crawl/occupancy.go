package crawl

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

// Occupancy is the set of cells reserved by actors during one turn.
// It is derived from the actor positions whenever a turn needs it.
type Occupancy struct {
	cells mapset.Set[core.Point]
}

// NewOccupancy returns an empty occupancy.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: mapset.New[core.Point]()}
}

// EnemyOccupancy reserves the cell of every enemy.
func EnemyOccupancy(enemies []*Enemy) *Occupancy {
	o := NewOccupancy()
	for _, e := range enemies {
		o.Reserve(e.Pos)
	}
	return o
}

// Reserve marks p as occupied.
func (o *Occupancy) Reserve(p core.Point) {
	o.cells.Put(p)
}

// Release frees p.
func (o *Occupancy) Release(p core.Point) {
	o.cells.Remove(p)
}

// Has reports whether p is reserved.
func (o *Occupancy) Has(p core.Point) bool {
	return o.cells.Has(p)
}

// OccupiedByOthers reports whether p is reserved by an actor other than the
// one standing at self.
func (o *Occupancy) OccupiedByOthers(p, self core.Point) bool {
	return p != self && o.Has(p)
}

// Size returns the number of reserved cells.
func (o *Occupancy) Size() int {
	return o.cells.Size()
}

// Blocked reports whether p is a wall, out of bounds or reserved.
func (o *Occupancy) Blocked(g *dungeon.Grid, p core.Point) bool {
	return g.IsBlocked(p) || o.Has(p)
}
