package cryptsteps

import "github.com/vovakirdan/cryptsteps/internal/crawl"

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Phase     Phase
	MenuIndex int
	AudioOn   bool
	Seed      int64 // seed of the current episode, 0 in the menu
	Crawl     crawl.Snapshot
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Phase:     g.phase,
		MenuIndex: g.menuIndex,
		AudioOn:   g.deps.Sound.Enabled(),
	}
	if g.engine != nil {
		snap.Seed = g.seed
		snap.Crawl = g.engine.Snapshot()
	}
	return snap
}
