package cryptsteps

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/cryptsteps/internal/audio"
	"github.com/vovakirdan/cryptsteps/internal/config"
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/crawl"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
	"github.com/vovakirdan/cryptsteps/internal/registry"
)

type recordSink struct {
	mu     sync.Mutex
	played []audio.Sound
	music  []bool
}

func (s *recordSink) Play(snd audio.Sound) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played = append(s.played, snd)
	return nil
}

func (s *recordSink) SetMusic(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.music = append(s.music, on)
	return nil
}

func (s *recordSink) Close() error { return nil }

func (s *recordSink) lastMusic() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.music) == 0 {
		return false, false
	}
	return s.music[len(s.music)-1], true
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(t *testing.T, seed int64) (*Game, *recordSink) {
	t.Helper()
	sink := &recordSink{}
	g := New(registry.Deps{Sound: audio.NewBoundary(sink, nil, true)})
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g, sink
}

// corridor builds a one-row crypt with the hero at x=1 and the goal at goalX.
func corridor(t *testing.T, health, goalX int, enemies ...*crawl.Enemy) *crawl.Episode {
	t.Helper()
	grid := dungeon.MustParse(
		"#######",
		"#.....#",
		"#######",
	)
	return crawl.NewEpisode(grid, crawl.NewPlayer(core.Pt(1, 1), health), enemies, core.Pt(goalX, 1))
}

func TestMenuNavigationWraps(t *testing.T) {
	g, _ := newTestGame(t, 1)

	tests := []struct {
		action   core.Action
		expected int
	}{
		{core.ActionUp, menuExit},
		{core.ActionUp, menuAudio},
		{core.ActionDown, menuExit},
		{core.ActionDown, menuStart},
	}
	for _, tc := range tests {
		g.Step(press(tc.action))
		if g.menuIndex != tc.expected {
			t.Errorf("after %v menuIndex = %d, expected %d", tc.action, g.menuIndex, tc.expected)
		}
	}
}

func TestStartThenEscapeReturnsToMenu(t *testing.T) {
	g, sink := newTestGame(t, 7)

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing (err %v)", g.Phase(), g.Err())
	}
	if on, ok := sink.lastMusic(); !ok || !on {
		t.Error("music not started when entering play")
	}

	g.Step(press(core.ActionBack))
	if g.Phase() != PhaseMenu {
		t.Errorf("Phase() = %v, expected menu", g.Phase())
	}
	if g.engine != nil {
		t.Error("engine kept after abandoning the episode")
	}
	if on, _ := sink.lastMusic(); on {
		t.Error("music still on in the menu")
	}
}

func TestAudioToggleFromMenu(t *testing.T) {
	g, _ := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionConfirm))
	if g.Snapshot().AudioOn {
		t.Fatal("audio still on after toggle")
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "Music & SFX: Off") {
		t.Errorf("menu does not show the muted label:\n%s", screen.String())
	}

	g.Step(press(core.ActionConfirm))
	if !g.Snapshot().AudioOn {
		t.Error("audio still off after second toggle")
	}
}

func TestExitAndQuit(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(press(core.ActionUp))
	if res := g.Step(press(core.ActionConfirm)); !res.State.Quit {
		t.Error("Exit entry did not quit")
	}

	g, _ = newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	if res := g.Step(press(core.ActionQuit)); !res.State.Quit {
		t.Error("Quit action during play did not quit")
	}
	if g.engine != nil || g.span != nil {
		t.Error("quitting left the episode open")
	}
}

func TestWinShowsOverlayAndAcknowledges(t *testing.T) {
	g, sink := newTestGame(t, 1)
	g.begin(corridor(t, 3, 2))

	res := g.Step(press(core.ActionRight))
	if g.Phase() != PhaseGameOver || !res.State.GameOver || !res.State.Won {
		t.Fatalf("after winning step: phase %v state %+v", g.Phase(), res.State)
	}
	if res.State.Turn != 1 {
		t.Errorf("Turn = %d, expected 1", res.State.Turn)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"YOU WIN!", "Press ESC to return to Menu", "HP: "} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	// Directions are ignored until acknowledged.
	g.Step(press(core.ActionLeft))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v after direction on game over", g.Phase())
	}

	g.Step(press(core.ActionBack))
	if g.Phase() != PhaseMenu {
		t.Errorf("Phase() = %v, expected menu after acknowledging", g.Phase())
	}

	want := []audio.Sound{audio.SoundStep, audio.SoundWin}
	if len(sink.played) != len(want) {
		t.Fatalf("played %v, expected %v", sink.played, want)
	}
	for i := range want {
		if sink.played[i] != want[i] {
			t.Errorf("played[%d] = %v, expected %v", i, sink.played[i], want[i])
		}
	}
}

func TestLossFlashesHero(t *testing.T) {
	g, sink := newTestGame(t, 1)
	enemy, err := crawl.NewEnemy(core.Pt(3, 1), []core.Point{core.Pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	g.begin(corridor(t, 1, 5, enemy))

	res := g.Step(press(core.ActionRight))
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, expected a loss", res.State)
	}
	if !g.anim.hero.flashing() {
		t.Error("hero not flashing after being hurt")
	}
	if g.anim.heroFrame().c != core.ColorBrightWhite {
		t.Errorf("hero colour = %v, expected flash white", g.anim.heroFrame().c)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("loss overlay missing")
	}

	hurt := 0
	for _, s := range sink.played {
		if s == audio.SoundHurt {
			hurt++
		}
		if s == audio.SoundWin {
			t.Error("win sound played on a loss")
		}
	}
	if hurt != 1 {
		t.Errorf("hurt played %d times, expected 1", hurt)
	}
}

func TestBlockedMoveTurnsHero(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.begin(corridor(t, 3, 5))
	screen := core.NewScreen(80, 24)

	// The corridor is 7 cells wide, so cell (1,1) starts at column 33+2.
	heroMark := func() rune {
		g.Render(screen)
		return screen.Get(36, hudHeight+1)
	}
	if got := heroMark(); got != '→' {
		t.Errorf("initial facing mark = %q, expected '→'", got)
	}

	res := g.Step(press(core.ActionLeft))
	if res.State.Turn != 0 {
		t.Fatalf("Turn = %d after walking into a wall, expected 0", res.State.Turn)
	}
	if got := heroMark(); got != '←' {
		t.Errorf("facing mark after blocked move = %q, expected '←'", got)
	}
}

func TestOneIntentPerTick(t *testing.T) {
	g, _ := newTestGame(t, 1)
	grid := dungeon.MustParse(
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	g.begin(crawl.NewEpisode(grid, crawl.NewPlayer(core.Pt(2, 2), 3), nil, core.Pt(1, 3)))

	g.Step(press(core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp))
	if got := g.State().Turn; got != 1 {
		t.Errorf("Turn = %d after a multi-key frame, expected 1", got)
	}
	// Directions are scanned up, down, left, right.
	if got := g.Snapshot().Crawl.Player.Pos; got != core.Pt(2, 1) {
		t.Errorf("player at %v, expected (2,1)", got)
	}
}

func TestEqualSeedsPlayTheSame(t *testing.T) {
	inputs := []core.Action{
		core.ActionConfirm, core.ActionRight, core.ActionRight, core.ActionDown,
		core.ActionLeft, core.ActionUp, core.ActionUp, core.ActionRight,
	}

	run := func() Snapshot {
		g, _ := newTestGame(t, 99)
		for _, a := range inputs {
			g.Step(press(a))
		}
		return g.Snapshot()
	}
	a, b := run(), run()

	if a.Seed != b.Seed || a.Phase != b.Phase || a.Tick != b.Tick {
		t.Fatalf("snapshots differ: %+v vs %+v", a, b)
	}
	if a.Crawl.Grid == nil || b.Crawl.Grid == nil {
		return // episode ended; the phases above already matched
	}
	if a.Crawl.Grid.String() != b.Crawl.Grid.String() {
		t.Error("grids differ for equal seeds")
	}
	if a.Crawl.Player != b.Crawl.Player || a.Crawl.Goal != b.Crawl.Goal || a.Crawl.Turn != b.Crawl.Turn {
		t.Errorf("player/goal differ: %+v vs %+v", a.Crawl.Player, b.Crawl.Player)
	}
	for i := range a.Crawl.Enemies {
		if a.Crawl.Enemies[i] != b.Crawl.Enemies[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, a.Crawl.Enemies[i], b.Crawl.Enemies[i])
		}
	}
}

func TestEpisodesUseFreshSeeds(t *testing.T) {
	g, _ := newTestGame(t, 5)
	g.Step(press(core.ActionConfirm))
	first := g.Snapshot().Seed
	g.Step(press(core.ActionBack))
	g.Step(press(core.ActionConfirm))
	if second := g.Snapshot().Seed; second == first {
		t.Errorf("second episode reused seed %d", first)
	}
}

func TestDailySeed(t *testing.T) {
	day := time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)
	if got := DailySeed(day); got != 20261014 {
		t.Errorf("DailySeed() = %d, expected 20261014", got)
	}

	seedOf := func() int64 {
		g := NewDaily(registry.Deps{})
		g.now = func() time.Time { return day }
		cfg := core.DefaultConfig()
		cfg.Seed = time.Now().UnixNano() // ignored in daily mode
		g.Reset(cfg)
		g.Step(press(core.ActionConfirm))
		return g.Snapshot().Seed
	}
	if a, b := seedOf(), seedOf(); a != b {
		t.Errorf("daily episodes differ: %d vs %d", a, b)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.Step(press(core.ActionConfirm))

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected the too-small notice:\n%s", screen.String())
	}
}

func TestInvalidSettingsStayInMenu(t *testing.T) {
	settings := config.Default()
	settings.Grid.Width = 3
	g := New(registry.Deps{Settings: settings})
	g.Reset(core.DefaultConfig())

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseMenu {
		t.Fatalf("Phase() = %v, expected menu", g.Phase())
	}
	if !errors.Is(g.Err(), dungeon.ErrInvalidParams) {
		t.Errorf("Err() = %v, expected ErrInvalidParams", g.Err())
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"cryptsteps", "cryptsteps_daily"} {
		g, err := registry.Create(id, registry.Deps{})
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}
