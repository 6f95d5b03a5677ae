// Package cryptsteps is the playable crypt session: a pre-game menu, one
// episode at a time driven by the turn engine, and the presentation around
// it (sounds, sprite animation, HUD).
package cryptsteps

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/cryptsteps/internal/audio"
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/crawl"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
	"github.com/vovakirdan/cryptsteps/internal/registry"
)

// Mode selects how the session seeds its crypts.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDaily   Mode = "daily"
)

// Phase is the top-level screen of the session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Menu entries, top to bottom.
const (
	menuStart = iota
	menuAudio
	menuExit

	menuCount
)

var actionIntents = map[core.Action]crawl.Intent{
	core.ActionUp:    crawl.IntentUp,
	core.ActionDown:  crawl.IntentDown,
	core.ActionLeft:  crawl.IntentLeft,
	core.ActionRight: crawl.IntentRight,
}

// eventSounds maps engine events to the effect played for them.
// Events without an entry are silent.
var eventSounds = map[crawl.EventKind]audio.Sound{
	crawl.EventPlayerMoved: audio.SoundStep,
	crawl.EventPlayerHurt:  audio.SoundHurt,
	crawl.EventWon:         audio.SoundWin,
}

// Game implements registry.Game for the crypt.
type Game struct {
	mode Mode
	deps registry.Deps
	now  func() time.Time

	gen    *dungeon.Generator
	genErr error

	rng      *rand.Rand
	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	phase     Phase
	menuIndex int
	quit      bool
	lastErr   error

	engine  *crawl.Engine
	seed    int64
	verdict crawl.Verdict
	anim    *animator

	ctx  context.Context
	span trace.Span
}

// New creates a classic session.
func New(deps registry.Deps) *Game {
	return newGame(ModeClassic, deps)
}

// NewDaily creates a session whose crypts are seeded by the current UTC date.
func NewDaily(deps registry.Deps) *Game {
	return newGame(ModeDaily, deps)
}

func newGame(mode Mode, deps registry.Deps) *Game {
	deps = deps.WithDefaults()
	g := &Game{
		mode: mode,
		deps: deps,
		now:  time.Now,
		ctx:  context.Background(),
	}
	g.gen, g.genErr = dungeon.NewGenerator(deps.Settings.GeneratorParams())
	return g
}

func init() {
	registry.Register("cryptsteps", func(d registry.Deps) registry.Game {
		return New(d)
	})
	registry.Register("cryptsteps_daily", func(d registry.Deps) registry.Game {
		return NewDaily(d)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDaily {
		return "cryptsteps_daily"
	}
	return "cryptsteps"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Crypt Steps (Daily)"
	}
	return "Crypt Steps"
}

// DailySeed derives the seed of the crypt of the day t falls on, in UTC.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y*10000 + int(m)*100 + d)
}

// Reset returns the session to the menu with a fresh RNG.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.endEpisode("reset")

	seed := cfg.Seed
	if g.mode == ModeDaily {
		seed = DailySeed(g.now())
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.phase = PhaseMenu
	g.menuIndex = menuStart
	g.quit = false
	g.lastErr = g.genErr
	g.verdict = crawl.VerdictOngoing
	g.anim = nil
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the session by one tick. At most one intent reaches the
// engine per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.anim != nil {
		g.anim.update(1.0 / float64(g.tickRate))
	}

	if in.Has(core.ActionQuit) {
		g.endEpisode("quit")
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhaseGameOver:
		g.stepGameOver(in)
	}

	if g.anim != nil && g.engine != nil {
		g.anim.sync(g.engine.Snapshot())
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.menuIndex = (g.menuIndex + menuCount - 1) % menuCount
	case in.Has(core.ActionDown):
		g.menuIndex = (g.menuIndex + 1) % menuCount
	case in.Has(core.ActionConfirm):
		switch g.menuIndex {
		case menuStart:
			g.startEpisode()
		case menuAudio:
			on := g.deps.Sound.Toggle()
			g.deps.Logger.Info("audio toggled", "enabled", on)
		case menuExit:
			g.quit = true
		}
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.handle(crawl.IntentMenu)
		return
	}
	if a := in.FirstDirection(); a != core.ActionNone {
		g.handle(actionIntents[a])
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		g.handle(crawl.IntentAcknowledge)
	}
}

// startEpisode generates a crypt from the next session seed and hands it to
// a new engine.
func (g *Game) startEpisode() {
	if g.genErr != nil {
		g.lastErr = g.genErr
		return
	}

	seed := g.rng.Int63()
	src := rand.New(rand.NewSource(seed))
	grid := g.gen.Generate(src)
	ep, err := crawl.Spawn(src, grid, g.deps.Settings.SpawnParams())
	if err != nil {
		g.lastErr = err
		g.deps.Logger.Error("failed to start episode", "seed", seed, "error", err)
		return
	}
	ep.Seed = seed
	g.begin(ep)
}

// begin hands ep to a new engine and enters play.
func (g *Game) begin(ep *crawl.Episode) {
	seed := ep.Seed
	grid := ep.Grid

	g.anim = newAnimator(g.deps.Settings.Animation, len(ep.Enemies))
	g.engine = crawl.NewEngine(ep,
		crawl.WithListener(crawl.ListenerFunc(g.onEvent)),
		crawl.WithStrictInvariants(),
	)
	g.seed = seed
	g.verdict = crawl.VerdictOngoing
	g.phase = PhasePlaying
	g.lastErr = nil

	g.ctx, g.span = g.deps.Tracer.Start(context.Background(), "crypt.episode",
		trace.WithAttributes(
			attribute.String("episode.id", ep.ID.String()),
			attribute.Int64("episode.seed", seed),
			attribute.String("episode.mode", string(g.mode)),
			attribute.Int("episode.enemies", len(ep.Enemies)),
			attribute.Int("episode.floor_cells", grid.FloorCount()),
		),
	)
	g.deps.Logger.Info("episode started", "episode", ep.ID, "seed", seed, "enemies", len(ep.Enemies))
	g.deps.Sound.Music(true)
}

// handle passes one intent to the engine and moves the session between
// phases according to the outcome.
func (g *Game) handle(in crawl.Intent) {
	if g.engine == nil {
		return
	}

	_, span := g.deps.Tracer.Start(g.ctx, "crypt.turn")
	res, err := g.engine.Handle(in)
	span.SetAttributes(
		attribute.Int("intent", int(in)),
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("turn", res.Turn),
		attribute.Int("events", len(res.Events)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if err != nil {
		g.lastErr = err
		var iv *crawl.InvariantViolation
		if errors.As(err, &iv) {
			g.deps.Logger.Error("episode broke an invariant", "turn", res.Turn, "rule", iv.Rule, "error", err)
		} else {
			g.deps.Logger.Error("turn failed", "turn", res.Turn, "error", err)
		}
		g.endEpisode("error")
		g.toMenu()
		return
	}

	switch res.Outcome {
	case crawl.OutcomeAdvanced, crawl.OutcomeBlocked:
		g.deps.Logger.Debug("turn", "turn", res.Turn, "outcome", res.Outcome, "events", len(res.Events))
	case crawl.OutcomeTerminal:
		g.verdict = res.Verdict
		g.phase = PhaseGameOver
		g.deps.Logger.Info("episode ended", "verdict", res.Verdict, "turn", res.Turn)
	case crawl.OutcomeReset:
		g.endEpisode(res.Verdict.String())
		g.toMenu()
	case crawl.OutcomeAbandoned:
		g.deps.Logger.Info("episode abandoned", "turn", res.Turn)
		g.endEpisode("abandoned")
		g.toMenu()
	}
}

func (g *Game) onEvent(ev crawl.Event) {
	if snd, ok := eventSounds[ev.Kind]; ok {
		g.deps.Sound.Play(snd)
	}
	if ev.Kind == crawl.EventPlayerHurt && g.anim != nil {
		g.anim.hurt()
	}
}

func (g *Game) toMenu() {
	g.phase = PhaseMenu
	g.menuIndex = menuStart
	g.deps.Sound.Music(false)
}

// endEpisode drops the engine and closes the episode span.
func (g *Game) endEpisode(reason string) {
	if g.span != nil {
		turns := 0
		if g.engine != nil {
			turns = g.engine.Turn()
		}
		g.span.SetAttributes(
			attribute.String("episode.end", reason),
			attribute.Int("episode.turns", turns),
			attribute.String("episode.verdict", g.verdict.String()),
		)
		g.span.End()
		g.span = nil
	}
	g.engine = nil
	g.ctx = context.Background()
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Won:      g.phase == PhaseGameOver && g.verdict == crawl.VerdictWon,
		Quit:     g.quit,
	}
	if g.engine != nil {
		st.Turn = g.engine.Turn()
	}
	return st
}

// Phase returns the current top-level screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Err returns the last error that sent the session back to the menu.
func (g *Game) Err() error {
	return g.lastErr
}
