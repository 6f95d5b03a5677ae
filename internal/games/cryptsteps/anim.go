package cryptsteps

import (
	"github.com/vovakirdan/cryptsteps/internal/config"
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/crawl"
)

// frame is one glyph of a sprite cycle.
type frame struct {
	r rune
	c core.Color
}

var (
	heroIdle = []frame{{'@', core.ColorCyan}, {'@', core.ColorBlue}}
	heroMove = []frame{
		{'@', core.ColorBrightWhite}, {'&', core.ColorCyan},
		{'@', core.ColorBrightWhite}, {'&', core.ColorBlue},
	}
	enemyIdle = []frame{{'s', core.ColorRed}, {'s', core.ColorMagenta}}
	enemyMove = []frame{
		{'S', core.ColorBrightRed}, {'s', core.ColorRed},
		{'S', core.ColorBrightRed}, {'s', core.ColorMagenta},
	}
)

// sprite cycles through the frames of its current motion. It only ever reads
// engine state; the tick loop is its sole clock.
type sprite struct {
	idle, move       []frame
	idleFPS, moveFPS float64

	motion    crawl.Motion
	frameTime float64
	index     int
	flash     float64 // seconds of hit flash left
}

func (s *sprite) setMotion(m crawl.Motion) {
	if s.motion != m {
		s.motion = m
		s.frameTime = 0
		s.index = 0
	}
}

func (s *sprite) frames() []frame {
	if s.motion == crawl.MotionMoving {
		return s.move
	}
	return s.idle
}

func (s *sprite) fps() float64 {
	if s.motion == crawl.MotionMoving {
		return s.moveFPS
	}
	return s.idleFPS
}

func (s *sprite) update(dt float64) {
	frames := s.frames()
	if len(frames) > 0 && s.fps() > 0 {
		s.frameTime += dt
		if s.frameTime >= 1.0/s.fps() {
			s.frameTime = 0
			s.index = (s.index + 1) % len(frames)
		}
	}
	if s.flash > 0 {
		s.flash -= dt
	}
}

// flashing reports whether the flash blink is in its bright half.
func (s *sprite) flashing() bool {
	return s.flash > 0 && int(s.flash*20)%2 == 0
}

func (s *sprite) current() frame {
	f := s.frames()[s.index]
	if s.flashing() {
		f.c = core.ColorBrightWhite
	}
	return f
}

// animator holds the sprites of one episode.
type animator struct {
	hero     sprite
	enemies  []sprite
	hitFlash float64
}

func newAnimator(cfg config.AnimationSettings, enemies int) *animator {
	a := &animator{
		hero: sprite{
			idle: heroIdle, move: heroMove,
			idleFPS: cfg.HeroIdleFPS, moveFPS: cfg.HeroMoveFPS,
		},
		enemies:  make([]sprite, enemies),
		hitFlash: cfg.HitFlash().Seconds(),
	}
	for i := range a.enemies {
		a.enemies[i] = sprite{
			idle: enemyIdle, move: enemyMove,
			idleFPS: cfg.EnemyIdleFPS, moveFPS: cfg.EnemyMoveFPS,
		}
	}
	return a
}

// sync copies the motion of every actor from snap.
func (a *animator) sync(snap crawl.Snapshot) {
	a.hero.setMotion(snap.Player.Motion)
	for i := range a.enemies {
		if i < len(snap.Enemies) {
			a.enemies[i].setMotion(snap.Enemies[i].Motion)
		}
	}
}

func (a *animator) update(dt float64) {
	a.hero.update(dt)
	for i := range a.enemies {
		a.enemies[i].update(dt)
	}
}

func (a *animator) hurt() {
	a.hero.flash = a.hitFlash
}

func (a *animator) heroFrame() frame {
	return a.hero.current()
}

func (a *animator) enemyFrame(i int) frame {
	if i < 0 || i >= len(a.enemies) {
		return enemyIdle[0]
	}
	return a.enemies[i].current()
}
