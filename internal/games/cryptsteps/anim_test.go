package cryptsteps

import (
	"testing"

	"github.com/vovakirdan/cryptsteps/internal/config"
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/crawl"
)

func testAnimator() *animator {
	return newAnimator(config.AnimationSettings{
		HeroIdleFPS:  2,
		HeroMoveFPS:  4,
		EnemyIdleFPS: 2,
		EnemyMoveFPS: 4,
		HitFlashMS:   600,
	}, 1)
}

func TestSpriteCyclesAtItsRate(t *testing.T) {
	a := testAnimator()

	tests := []struct {
		dt       float64
		expected int
	}{
		{0.25, 0}, // idle at 2 fps needs half a second
		{0.25, 1},
		{0.25, 1},
		{0.25, 0}, // two idle frames wrap
	}
	for i, tc := range tests {
		a.update(tc.dt)
		if a.hero.index != tc.expected {
			t.Errorf("update %d: index = %d, expected %d", i, a.hero.index, tc.expected)
		}
	}
}

func TestMotionChangeRestartsCycle(t *testing.T) {
	a := testAnimator()
	a.update(0.5)
	if a.hero.index != 1 {
		t.Fatalf("index = %d, expected 1", a.hero.index)
	}

	a.sync(crawl.Snapshot{
		Player:  crawl.ActorView{Motion: crawl.MotionMoving},
		Enemies: []crawl.ActorView{{Motion: crawl.MotionMoving}},
	})
	if a.hero.index != 0 || a.enemies[0].index != 0 {
		t.Errorf("indices = %d/%d, expected restart at 0", a.hero.index, a.enemies[0].index)
	}
	if got := a.heroFrame(); got != heroMove[0] {
		t.Errorf("heroFrame() = %v, expected first move frame", got)
	}

	// Moving runs at 4 fps, so a quarter second is one frame.
	a.update(0.25)
	if got := a.enemyFrame(0); got != enemyMove[1] {
		t.Errorf("enemyFrame() = %v, expected second move frame", got)
	}
}

func TestHitFlashExpires(t *testing.T) {
	a := testAnimator()
	a.hurt()
	if !a.hero.flashing() {
		t.Fatal("not flashing right after hurt")
	}
	if got := a.heroFrame().c; got != core.ColorBrightWhite {
		t.Errorf("flash colour = %v, expected bright white", got)
	}

	for i := 0; i < 3; i++ {
		a.update(0.25)
	}
	if a.hero.flashing() {
		t.Error("still flashing after the flash window")
	}
	if got := a.heroFrame().c; got == core.ColorBrightWhite {
		t.Error("hero kept the flash colour")
	}
}

func TestEnemyFrameOutOfRange(t *testing.T) {
	a := testAnimator()
	if got := a.enemyFrame(5); got != enemyIdle[0] {
		t.Errorf("enemyFrame(5) = %v, expected first idle frame", got)
	}
}
