package core

import (
	"testing"
	"time"
)

func TestActionStep(t *testing.T) {
	tests := []struct {
		action Action
		step   Point
		ok     bool
	}{
		{ActionUp, StepUp, true},
		{ActionDown, StepDown, true},
		{ActionLeft, StepLeft, true},
		{ActionRight, StepRight, true},
		{ActionConfirm, Point{}, false},
		{ActionBack, Point{}, false},
		{ActionNone, Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			step, ok := tc.action.Step()
			if step != tc.step || ok != tc.ok {
				t.Errorf("Step() = %v, %v, expected %v, %v", step, ok, tc.step, tc.ok)
			}
		})
	}
}

func TestInputFrameFirstDirection(t *testing.T) {
	f := NewInputFrame()
	if f.FirstDirection() != ActionNone {
		t.Error("empty frame should have no direction")
	}

	f.Set(ActionConfirm)
	f.Set(ActionRight)
	f.Set(ActionDown)
	if got := f.FirstDirection(); got != ActionDown {
		t.Errorf("FirstDirection() = %v, expected Down", got)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionDown) {
		t.Error("Clear should drop actions")
	}
	if !clone.Has(ActionDown) || !clone.Has(ActionConfirm) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputGateSuppressesHeldKey(t *testing.T) {
	g := NewInputGate(100*time.Millisecond, 0)
	t0 := time.Unix(0, 0)

	if !g.Press(ActionUp, t0) {
		t.Fatal("first press should be accepted")
	}
	// Auto-repeat every 30ms keeps the key held.
	for i := 1; i <= 10; i++ {
		if g.Press(ActionUp, t0.Add(time.Duration(i)*30*time.Millisecond)) {
			t.Fatalf("repeat %d should be suppressed", i)
		}
	}
	// A different key is independent.
	if !g.Press(ActionLeft, t0.Add(40*time.Millisecond)) {
		t.Error("press of another key should be accepted")
	}
}

func TestInputGateExplicitRelease(t *testing.T) {
	g := NewInputGate(0, 0)
	t0 := time.Unix(0, 0)

	g.Press(ActionRight, t0)
	if g.Press(ActionRight, t0.Add(time.Hour)) {
		t.Error("without release window a held key stays suppressed")
	}
	g.Release(ActionRight)
	if g.Held(ActionRight) {
		t.Error("Held() should be false after Release")
	}
	if !g.Press(ActionRight, t0.Add(time.Hour+time.Millisecond)) {
		t.Error("press after release should be accepted")
	}
}

func TestInputGateInferredRelease(t *testing.T) {
	g := NewInputGate(100*time.Millisecond, 0)
	t0 := time.Unix(0, 0)

	g.Press(ActionDown, t0)
	g.Expire(t0.Add(50 * time.Millisecond))
	if !g.Held(ActionDown) {
		t.Fatal("key should still be held inside the window")
	}
	g.Expire(t0.Add(150 * time.Millisecond))
	if g.Held(ActionDown) {
		t.Fatal("key should be released after the window")
	}
	if !g.Press(ActionDown, t0.Add(160*time.Millisecond)) {
		t.Error("press after inferred release should be accepted")
	}

	g.Reset()
	if g.Held(ActionDown) {
		t.Error("Reset should release every key")
	}
}

func TestInputGateWaitsForFirstRepeat(t *testing.T) {
	g := NewInputGate(120*time.Millisecond, 700*time.Millisecond)
	t0 := time.Unix(0, 0)
	tick := 33 * time.Millisecond

	// One physical hold: the OS sends the first repeat after 500ms, then
	// every 33ms until the key is let go at 1.5s.
	accepted := 0
	if g.Press(ActionRight, t0) {
		accepted++
	}
	for at := tick; at <= 1500*time.Millisecond; at += tick {
		if at >= 500*time.Millisecond && g.Press(ActionRight, t0.Add(at)) {
			accepted++
		}
		g.Expire(t0.Add(at))
	}
	if accepted != 1 {
		t.Errorf("accepted %d presses for one hold, expected 1", accepted)
	}

	// Once repeating, the short window detects the release.
	g.Expire(t0.Add(1500*time.Millisecond + 150*time.Millisecond))
	if g.Held(ActionRight) {
		t.Error("key still held after repeats stopped")
	}
}

func TestInputGateRepeatDelayNotShorterThanRelease(t *testing.T) {
	g := NewInputGate(100*time.Millisecond, 10*time.Millisecond)
	t0 := time.Unix(0, 0)

	g.Press(ActionUp, t0)
	g.Expire(t0.Add(50 * time.Millisecond))
	if !g.Held(ActionUp) {
		t.Error("fresh hold released before the release window")
	}
}
