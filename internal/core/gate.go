package core

import "time"

// InputGate admits one press per physical key hold.
//
// A press is accepted only when the same action has been released since the
// previous accepted press. Hosts that observe key-up events call Release;
// hosts that cannot (terminals) rely on Expire, which treats an action as
// released once no press for it has been seen for a while.
//
// Terminals send the first auto-repeat only after the OS repeat delay, and
// the following ones much faster. A fresh hold therefore stays armed for
// repeatDelay; once repeats have been seen, releaseAfter applies.
type InputGate struct {
	releaseAfter time.Duration
	repeatDelay  time.Duration
	held         map[Action]hold
}

type hold struct {
	last      time.Time
	repeating bool
}

// NewInputGate creates a gate. A zero releaseAfter disables inferred release,
// so only explicit Release calls re-arm an action. repeatDelay is raised to
// releaseAfter when shorter.
func NewInputGate(releaseAfter, repeatDelay time.Duration) *InputGate {
	if repeatDelay < releaseAfter {
		repeatDelay = releaseAfter
	}
	return &InputGate{
		releaseAfter: releaseAfter,
		repeatDelay:  repeatDelay,
		held:         make(map[Action]hold),
	}
}

// window returns how long h survives without a further press.
func (g *InputGate) window(h hold) time.Duration {
	if h.repeating {
		return g.releaseAfter
	}
	return g.repeatDelay
}

// Press records a key-down for a at now and reports whether it should be
// delivered. Repeats of a held key refresh the hold and are rejected.
func (g *InputGate) Press(a Action, now time.Time) bool {
	h, held := g.held[a]
	if !held || (g.releaseAfter > 0 && now.Sub(h.last) >= g.window(h)) {
		g.held[a] = hold{last: now}
		return true
	}
	g.held[a] = hold{last: now, repeating: true}
	return false
}

// Release marks a as no longer held.
func (g *InputGate) Release(a Action) {
	delete(g.held, a)
}

// Expire releases every action whose last press is older than its window.
func (g *InputGate) Expire(now time.Time) {
	if g.releaseAfter <= 0 {
		return
	}
	for a, h := range g.held {
		if now.Sub(h.last) >= g.window(h) {
			delete(g.held, a)
		}
	}
}

// Held reports whether a is currently considered held.
func (g *InputGate) Held(a Action) bool {
	_, ok := g.held[a]
	return ok
}

// Reset releases everything.
func (g *InputGate) Reset() {
	for a := range g.held {
		delete(g.held, a)
	}
}
