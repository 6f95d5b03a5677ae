package crawl

import (
	"errors"

	"github.com/vovakirdan/cryptsteps/internal/core"
)

// State is the position of the engine in its turn cycle.
type State int

const (
	StateIdle      State = iota // waiting for an intent
	StateResolving              // a turn is being resolved
	StateTerminal               // episode won or lost, waiting for acknowledgement
	StateClosed                 // episode discarded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateTerminal:
		return "terminal"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Intent is a discrete request delivered by the input source.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentMenu
	IntentAcknowledge
)

var intentSteps = map[Intent]core.Point{
	IntentUp:    core.StepUp,
	IntentDown:  core.StepDown,
	IntentLeft:  core.StepLeft,
	IntentRight: core.StepRight,
}

// Step returns the movement vector of a directional intent.
func (i Intent) Step() (core.Point, bool) {
	d, ok := intentSteps[i]
	return d, ok
}

// Outcome summarizes what a single Handle call did.
type Outcome int

const (
	OutcomeIgnored   Outcome = iota // intent not applicable in the current state
	OutcomeBlocked                  // player move failed; no turn consumed
	OutcomeAdvanced                 // turn resolved, episode continues
	OutcomeTerminal                 // turn resolved and the episode ended
	OutcomeReset                    // terminal episode acknowledged and discarded
	OutcomeAbandoned                // episode left for the menu before it ended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeTerminal:
		return "terminal"
	case OutcomeReset:
		return "reset"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

var (
	// ErrTurnInProgress is returned when Handle is called while a turn is resolving.
	ErrTurnInProgress = errors.New("crawl: turn already in progress")
	// ErrEngineClosed is returned once the episode has been discarded.
	ErrEngineClosed = errors.New("crawl: episode discarded")
)

// TurnResult reports the effect of one intent.
type TurnResult struct {
	Outcome Outcome
	Events  []Event
	State   State
	Verdict Verdict
	Turn    int
}

// Engine drives one episode through its turns.
type Engine struct {
	ep       *Episode
	state    State
	turn     int
	listener Listener
	strict   bool
	events   []Event
	occ      *Occupancy // reservations left by the last enemy pass
}

// Option configures an Engine.
type Option func(*Engine)

// WithListener delivers events to l as they are raised.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// WithStrictInvariants makes Handle verify the episode after every resolved
// turn and return an *InvariantViolation when a rule is broken.
func WithStrictInvariants() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// NewEngine takes ownership of ep.
func NewEngine(ep *Episode, opts ...Option) *Engine {
	e := &Engine{ep: ep, state: StateIdle}
	if ep == nil {
		e.state = StateClosed
	} else if ep.Verdict != VerdictOngoing {
		e.state = StateTerminal
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current engine state.
func (e *Engine) State() State {
	return e.state
}

// Turn returns the number of turns resolved so far.
func (e *Engine) Turn() int {
	return e.turn
}

// Episode returns the owned episode, or nil once it has been discarded.
func (e *Engine) Episode() *Episode {
	return e.ep
}

// Handle applies one intent.
func (e *Engine) Handle(in Intent) (TurnResult, error) {
	switch e.state {
	case StateResolving:
		return e.result(OutcomeIgnored), ErrTurnInProgress
	case StateClosed:
		return e.result(OutcomeIgnored), ErrEngineClosed
	case StateTerminal:
		if in == IntentAcknowledge {
			verdict := e.ep.Verdict
			e.close()
			res := e.result(OutcomeReset)
			res.Verdict = verdict
			return res, nil
		}
		return e.result(OutcomeIgnored), nil
	}

	if in == IntentMenu {
		e.close()
		return e.result(OutcomeAbandoned), nil
	}
	delta, ok := in.Step()
	if !ok {
		return e.result(OutcomeIgnored), nil
	}

	e.state = StateResolving
	e.events = nil
	outcome, next := e.resolve(delta)
	e.state = next

	res := e.result(outcome)
	res.Events = e.events
	e.events = nil

	if e.strict && outcome != OutcomeBlocked {
		if err := CheckInvariants(e.ep); err != nil {
			return res, err
		}
		if err := checkReservations(e.ep, e.occ); err != nil {
			return res, err
		}
	}
	return res, nil
}

// resolve runs steps of a turn and returns the outcome with the state to enter.
func (e *Engine) resolve(delta core.Point) (Outcome, State) {
	ep := e.ep
	player := ep.Player
	occ := EnemyOccupancy(ep.Enemies)

	if !player.TryMove(ep.Grid, occ, delta) {
		e.emitPlayer(EventPlayerBlocked)
		return OutcomeBlocked, StateIdle
	}
	e.turn++
	e.emitPlayer(EventPlayerMoved)

	strikers := e.enemyPass(occ)
	e.occ = occ
	for range strikers {
		player.Hurt()
		e.emitPlayer(EventPlayerHurt)
	}
	// Strikers fall back to the cell they attacked from, which stayed reserved.
	for _, s := range strikers {
		ep.Enemies[s.index].Pos = s.origin
	}

	switch {
	case !player.Alive():
		ep.Verdict = VerdictLost
		e.emitPlayer(EventLost)
		return OutcomeTerminal, StateTerminal
	case player.Pos == ep.Goal:
		ep.Verdict = VerdictWon
		e.emitPlayer(EventWon)
		return OutcomeTerminal, StateTerminal
	}
	return OutcomeAdvanced, StateIdle
}

type strike struct {
	index  int
	origin core.Point
}

// enemyPass moves every enemy in spawn order against a shared occupancy that
// is updated as each enemy resolves. The player's cell is never reserved: an
// enemy stepping onto it strikes the player and keeps its origin reserved.
func (e *Engine) enemyPass(occ *Occupancy) []strike {
	ep := e.ep
	var strikers []strike
	for i, en := range ep.Enemies {
		origin := en.Pos
		occ.Release(origin)
		en.Advance(ep.Grid, occ)

		if en.Pos == ep.Player.Pos {
			strikers = append(strikers, strike{index: i, origin: origin})
			occ.Reserve(origin)
		} else {
			occ.Reserve(en.Pos)
		}

		kind := EventEnemyIdle
		if en.Motion == MotionMoving {
			kind = EventEnemyMoving
		}
		e.emit(Event{Kind: kind, Actor: i, Pos: en.Pos, Facing: en.Facing, Health: ep.Player.Health})
	}
	return strikers
}

func (e *Engine) emitPlayer(kind EventKind) {
	p := e.ep.Player
	e.emit(Event{Kind: kind, Actor: PlayerActor, Pos: p.Pos, Facing: p.Facing, Health: p.Health})
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
	if e.listener != nil {
		e.listener.OnEvent(ev)
	}
}

func (e *Engine) close() {
	e.ep = nil
	e.state = StateClosed
}

func (e *Engine) result(o Outcome) TurnResult {
	res := TurnResult{Outcome: o, State: e.state, Turn: e.turn}
	if e.ep != nil {
		res.Verdict = e.ep.Verdict
	}
	return res
}
