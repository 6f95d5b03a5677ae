package crawl

import "github.com/vovakirdan/cryptsteps/internal/core"

// EventKind identifies a signal raised while a turn resolves.
type EventKind int

const (
	EventPlayerMoved   EventKind = iota // successful step; presentation plays the step sound
	EventPlayerBlocked                  // attempted step into a wall or an enemy
	EventEnemyMoving                    // enemy planned a non-zero step
	EventEnemyIdle                      // enemy planned no step
	EventPlayerHurt                     // an enemy ended its move on the player
	EventWon
	EventLost
)

var eventNames = map[EventKind]string{
	EventPlayerMoved:   "player_moved",
	EventPlayerBlocked: "player_blocked",
	EventEnemyMoving:   "enemy_moving",
	EventEnemyIdle:     "enemy_idle",
	EventPlayerHurt:    "player_hurt",
	EventWon:           "won",
	EventLost:          "lost",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// PlayerActor is the Actor index used for events about the player.
const PlayerActor = -1

// Event is one signal from the engine to presentation collaborators.
type Event struct {
	Kind   EventKind
	Actor  int // PlayerActor or an index into Episode.Enemies
	Pos    core.Point
	Facing core.Point
	Health int // player health after the event
}

// Listener receives events synchronously while a turn resolves.
// Listeners must not mutate the episode.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}
