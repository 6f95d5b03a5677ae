// Package registry provides a global registry of game modes.
// Modes register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/cryptsteps/internal/audio"
	"github.com/vovakirdan/cryptsteps/internal/config"
	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/telemetry"
)

// Game is the interface every mode implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the session. The RuntimeConfig provides screen
	// dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick with the inputs accepted during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// Deps carries the collaborators a game is built with.
type Deps struct {
	Settings config.Settings
	Sound    *audio.Boundary
	Logger   *log.Logger
	Tracer   trace.Tracer
}

// WithDefaults fills unset collaborators with silent implementations.
// A zero Settings is replaced by config.Default().
func (d Deps) WithDefaults() Deps {
	if d.Settings == (config.Settings{}) {
		d.Settings = config.Default()
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Sound == nil {
		d.Sound = audio.NewBoundary(nil, d.Logger, false)
	}
	if d.Tracer == nil {
		d.Tracer = telemetry.NoopTracer()
	}
	return d
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(Deps) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(Deps{}.WithDefaults()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(deps.WithDefaults()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
