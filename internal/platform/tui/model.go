package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/registry"
)

// Resizer is implemented by games that can follow a window resize without
// restarting.
type Resizer interface {
	Resize(w, h int)
}

// Options configures a Model.
type Options struct {
	// ReleaseAfter is the key silence after which a repeating key counts as
	// released. Zero disables repeat suppression.
	ReleaseAfter time.Duration
	// RepeatDelay is how long a fresh hold waits for its first auto-repeat.
	RepeatDelay time.Duration
	Logger      *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gate       *core.InputGate
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	now        func() time.Time
	quitting   bool
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var gate *core.InputGate
	if opts.ReleaseAfter > 0 {
		gate = core.NewInputGate(opts.ReleaseAfter, opts.RepeatDelay)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gate:       gate,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     opts.Logger,
		now:        time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action of a key press for the next tick.
// Auto-repeat of a held key is dropped by the gate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		// Let the game close its episode on the next step.
		m.inputFrame.Set(core.ActionQuit)
		return m, nil
	}

	if m.gate == nil || m.gate.Press(action, m.now()) {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize follows the terminal size. The bottom row is kept for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, max(msg.Height-1, 1))
	}
	return m, nil
}

// handleTick runs one game step with the inputs accepted since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gate != nil {
		m.gate.Expire(now)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.Quit {
		m.quitting = true
		m.logger.Debug("session ended", "game", m.game.ID(), "turn", result.State.Turn)
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
