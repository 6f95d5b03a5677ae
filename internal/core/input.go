package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - step north / menu cursor up
	ActionDown           // S, Down arrow - step south / menu cursor down
	ActionLeft           // A, Left arrow - step west
	ActionRight          // D, Right arrow - step east
	ActionConfirm        // Enter, Space - select menu item, acknowledge game over
	ActionBack           // Escape - return to the menu
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Step returns the grid vector of a directional action.
// The second result is false for non-directional actions.
func (a Action) Step() (Point, bool) {
	switch a {
	case ActionUp:
		return StepUp, true
	case ActionDown:
		return StepDown, true
	case ActionLeft:
		return StepLeft, true
	case ActionRight:
		return StepRight, true
	default:
		return Point{}, false
	}
}

// Directions lists the directional actions in the order a frame is scanned.
var Directions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame represents the input delivered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// FirstDirection returns the first directional action set in the frame,
// scanning in Directions order. Returns ActionNone when there is none.
func (f InputFrame) FirstDirection() Action {
	for _, a := range Directions {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
