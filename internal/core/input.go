package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - thrust, menu up
	ActionDown           // S, Down arrow - menu down
	ActionLeft           // A, Left arrow - turn left
	ActionRight          // D, Right arrow - turn right
	ActionFire           // Space - fire
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - pause, back to parent menu
	ActionQuit           // Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
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

// InputFrame is the input state for one simulation tick.
// Edge events (press, repeat, release) are separate from level state (held).
type InputFrame struct {
	// Actions holds key-down edges seen this frame.
	Actions  map[Action]bool
	repeats  map[Action]bool
	releases map[Action]bool
	held     map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		repeats:  make(map[Action]bool),
		releases: make(map[Action]bool),
		held:     make(map[Action]bool),
	}
}

func mark(m *map[Action]bool, a Action) {
	if *m == nil {
		*m = make(map[Action]bool)
	}
	(*m)[a] = true
}

// Set records a key-down edge for a. The key is also considered held.
func (f *InputFrame) Set(a Action) {
	mark(&f.Actions, a)
	mark(&f.held, a)
}

// SetRepeat records an auto-repeat of a key that is already down.
func (f *InputFrame) SetRepeat(a Action) {
	mark(&f.repeats, a)
	mark(&f.held, a)
}

// SetHeld marks a as held without an edge.
func (f *InputFrame) SetHeld(a Action) {
	mark(&f.held, a)
}

// SetReleased records a key-up edge for a.
func (f *InputFrame) SetReleased(a Action) {
	mark(&f.releases, a)
	if f.held != nil {
		delete(f.held, a)
	}
}

// Has returns true if a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions != nil && f.Actions[a]
}

// Repeated returns true if a auto-repeated this frame.
func (f InputFrame) Repeated(a Action) bool {
	return f.repeats != nil && f.repeats[a]
}

// Released returns true if a was released this frame.
func (f InputFrame) Released(a Action) bool {
	return f.releases != nil && f.releases[a]
}

// Held returns true while a is down.
func (f InputFrame) Held(a Action) bool {
	return f.held != nil && f.held[a]
}

// Clear resets the edge events. Held state survives.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.repeats)
	clear(f.releases)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.repeats {
		clone.repeats[k] = v
	}
	for k, v := range f.releases {
		clone.releases[k] = v
	}
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}
