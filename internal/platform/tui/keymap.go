package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldTicks is how long a key counts as held after its last key event.
// Terminals report auto-repeats, not releases, so the window has to bridge
// the typical repeat delay.
const DefaultHoldTicks = 20

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Unbound keys yield ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case " ":
		return core.ActionFire
	case "enter":
		return core.ActionConfirm
	case "esc", "p":
		return core.ActionBack
	}
	return core.ActionNone
}

// holdable reports whether the game reads a as a level rather than an edge.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// HoldTracker synthesizes held state and releases from a stream of key
// events. A key stays down until no event for it arrived for window ticks.
type HoldTracker struct {
	window   int
	lastSeen map[core.Action]int
}

// NewHoldTracker creates a tracker. A window below one tick is raised to one.
func NewHoldTracker(window int) *HoldTracker {
	return &HoldTracker{window: max(window, 1), lastSeen: make(map[core.Action]int)}
}

// Press records a key event at tick. The first event of a hold is a
// key-down edge; later ones are auto-repeats.
func (h *HoldTracker) Press(a core.Action, tick int, frame *core.InputFrame) {
	if _, down := h.lastSeen[a]; down {
		frame.SetRepeat(a)
	} else {
		frame.Set(a)
	}
	h.lastSeen[a] = tick
}

// Apply marks every tracked key as held in frame, or releases it once its
// window has passed.
func (h *HoldTracker) Apply(tick int, frame *core.InputFrame) {
	for a, seen := range h.lastSeen {
		if tick-seen >= h.window {
			delete(h.lastSeen, a)
			frame.SetReleased(a)
			continue
		}
		frame.SetHeld(a)
	}
}
