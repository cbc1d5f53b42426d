// Package tui runs the asteroids game in a terminal with Bubble Tea, locally
// or over SSH, and shows the score history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one frame from now.
func tickCmd(rate int) tea.Cmd {
	frame := time.Second / time.Duration(max(rate, 1))
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
