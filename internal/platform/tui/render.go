package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// colorStyles maps the colors the game draws with to lipgloss styles.
// Cells in ColorDefault are written unstyled.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if style, ok := colorStyles[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
