package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// FontSize selects one of the text faces a renderer provides.
type FontSize int

const (
	FontText FontSize = iota
	FontButton
	FontTitle
	FontScore
	FontHighScore
)

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how DrawText lays out a string.
type TextStyle struct {
	Size  FontSize
	Color Color
	Align Align
}

// Canvas is the drawing capability the simulation renders through.
// Coordinates are world units; the implementation maps them to its surface.
type Canvas interface {
	Clear()
	DrawLine(a, b Vector, width int, c Color)
	DrawCircle(center Vector, radius float64, c Color)
	FillRect(x, y, w, h float64, c Color)
	DrawText(pos Vector, text string, style TextStyle)
}

// ScreenCanvas rasterizes world coordinates onto a character Screen.
type ScreenCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas maps a worldW x worldH area onto dst.
func NewScreenCanvas(dst *Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: dst, worldW: worldW, worldH: worldH}
}

// Screen returns the backing buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

func (c *ScreenCanvas) cell(p Vector) (int, int) {
	x := int(math.Floor(p.X * float64(c.screen.Width()) / c.worldW))
	y := int(math.Floor(p.Y * float64(c.screen.Height()) / c.worldH))
	return x, y
}

// Clear blanks the screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// DrawLine draws a line; heavier strokes use denser glyphs.
func (c *ScreenCanvas) DrawLine(a, b Vector, width int, col Color) {
	x0, y0 := c.cell(a)
	x1, y1 := c.cell(b)
	c.screen.DrawLine(x0, y0, x1, y1, strokeRune(width), col)
}

func strokeRune(width int) rune {
	switch {
	case width >= 3:
		return '#'
	case width == 2:
		return '*'
	default:
		return '+'
	}
}

// DrawCircle marks the cell under the center. Circles in the simulation are a
// few world units wide, smaller than one cell.
func (c *ScreenCanvas) DrawCircle(center Vector, radius float64, col Color) {
	x, y := c.cell(center)
	r := '.'
	if radius >= 2 {
		r = '•'
	}
	c.screen.SetColored(x, y, r, col)
}

// FillRect blanks the cells covered by the rectangle.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, _ Color) {
	x0, y0 := c.cell(Vec(x, y))
	x1, y1 := c.cell(Vec(x+w, y+h))
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), ' ')
}

// DrawText writes text one line per row; centered text is centered on pos.
func (c *ScreenCanvas) DrawText(pos Vector, text string, style TextStyle) {
	x, y := c.cell(pos)
	for i, line := range strings.Split(text, "\n") {
		lx := x
		if style.Align == AlignCenter {
			lx = x - utf8.RuneCountInString(line)/2
		}
		c.screen.DrawText(lx, y+i, line, style.Color)
	}
}
