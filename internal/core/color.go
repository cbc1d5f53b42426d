package core

// Color is a logical foreground color. The host maps it onto whatever its
// terminal or window supports.
type Color uint8

// The palette the game draws with. ColorDefault leaves the cell unstyled.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorOrange
	ColorGray
)

var colorNames = [...]string{"default", "white", "red", "green", "orange", "gray"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
