package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	colorCount
)

// StarColors lists the colors a star field may be tinted with.
// The renderer picks one at random per frame.
var StarColors = []Color{
	ColorWhite,
	ColorBrightWhite,
	ColorYellow,
	ColorBrightYellow,
	ColorCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorOrange,
	ColorGray,
}

// Valid reports whether c is one of the predefined colors.
func (c Color) Valid() bool {
	return c < colorCount
}
