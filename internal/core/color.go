package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for board and HUD elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDarkGray
	ColorYellow
	ColorRed
	ColorGreen
)
