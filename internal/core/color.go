package core

// Color represents a foreground color for a screen cell.
// Values are palette slots; the platform layer maps them to terminal colors.
type Color uint8

// Palette used by the Scølor renderer.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorWhite
	ColorGray
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightGreen
)
