package core

// Color is the foreground of a screen cell. The terminal renderer maps each
// value to an ANSI 256-color code; ColorDefault leaves the cell unstyled.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
)
