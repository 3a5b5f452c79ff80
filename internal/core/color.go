package core

// Color is a logical foreground color for a screen cell. The platform maps
// it to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrown
)

// Cell is one character of the screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}
