package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
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
	ColorOrange
	ColorGray
	ColorHighlight // inverted cell used for selection and cursor
)

// valuePalette gives each block value 1-10 its own color.
var valuePalette = [...]Color{
	ColorBrightBlue,
	ColorCyan,
	ColorGreen,
	ColorBrightGreen,
	ColorYellow,
	ColorOrange,
	ColorRed,
	ColorBrightMagenta,
	ColorMagenta,
	ColorBrightRed,
}

// ValueColor returns the palette color for a numbered tile.
// Values outside 1-10 use the default color.
func ValueColor(v int) Color {
	if v < 1 || v > len(valuePalette) {
		return ColorDefault
	}
	return valuePalette[v-1]
}
