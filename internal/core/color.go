package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
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
	ColorGray
	ColorOrange
	ColorPink
	ColorPurple
	ColorGold
	ColorDim
)

// blockPalette maps block color indexes 1..5 to screen colors
// (green, blue, orange, pink, purple).
var blockPalette = []Color{
	ColorGreen,
	ColorBlue,
	ColorOrange,
	ColorPink,
	ColorPurple,
}

// BlockColor returns the screen color for a block color index (1-based).
// Indexes past the palette wrap around; 0 and below map to ColorDefault.
func BlockColor(index int) Color {
	if index <= 0 {
		return ColorDefault
	}
	return blockPalette[(index-1)%len(blockPalette)]
}

// PaletteSize returns the number of distinct block colors.
func PaletteSize() int {
	return len(blockPalette)
}
