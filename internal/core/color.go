package core

// Color is the foreground color of a screen cell. The platform maps it to a
// terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBrightWhite
	ColorDark
	ColorGray
	ColorCyan
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "Default"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorYellow:
		return "Yellow"
	case ColorBlue:
		return "Blue"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	case ColorBrightWhite:
		return "BrightWhite"
	case ColorDark:
		return "Dark"
	case ColorGray:
		return "Gray"
	case ColorCyan:
		return "Cyan"
	default:
		return "Unknown"
	}
}
