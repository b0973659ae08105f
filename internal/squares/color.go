// Package squares implements the Uncolored Squares puzzle: a 4x4 board whose
// live cells are colored so that one ordered pair of hues is the rarest on
// the board, and the player must press every cell of that pair's pattern.
//
// The package holds pure game logic. Rendering, input and scoring live in
// adapters that talk to a Controller through the Judge and CellRenderer
// interfaces.
package squares

// Color is the state of a single board cell.
type Color uint8

const (
	White   Color = iota // Enabled but uncolored (start of module, or pressed correctly)
	Red                  // Hue
	Green                // Hue
	Blue                 // Hue
	Yellow               // Hue
	Magenta              // Hue
	Black                // Disabled, never part of a placement
)

// HueCount is the number of distinct hues.
const HueCount = 5

// Hues returns the five hues in table order.
func Hues() []Color {
	return []Color{Red, Green, Blue, Yellow, Magenta}
}

// canonicalOrder is the hue sequence the color map is built from before the
// chosen pair is moved to the rarest code positions.
var canonicalOrder = [HueCount]Color{Blue, Green, Magenta, Red, Yellow}

// IsHue reports whether c is one of the five gameplay hues.
func (c Color) IsHue() bool {
	return c >= Red && c <= Magenta
}

// IsEnabled reports whether the cell can take part in a placement.
func (c Color) IsEnabled() bool {
	return c != Black
}

// hueIndex returns the position of a hue in table order.
func (c Color) hueIndex() int {
	return int(c) - int(Red)
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Magenta:
		return "Magenta"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Char returns a single character used for ASCII boards and logs.
func (c Color) Char() rune {
	switch c {
	case White:
		return 'W'
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Magenta:
		return 'M'
	case Black:
		return '.'
	default:
		return '?'
	}
}

// Pair is an ordered pair of hues. First is the base hue picked for a stage,
// Second is its accent. Order matters: the pattern table is not symmetric.
type Pair struct {
	First  Color
	Second Color
}

// String formats the pair as "First/Second".
func (p Pair) String() string {
	return p.First.String() + "/" + p.Second.String()
}

// Valid reports whether both members are distinct hues.
func (p Pair) Valid() bool {
	return p.First.IsHue() && p.Second.IsHue() && p.First != p.Second
}
