package squares

import "strings"

// Pattern is an immutable boolean grid describing which cells, relative to a
// placement offset, belong to a color pair's shape. Cells are row-major with
// the origin at the top-left.
type Pattern struct {
	W, H  int
	cells []bool
}

// Point is a relative (X, Y) cell inside a pattern.
type Point struct {
	X, Y int
}

// on and __ keep the table literal readable.
const (
	on = true
	__ = false
)

// newPattern builds a pattern from rows. Short rows are padded with false.
func newPattern(rows ...[]bool) Pattern {
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	p := Pattern{W: w, H: len(rows), cells: make([]bool, w*len(rows))}
	for y, row := range rows {
		copy(p.cells[y*w:], row)
	}
	return p
}

// At reports whether the relative cell (x, y) is part of the shape.
// Out-of-range coordinates are false.
func (p Pattern) At(x, y int) bool {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return false
	}
	return p.cells[y*p.W+x]
}

// Cells returns the relative coordinates of every true cell, row by row.
func (p Pattern) Cells() []Point {
	pts := make([]Point, 0, len(p.cells))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			if p.At(x, y) {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Size returns the number of true cells.
func (p Pattern) Size() int {
	n := 0
	for _, c := range p.cells {
		if c {
			n++
		}
	}
	return n
}

// String renders the pattern as rows of '#' and '.' joined by '|'.
func (p Pattern) String() string {
	rows := make([]string, p.H)
	for y := range p.H {
		var sb strings.Builder
		for x := range p.W {
			if p.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "|")
}

// patternTable is indexed [second][first] in table hue order
// (Red, Green, Blue, Yellow, Magenta). The diagonal is undefined.
var patternTable = [HueCount][HueCount]*Pattern{
	// Second = Red
	{
		nil,
		ptr(newPattern([]bool{on, on}, []bool{on, __})),
		ptr(newPattern([]bool{__, on}, []bool{on, on})),
		ptr(newPattern([]bool{on, __}, []bool{on, on}, []bool{on, __})),
		ptr(newPattern([]bool{on, on}, []bool{__, on})),
	},
	// Second = Green
	{
		ptr(newPattern([]bool{on}, []bool{on})),
		nil,
		ptr(newPattern([]bool{on, __}, []bool{on, __}, []bool{on, on})),
		ptr(newPattern([]bool{on, on}, []bool{on, on})),
		ptr(newPattern([]bool{__, on, on}, []bool{on, on, __})),
	},
	// Second = Blue
	{
		ptr(newPattern([]bool{on, __}, []bool{on, on}, []bool{__, on})),
		ptr(newPattern([]bool{on, __}, []bool{on, on})),
		nil,
		ptr(newPattern([]bool{on, on, on}, []bool{__, on, __})),
		ptr(newPattern([]bool{__, on, __}, []bool{on, on, on})),
	},
	// Second = Yellow
	{
		ptr(newPattern([]bool{__, on}, []bool{on, on}, []bool{on, __})),
		ptr(newPattern([]bool{on, on}, []bool{on, __}, []bool{on, __})),
		ptr(newPattern([]bool{__, on}, []bool{__, on}, []bool{on, on})),
		nil,
		ptr(newPattern([]bool{__, on}, []bool{on, on}, []bool{__, on})),
	},
	// Second = Magenta
	{
		ptr(newPattern([]bool{on, on, __}, []bool{__, on, on})),
		ptr(newPattern([]bool{on, on, on}, []bool{__, __, on})),
		ptr(newPattern([]bool{on, on})),
		ptr(newPattern([]bool{on, on, on}, []bool{on, __, __})),
		nil,
	},
}

func ptr(p Pattern) *Pattern {
	return &p
}

// Lookup returns the pattern used when first is the base hue and second the
// accent. It returns false for equal colors and for non-hues.
func Lookup(first, second Color) (Pattern, bool) {
	if !first.IsHue() || !second.IsHue() {
		return Pattern{}, false
	}
	p := patternTable[second.hueIndex()][first.hueIndex()]
	if p == nil {
		return Pattern{}, false
	}
	return *p, true
}

// LookupPair is Lookup for a Pair.
func LookupPair(pair Pair) (Pattern, bool) {
	return Lookup(pair.First, pair.Second)
}
