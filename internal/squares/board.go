package squares

import "strings"

const (
	// Size is the board edge length.
	Size = 4
	// Cells is the number of cells on the board.
	Cells = Size * Size
)

// Board holds one color per cell, indexed col + Size*row.
type Board [Cells]Color

// NewBoard returns a board with every cell enabled and uncolored.
func NewBoard() Board {
	var b Board
	b.Reset()
	return b
}

// Reset sets every cell back to White.
func (b *Board) Reset() {
	for i := range b {
		b[i] = White
	}
}

// Index converts a column and row to a cell index.
func Index(col, row int) int {
	return col + Size*row
}

// ColRow converts a cell index to its column and row.
func ColRow(index int) (col, row int) {
	return index % Size, index / Size
}

// Coord returns the chess-style name of a cell ("A1" is the top-left,
// "D4" the bottom-right).
func Coord(index int) string {
	col, row := ColRow(index)
	return string([]byte{"ABCD"[col], "1234"[row]})
}

// InRange reports whether index addresses a board cell.
func InRange(index int) bool {
	return index >= 0 && index < Cells
}

// Enabled returns the indices of all non-Black cells in ascending order.
func (b Board) Enabled() []int {
	idx := make([]int, 0, Cells)
	for i, c := range b {
		if c.IsEnabled() {
			idx = append(idx, i)
		}
	}
	return idx
}

// EnabledCount returns the number of non-Black cells.
func (b Board) EnabledCount() int {
	n := 0
	for _, c := range b {
		if c.IsEnabled() {
			n++
		}
	}
	return n
}

// Count returns how many cells hold exactly c.
func (b Board) Count(c Color) int {
	n := 0
	for _, cell := range b {
		if cell == c {
			n++
		}
	}
	return n
}

// String renders the board as four lines of color glyphs.
func (b Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Size {
			sb.WriteRune(b[Index(col, row)].Char())
		}
	}
	return sb.String()
}
