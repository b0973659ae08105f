package squares

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Placement is a pattern anchored at a board offset, expanded to the absolute
// indices of the cells it covers.
type Placement []int

// Contains reports whether the placement covers index.
func (p Placement) Contains(index int) bool {
	return slices.Contains(p, index)
}

// fits reports whether a pattern's bounding box anchored at offset stays on
// the board.
func fits(p Pattern, offset int) bool {
	col, row := ColRow(offset)
	return col+p.W <= Size && row+p.H <= Size
}

// placeAt expands p at offset. It returns false if any covered cell is Black.
// Cells outside the shape are not inspected.
func placeAt(p Pattern, offset int, b Board) (Placement, bool) {
	col, row := ColRow(offset)
	cells := p.Cells()
	pl := make(Placement, 0, len(cells))
	for _, pt := range cells {
		ix := Index(col+pt.X, row+pt.Y)
		if b[ix] == Black {
			return nil, false
		}
		pl = append(pl, ix)
	}
	return pl, true
}

// Placements enumerates every offset where p fits on the enabled cells of b,
// in ascending offset order.
func Placements(p Pattern, b Board) []Placement {
	var out []Placement
	for offset := range Cells {
		if !fits(p, offset) {
			continue
		}
		if pl, ok := placeAt(p, offset, b); ok {
			out = append(out, pl)
		}
	}
	return out
}

// hasPlacement reports whether p can be placed at least once on b.
func hasPlacement(p Pattern, b Board) bool {
	for offset := range Cells {
		if !fits(p, offset) {
			continue
		}
		if _, ok := placeAt(p, offset, b); ok {
			return true
		}
	}
	return false
}

// FeasiblePairs returns every ordered hue pair whose pattern has at least one
// valid placement on b.
func FeasiblePairs(b Board) mapset.Set[Pair] {
	feasible := mapset.New[Pair]()
	for _, first := range Hues() {
		for _, second := range Hues() {
			p, ok := Lookup(first, second)
			if !ok {
				continue
			}
			if hasPlacement(p, b) {
				feasible.Put(Pair{First: first, Second: second})
			}
		}
	}
	return feasible
}

// SortedPairs returns the members of a pair set in table order
// (by First, then Second).
func SortedPairs(set mapset.Set[Pair]) []Pair {
	pairs := make([]Pair, 0, set.Size())
	set.Each(func(p Pair) {
		pairs = append(pairs, p)
	})
	slices.SortFunc(pairs, func(a, b Pair) int {
		if a.First != b.First {
			return int(a.First) - int(b.First)
		}
		return int(a.Second) - int(b.Second)
	})
	return pairs
}
