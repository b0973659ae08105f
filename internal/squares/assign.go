package squares

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// RandomSource yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// noCode marks a Black cell in Assignment.Codes.
const noCode = -1

// Assignment is the outcome of coloring a board for one stage.
type Assignment struct {
	// Colors is the input board with every enabled cell recolored.
	Colors Board
	// Pair is the chosen color pair. Both hues are the rarest on Colors.
	Pair Pair
	// Codes holds the numeric code drawn for each cell (noCode for Black).
	Codes [Cells]int
	// MinCodes are the two least frequent codes, in order of first
	// appearance on the board. MinCodes[0] maps to Pair.First and
	// MinCodes[1] to Pair.Second.
	MinCodes [2]int
	// Hues maps each code to its final color.
	Hues [HueCount]Color
}

// Assign colors every enabled cell of b so that the chosen feasible pair ends
// up on the two least frequent codes.
//
// It panics if b has no enabled cells or feasible is empty; the controller
// checks both before calling.
func Assign(b Board, feasible mapset.Set[Pair], rng RandomSource) Assignment {
	if b.EnabledCount() == 0 {
		panic("squares: Assign called on a board with no enabled cells")
	}
	if feasible.Size() == 0 {
		panic("squares: Assign called without a feasible pair")
	}

	var a Assignment
	a.Codes, a.MinCodes = drawCodes(b, rng)
	a.Pair = pickPair(feasible, rng)
	a.Hues = hueMap(a.Pair, a.MinCodes)

	a.Colors = b
	for i, code := range a.Codes {
		if code != noCode {
			a.Colors[i] = a.Hues[code]
		}
	}
	return a
}

// drawCodes draws a code in [0, HueCount) for every enabled cell, retrying
// until exactly two codes share the minimum non-zero frequency.
func drawCodes(b Board, rng RandomSource) (codes [Cells]int, minCodes [2]int) {
	for {
		var counts [HueCount]int
		for i, c := range b {
			if c == Black {
				codes[i] = noCode
				continue
			}
			code := rng.Intn(HueCount)
			codes[i] = code
			counts[code]++
		}

		minCount := 0
		for _, n := range counts {
			if n > 0 && (minCount == 0 || n < minCount) {
				minCount = n
			}
		}

		// Codes with the minimum count, ordered by first appearance.
		var rare []int
		for _, code := range codes {
			if code != noCode && counts[code] == minCount && !slices.Contains(rare, code) {
				rare = append(rare, code)
			}
		}
		if len(rare) == 2 {
			return codes, [2]int{rare[0], rare[1]}
		}
	}
}

// pickPair chooses a first hue uniformly among those with a partner, then a
// partner uniformly. Both draws are over table-ordered lists so a seeded
// source is reproducible.
func pickPair(feasible mapset.Set[Pair], rng RandomSource) Pair {
	partners := make(map[Color][]Color)
	var firsts []Color
	for _, p := range SortedPairs(feasible) {
		if _, ok := partners[p.First]; !ok {
			firsts = append(firsts, p.First)
		}
		partners[p.First] = append(partners[p.First], p.Second)
	}

	first := firsts[rng.Intn(len(firsts))]
	seconds := partners[first]
	return Pair{First: first, Second: seconds[rng.Intn(len(seconds))]}
}

// hueMap builds the code-to-color map: the canonical order without the pair,
// with the pair reinserted at its two code positions. The lower position is
// filled first so the second insert lands where intended.
func hueMap(pair Pair, minCodes [2]int) [HueCount]Color {
	rest := make([]Color, 0, HueCount)
	for _, c := range canonicalOrder {
		if c != pair.First && c != pair.Second {
			rest = append(rest, c)
		}
	}

	if minCodes[0] > minCodes[1] {
		rest = slices.Insert(rest, minCodes[1], pair.Second)
		rest = slices.Insert(rest, minCodes[0], pair.First)
	} else {
		rest = slices.Insert(rest, minCodes[0], pair.First)
		rest = slices.Insert(rest, minCodes[1], pair.Second)
	}

	if len(rest) != HueCount {
		panic(fmt.Sprintf("squares: hue map has %d entries", len(rest)))
	}
	var out [HueCount]Color
	copy(out[:], rest)
	return out
}
