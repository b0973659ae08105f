package squares

import "testing"

func TestLookupTable(t *testing.T) {
	tests := []struct {
		first, second Color
		want          string
	}{
		{Green, Red, "##|#."},
		{Blue, Red, ".#|##"},
		{Yellow, Red, "#.|##|#."},
		{Magenta, Red, "##|.#"},
		{Red, Green, "#|#"},
		{Blue, Green, "#.|#.|##"},
		{Yellow, Green, "##|##"},
		{Magenta, Green, ".##|##."},
		{Red, Blue, "#.|##|.#"},
		{Green, Blue, "#.|##"},
		{Yellow, Blue, "###|.#."},
		{Magenta, Blue, ".#.|###"},
		{Red, Yellow, ".#|##|#."},
		{Green, Yellow, "##|#.|#."},
		{Blue, Yellow, ".#|.#|##"},
		{Magenta, Yellow, ".#|##|.#"},
		{Red, Magenta, "##.|.##"},
		{Green, Magenta, "###|..#"},
		{Blue, Magenta, "##"},
		{Yellow, Magenta, "###|#.."},
	}

	for _, tt := range tests {
		t.Run(Pair{tt.first, tt.second}.String(), func(t *testing.T) {
			p, ok := Lookup(tt.first, tt.second)
			if !ok {
				t.Fatalf("Lookup(%v, %v) not defined", tt.first, tt.second)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Lookup(%v, %v) = %s, want %s", tt.first, tt.second, got, tt.want)
			}
		})
	}
}

func TestLookupCoverage(t *testing.T) {
	defined, absent := 0, 0
	for _, a := range Hues() {
		for _, b := range Hues() {
			_, ok := Lookup(a, b)
			switch {
			case a == b && ok:
				t.Errorf("Lookup(%v, %v) should be undefined", a, b)
			case a == b:
				absent++
			case ok:
				defined++
			default:
				t.Errorf("Lookup(%v, %v) should be defined", a, b)
			}
		}
	}
	if defined != 20 || absent != 5 {
		t.Errorf("got %d defined and %d absent entries, expected 20 and 5", defined, absent)
	}
}

func TestLookupIsAsymmetric(t *testing.T) {
	asymmetric := 0
	for _, a := range Hues() {
		for _, b := range Hues() {
			if a == b {
				continue
			}
			ab, _ := Lookup(a, b)
			ba, _ := Lookup(b, a)
			if ab.String() != ba.String() {
				asymmetric++
			}
		}
	}
	if asymmetric == 0 {
		t.Error("expected at least one pair whose reverse uses a different pattern")
	}

	rg, _ := Lookup(Red, Green)
	gr, _ := Lookup(Green, Red)
	if rg.String() == gr.String() {
		t.Errorf("Red/Green and Green/Red should differ, both are %s", rg)
	}
}

func TestLookupRejectsNonHues(t *testing.T) {
	for _, c := range []Color{White, Black} {
		if _, ok := Lookup(c, Red); ok {
			t.Errorf("Lookup(%v, Red) should be undefined", c)
		}
		if _, ok := Lookup(Red, c); ok {
			t.Errorf("Lookup(Red, %v) should be undefined", c)
		}
	}
}

func TestPatternCellsAndSize(t *testing.T) {
	p, _ := Lookup(Yellow, Blue) // ###|.#.
	if p.W != 3 || p.H != 2 {
		t.Fatalf("dimensions = %dx%d, expected 3x2", p.W, p.H)
	}
	if p.Size() != 4 {
		t.Errorf("Size() = %d, expected 4", p.Size())
	}

	want := []Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
	got := p.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if p.At(-1, 0) || p.At(3, 0) || p.At(0, 2) {
		t.Error("At() outside the pattern should be false")
	}
}
