package squares

import (
	"errors"
	"slices"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"diagonal", "a1 b2 c3 d4", []int{0, 5, 10, 15}, false},
		{"upper case", "A1 D4", []int{0, 15}, false},
		{"mixed separators", "b1,c1;  d1", []int{1, 2, 3}, false},
		{"keeps order", "d4 a1", []int{15, 0}, false},
		{"repeats allowed", "a1 a1", []int{0, 0}, false},
		{"one bad token", "a1,z9", nil, true},
		{"row out of range", "a5", nil, true},
		{"column out of range", "e1", nil, true},
		{"too long", "a11", nil, true},
		{"too short", "a", nil, true},
		{"empty", "", []int{}, false},
		{"only separators", " ,; ", []int{}, false},
		{"tabs are not separators", "a1\tb2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedCommand) {
					t.Errorf("ParseCommand(%q) error = %v, expected ErrMalformedCommand", tt.input, err)
				}
				if got != nil {
					t.Errorf("ParseCommand(%q) = %v, expected nil", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand(%q) failed: %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseCommand(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoordRoundTrip(t *testing.T) {
	for i := range Cells {
		got, err := ParseCommand(Coord(i))
		if err != nil {
			t.Fatalf("ParseCommand(%q) failed: %v", Coord(i), err)
		}
		if len(got) != 1 || got[0] != i {
			t.Errorf("ParseCommand(Coord(%d)) = %v", i, got)
		}
	}
}
