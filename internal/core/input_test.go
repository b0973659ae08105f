package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPress) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.SetCommand("a1 b2")

	if !f.Has(ActionLeft) || !f.Has(ActionCommand) {
		t.Errorf("Actions = %v, expected Left and Command", f.Actions)
	}
	if f.Text != "a1 b2" {
		t.Errorf("Text = %q, expected %q", f.Text, "a1 b2")
	}

	f.Clear()
	if !f.Empty() || f.Text != "" {
		t.Errorf("after Clear, frame = %+v, expected empty", f)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionPress, "Press"},
		{ActionCommand, "Command"},
		{ActionRight, "Right"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
