package uncolored

import "github.com/vovakirdan/uncolored-squares/internal/squares"

// Snapshot captures the game state for determinism tests and replays.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	ModuleID  int
	Score     int
	Solved    int
	Strikes   int
	Stage     int
	State     squares.State
	Pair      squares.Pair
	FirstPair squares.Pair
	Board     squares.Board // Logical colors
	Visible   squares.Board // What the player currently sees
	CursorCol int
	CursorRow int
	Outcome   Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		ModuleID:  g.moduleID,
		Score:     g.score,
		Solved:    g.solved,
		Strikes:   g.strikes(),
		Stage:     g.ctrl.Stage(),
		State:     g.ctrl.State(),
		Pair:      g.ctrl.Pair(),
		FirstPair: g.ctrl.FirstPair(),
		Board:     g.ctrl.Board(),
		Visible:   g.view.snapshot(),
		CursorCol: g.cursorCol,
		CursorRow: g.cursorRow,
		Outcome:   g.outcome,
	}
}

// Placements exposes the placements still open in the current stage.
func (g *Game) Placements() []squares.Placement {
	return g.ctrl.Placements()
}
