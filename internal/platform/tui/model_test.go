package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/uncolored-squares/internal/config"
	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/games/uncolored"
	"github.com/vovakirdan/uncolored-squares/internal/squares"
	"github.com/vovakirdan/uncolored-squares/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *uncolored.Game) {
	t.Helper()
	cfg := config.DefaultSquaresConfig()
	cfg.Reveal.Delay = 0
	cfg.Reveal.Stagger = 0

	game := uncolored.New(uncolored.ModeClassic, cfg, nil)
	t.Cleanup(game.Close)

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 4, ModuleID: 1}, nil)
	m.Init()
	return m, game
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, runeKey(r))
	}
	return m
}

func coords(p squares.Placement) string {
	names := make([]string, len(p))
	for i, ix := range p {
		names[i] = squares.Coord(ix)
	}
	return strings.Join(names, " ")
}

func TestPromptSubmitsCommand(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = send(t, m, runeKey(':'))
	if !m.Prompting() {
		t.Fatal("':' did not open the prompt")
	}

	m = typeText(t, m, "a1 b2")
	if got := m.prompt.Value(); got != "a1 b2" {
		t.Fatalf("prompt value = %q, expected %q", got, "a1 b2")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Prompting() {
		t.Error("Enter did not close the prompt")
	}
	if !m.inputFrame.Has(core.ActionCommand) || m.inputFrame.Text != "a1 b2" {
		t.Errorf("input frame = %+v, expected command %q", m.inputFrame, "a1 b2")
	}
	if m.inputFrame.Has(core.ActionPress) {
		t.Error("Enter in the prompt also pressed the square under the cursor")
	}
}

func TestPromptEscCancels(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "q")
	if m.IsQuitting() {
		t.Fatal("'q' typed in the prompt quit the game")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Prompting() {
		t.Error("Esc did not close the prompt")
	}
	if !m.inputFrame.Empty() {
		t.Errorf("input frame = %+v, expected nothing submitted", m.inputFrame)
	}
}

func TestTickAppliesCommand(t *testing.T) {
	m, game := newTestModel(t, nil)
	game.WaitReveal()

	placement := game.Placements()[0]
	m = send(t, m, runeKey(':'))
	m = typeText(t, m, coords(placement))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(time.Now()))

	if got := game.Snapshot().Stage; got != 2 {
		t.Errorf("Stage = %d after solving a placement, expected 2", got)
	}
	if m.State().Score == 0 {
		t.Error("State().Score = 0, expected points for the pressed squares")
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestResizeKeepsPuzzle(t *testing.T) {
	m, game := newTestModel(t, nil)
	game.WaitReveal()
	before := game.Snapshot()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 40-chromeRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-chromeRows)
	}
	after := game.Snapshot()
	if after.FirstPair != before.FirstPair || after.Board != before.Board {
		t.Error("resize restarted the module")
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	for i := 0; i < 16 && !m.State().GameOver; i++ {
		m.inputFrame.SetCommand(coords(game.Placements()[0]))
		m = send(t, m, TickMsg(time.Now()))
	}
	if !m.State().GameOver {
		t.Fatal("classic game did not end after solving the module")
	}
	m = send(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores(uncolored.IDClassic, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != m.State().Score {
		t.Errorf("TopScores() = %+v, expected one entry with score %d", scores, m.State().Score)
	}

	runs, err := store.RecentRuns(uncolored.IDClassic, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || !runs[0].Solved || runs[0].ScoreID != scores[0].ID {
		t.Fatalf("RecentRuns() = %+v, expected the solved module", runs)
	}
	if runs[0].FirstPair != game.Snapshot().FirstPair.String() {
		t.Errorf("FirstPair = %q, expected %q", runs[0].FirstPair, game.Snapshot().FirstPair.String())
	}
}

func TestQuitReleasesGame(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after 'q'")
	}
	if cmd == nil {
		t.Error("'q' returned no command, expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() after quitting should be empty")
	}
}

func TestBackOnlyWhenPausedOrOver(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.embedded = true

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Esc left a running game")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg(time.Now()))
	if !m.State().Paused {
		t.Fatal("'p' did not pause the game")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("Esc while paused did not go back to the menu")
	}
	if cmd != nil {
		t.Error("embedded model quit the program on back")
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, game := newTestModel(t, nil)
	game.WaitReveal()
	m = send(t, m, TickMsg(time.Now()))

	out := m.View()
	for _, want := range []string{"Uncolored Squares", "Score: 0", "command"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestStoredRuns(t *testing.T) {
	in := []uncolored.ModuleRun{{
		ModuleID:  7,
		Seed:      42,
		FirstPair: squares.Pair{First: squares.Blue, Second: squares.Magenta},
		Stages:    3,
		Strikes:   1,
		Solved:    true,
		Duration:  90 * time.Second,
	}}

	got := storedRuns(in)
	if len(got) != 1 {
		t.Fatalf("storedRuns() returned %d runs, expected 1", len(got))
	}
	r := got[0]
	if r.ModuleID != 7 || r.Seed != 42 || r.Stages != 3 || r.Strikes != 1 || !r.Solved || r.Duration != 90*time.Second {
		t.Errorf("storedRuns() = %+v", r)
	}
	if r.FirstPair != in[0].FirstPair.String() {
		t.Errorf("FirstPair = %q, expected %q", r.FirstPair, in[0].FirstPair.String())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "AB", core.ColorRed)
	s.DrawTextColor(2, 0, "CD", core.ColorBlue)
	s.DrawText(0, 1, "xy")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"AB", "CD", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}
