package uncolored

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/uncolored-squares/internal/config"
	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/registry"
	"github.com/vovakirdan/uncolored-squares/internal/squares"
)

func testConfig() config.SquaresConfig {
	cfg := config.DefaultSquaresConfig()
	cfg.Reveal.Delay = 0
	cfg.Reveal.Stagger = 0
	return cfg
}

func newTestGame(t *testing.T, mode Mode, cfg config.SquaresConfig, seed int64) *Game {
	t.Helper()
	g := New(mode, cfg, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed, ModuleID: 1})
	t.Cleanup(g.Close)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func command(g *Game, text string) core.StepResult {
	in := core.NewInputFrame()
	in.SetCommand(text)
	return g.Step(in)
}

func coords(p squares.Placement) string {
	names := make([]string, len(p))
	for i, ix := range p {
		names[i] = squares.Coord(ix)
	}
	return strings.Join(names, " ")
}

// solveStage types the first open placement as one command.
func solveStage(t *testing.T, g *Game) squares.Placement {
	t.Helper()
	placements := g.Placements()
	if len(placements) == 0 {
		t.Fatal("no open placements")
	}
	command(g, coords(placements[0]))
	return placements[0]
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{IDClassic, IDEndless} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, ModeEndless, testConfig(), 12345)
	g2 := newTestGame(t, ModeEndless, testConfig(), 12345)

	for range 3 {
		solveStage(t, g1)
		solveStage(t, g2)
		step(g1, core.ActionRight)
		step(g2, core.ActionRight)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Board != s2.Board {
		t.Errorf("Board mismatch:\n%s\nvs\n%s", s1.Board, s2.Board)
	}
	if s1.Pair != s2.Pair || s1.FirstPair != s2.FirstPair {
		t.Errorf("Pair mismatch: %v vs %v", s1.Pair, s2.Pair)
	}
	if s1.Score != s2.Score || s1.ModuleID != s2.ModuleID || s1.Tick != s2.Tick {
		t.Errorf("snapshot mismatch: %+v vs %+v", s1, s2)
	}
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 1)

	step(g, core.ActionLeft)
	step(g, core.ActionUp)
	if s := g.Snapshot(); s.CursorCol != 3 || s.CursorRow != 3 {
		t.Errorf("cursor = (%d, %d), expected (3, 3)", s.CursorCol, s.CursorRow)
	}

	step(g, core.ActionRight)
	step(g, core.ActionDown)
	step(g, core.ActionDown)
	if s := g.Snapshot(); s.CursorCol != 0 || s.CursorRow != 1 {
		t.Errorf("cursor = (%d, %d), expected (0, 1)", s.CursorCol, s.CursorRow)
	}
}

func TestPressUnderCursor(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 2)
	target := g.Placements()[0][0]
	col, row := squares.ColRow(target)
	for range col {
		step(g, core.ActionRight)
	}
	for range row {
		step(g, core.ActionDown)
	}

	step(g, core.ActionPress)

	s := g.Snapshot()
	if s.Score != g.cfg.Scoring.CellPoints {
		t.Errorf("Score = %d, expected %d", s.Score, g.cfg.Scoring.CellPoints)
	}
	if s.Visible[target] != squares.White {
		t.Errorf("pressed square shows %v, expected White", s.Visible[target])
	}
}

func TestCommandCompletesStage(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 3)
	sc := g.cfg.Scoring

	p := solveStage(t, g)

	s := g.Snapshot()
	want := len(p)*sc.CellPoints + sc.StagePoints
	if s.Score != want {
		t.Errorf("Score = %d, expected %d", s.Score, want)
	}
	if s.Stage != 2 {
		t.Errorf("Stage = %d, expected 2", s.Stage)
	}
	for _, ix := range p {
		if s.Board[ix] != squares.Black {
			t.Errorf("solved square %s is %v, expected Black", squares.Coord(ix), s.Board[ix])
		}
	}
}

func TestMalformedCommandShowsHelp(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 4)

	command(g, "a1,z9")

	if g.message != squares.HelpMessage || g.messageLeft == 0 {
		t.Errorf("message = %q, expected the help text", g.message)
	}
	if s := g.Snapshot(); s.Score != 0 || s.Strikes != 0 {
		t.Errorf("malformed command changed the game: %+v", s)
	}
}

func TestStrikesEndGame(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.MaxStrikes = 2
	g := newTestGame(t, ModeClassic, cfg, 5)

	p := solveStage(t, g)
	scoreBefore := g.State().Score

	// Squares solved in stage one are dark now.
	command(g, squares.Coord(p[0]))

	st := g.State()
	if st.GameOver || st.Strikes != 1 {
		t.Fatalf("after one strike: %+v", st)
	}
	if want := max(0, scoreBefore-cfg.Scoring.StrikePenalty); st.Score != want {
		t.Errorf("Score = %d, expected %d", st.Score, want)
	}
	if g.Snapshot().Stage != 1 {
		t.Errorf("Stage = %d after a strike, expected 1", g.Snapshot().Stage)
	}

	p = solveStage(t, g)
	command(g, squares.Coord(p[0]))

	st = g.State()
	if !st.GameOver || st.Strikes != 2 {
		t.Fatalf("after two strikes: %+v", st)
	}
	if g.Outcome() != OutcomeExploded {
		t.Errorf("Outcome() = %q, expected %q", g.Outcome(), OutcomeExploded)
	}
	runs := g.Runs()
	if len(runs) != 1 || runs[0].Solved || runs[0].Strikes != 2 {
		t.Errorf("Runs() = %+v, expected one unsolved run with 2 strikes", runs)
	}

	// Input after game over is ignored.
	before := g.Snapshot()
	step(g, core.ActionPress)
	if g.Snapshot().Tick != before.Tick {
		t.Error("game kept ticking after game over")
	}
}

func TestCommandStrikesOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.MaxStrikes = 2
	g := newTestGame(t, ModeClassic, cfg, 6)

	p := solveStage(t, g)

	// One dark square followed by every square of the board.
	tokens := []string{squares.Coord(p[0])}
	for i := range squares.Cells {
		tokens = append(tokens, squares.Coord(i))
	}
	command(g, strings.Join(tokens, " "))

	st := g.State()
	if st.GameOver || st.Strikes != 1 {
		t.Fatalf("after one striking command: %+v, expected one strike", st)
	}
	snap := g.Snapshot()
	if snap.Stage != 1 {
		t.Errorf("Stage = %d, expected 1", snap.Stage)
	}
	for i, col := range snap.Board {
		if !col.IsHue() {
			t.Errorf("square %s is %v, expected the reset board untouched", squares.Coord(i), col)
		}
	}
}

func TestClassicSolveEndsGame(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGame(t, ModeClassic, testConfig(), seed)

		for i := 0; i < 16 && !g.State().GameOver; i++ {
			solveStage(t, g)
		}

		st := g.State()
		if !st.GameOver || st.Solved != 1 || st.Strikes != 0 {
			t.Fatalf("seed %d: state = %+v, expected a solved game", seed, st)
		}
		if g.Outcome() != OutcomeSolved {
			t.Errorf("seed %d: Outcome() = %q, expected solved", seed, g.Outcome())
		}
		if st.Score < g.cfg.Scoring.SolveBonus {
			t.Errorf("seed %d: Score = %d, expected the solve bonus included", seed, st.Score)
		}
		runs := g.Runs()
		if len(runs) != 1 || !runs[0].Solved || runs[0].Stages < 1 {
			t.Errorf("seed %d: Runs() = %+v", seed, runs)
		}
		if runs[0].FirstPair != g.Snapshot().FirstPair {
			t.Errorf("seed %d: recorded first pair %v, module had %v", seed, runs[0].FirstPair, g.Snapshot().FirstPair)
		}
	}
}

func TestEndlessStartsNextModule(t *testing.T) {
	g := newTestGame(t, ModeEndless, testConfig(), 6)

	for i := 0; i < 16 && g.State().Solved == 0; i++ {
		solveStage(t, g)
	}

	st := g.State()
	if st.GameOver {
		t.Fatal("endless game should continue after a solve")
	}
	s := g.Snapshot()
	if s.ModuleID != 2 || s.Stage != 1 || s.State != squares.AwaitingInput {
		t.Errorf("next module: id %d, stage %d, state %v", s.ModuleID, s.Stage, s.State)
	}
	if s.Board.EnabledCount() != squares.Cells {
		t.Errorf("next module starts with %d live squares, expected %d", s.Board.EnabledCount(), squares.Cells)
	}
	if runs := g.Runs(); len(runs) != 1 || runs[0].ModuleID != 1 || !runs[0].Solved {
		t.Errorf("Runs() = %+v", runs)
	}
}

func TestTimeLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.TimeLimit = config.Duration(time.Second)
	g := New(ModeClassic, cfg, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7})
	t.Cleanup(g.Close)

	for range 9 {
		step(g)
	}
	if g.State().GameOver {
		t.Fatal("game ended before the time limit")
	}
	step(g)
	if !g.State().GameOver || g.Outcome() != OutcomeTimeUp {
		t.Errorf("after 1s: GameOver = %v, Outcome = %q", g.State().GameOver, g.Outcome())
	}
}

func TestPauseFreezesInput(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 8)

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	command(g, coords(g.Placements()[0]))
	if g.State().Score != 0 {
		t.Error("commands should be ignored while paused")
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.MaxStrikes = 1
	g := newTestGame(t, ModeClassic, cfg, 9)
	p := solveStage(t, g)
	command(g, squares.Coord(p[0]))
	if !g.State().GameOver {
		t.Fatal("one strike should end the game")
	}

	step(g, core.ActionRestart)

	st := g.State()
	if st.GameOver || st.Score != 0 || st.Strikes != 0 {
		t.Errorf("after restart: %+v", st)
	}
	if g.Snapshot().ModuleID != 2 {
		t.Errorf("ModuleID = %d, expected 2", g.Snapshot().ModuleID)
	}
	if len(g.Runs()) != 0 {
		t.Errorf("Runs() = %+v, expected none after restart", g.Runs())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 10)
	g.WaitReveal()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Uncolored Squares", "Score: 0", "[A1]", "Strikes 0/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen is missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Errorf("small screen should show a resize hint:\n%s", small.String())
	}
}

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig(), 10)
	g.WaitReveal()

	screen := core.NewScreen(MinWidth, MinHeight)
	g.Render(screen)

	board := core.NewRect((MinWidth-boardW)/2, hudRows+1, boardW, boardH)
	if got := screen.GetCell(board.X+labelW+cellW/2, board.Y).Rune; got != 'A' {
		t.Errorf("column label = %q, expected 'A'", got)
	}
	if got := screen.GetCell(board.X, board.Y+1+cellH/2).Rune; got != '1' {
		t.Errorf("row label = %q, expected '1'", got)
	}
	if top := strings.Split(screen.String(), "\n")[0]; !strings.HasSuffix(top, "Score: 0 ") {
		t.Errorf("score is not right-aligned: %q", top)
	}

	step(g, core.ActionPause)
	paused := core.NewScreen(MinWidth, MinHeight)
	g.Render(paused)

	found := false
	for y := range paused.Height() {
		for x := range paused.Width() {
			if paused.GetCell(x, y).Rune != '┌' {
				continue
			}
			found = true
			if x < board.X || x >= board.Right() || y < board.Y || y >= board.Bottom() {
				t.Errorf("pause box corner at (%d, %d) lies outside the board %+v", x, y, board)
			}
		}
	}
	if !found {
		t.Error("pause overlay was not drawn")
	}
}

func TestCellStyle(t *testing.T) {
	tests := []struct {
		color squares.Color
		glyph rune
		want  core.Color
	}{
		{squares.Black, '░', core.ColorDark},
		{squares.White, '█', core.ColorBrightWhite},
		{squares.Magenta, '█', core.ColorMagenta},
		{squares.Yellow, '█', core.ColorYellow},
	}
	for _, tc := range tests {
		glyph, got := cellStyle(tc.color)
		if glyph != tc.glyph || got != tc.want {
			t.Errorf("cellStyle(%v) = %q, %v, expected %q, %v", tc.color, glyph, got, tc.glyph, tc.want)
		}
	}
}
