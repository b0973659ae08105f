// Package uncolored plays the squares module as a registry game: a cursor
// over the 4x4 board, typed commands, scoring, strikes and the endless mode.
package uncolored

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uncolored-squares/internal/config"
	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/registry"
	"github.com/vovakirdan/uncolored-squares/internal/squares"
)

// Mode selects what happens after a module is solved.
type Mode string

const (
	ModeClassic Mode = "classic" // One module, the game ends when it is solved
	ModeEndless Mode = "endless" // A new module follows every solve
)

const (
	IDClassic = "squares"
	IDEndless = "squares_endless"

	messageTicks = 90
)

// Outcome says why a game ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeSolved   Outcome = "solved"
	OutcomeExploded Outcome = "exploded"
	OutcomeTimeUp   Outcome = "time_up"
)

var (
	defaultsMu    sync.RWMutex
	defaultConfig = config.DefaultSquaresConfig()
	defaultLogger = log.New(io.Discard)
)

// Configure sets the configuration and logger used by games created through
// the registry. Call it before the front end starts.
func Configure(cfg config.SquaresConfig, logger *log.Logger) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultConfig = cfg
	if logger != nil {
		defaultLogger = logger
	}
}

func configured() (config.SquaresConfig, *log.Logger) {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultConfig, defaultLogger
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          IDClassic,
		Title:       "Uncolored Squares",
		Description: "Solve one module before the strikes run out",
	}, func() registry.Game {
		cfg, logger := configured()
		return New(ModeClassic, cfg, logger)
	})
	registry.Register(registry.GameInfo{
		ID:          IDEndless,
		Title:       "Uncolored Squares (Endless)",
		Description: "Solve module after module until the strikes run out",
	}, func() registry.Game {
		cfg, logger := configured()
		return New(ModeEndless, cfg, logger)
	})
}

// ModuleRun records one module played during a game.
type ModuleRun struct {
	ModuleID  int
	Seed      int64
	FirstPair squares.Pair
	Stages    int // Stages completed, including the solving one
	Strikes   int
	Solved    bool
	Duration  time.Duration
}

// tally counts the controller's verdicts over a whole game. The controller
// calls it from Press, which only runs inside Step.
type tally struct {
	strikes int
	passes  int
}

func (t *tally) Strike() { t.strikes++ }
func (t *tally) Pass()   { t.passes++ }

// Game is one play session.
type Game struct {
	mode   Mode
	cfg    config.SquaresConfig
	logger *log.Logger

	rng      *rand.Rand
	seed     int64
	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	ctrl          *squares.Controller
	view          *view
	verdicts      *tally
	moduleID      int
	moduleSeed    int64
	moduleStart   uint64
	moduleStrikes int // verdicts.strikes when the module started
	stages        int

	cursorCol int
	cursorRow int

	score    int
	solved   int
	runs     []ModuleRun
	outcome  Outcome
	gameOver bool
	paused   bool

	message     string
	messageLeft int
}

// New creates a game. Reset must be called before Step.
func New(mode Mode, cfg config.SquaresConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		mode:   mode,
		cfg:    cfg,
		logger: logger,
	}
}

// ID returns the registry id of the mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Uncolored Squares (Endless)"
	}
	return "Uncolored Squares"
}

// Reset starts a new game. The first module gets cfg.ModuleID.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Close()

	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = g.cfg.Display.TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.score = 0
	g.solved = 0
	g.runs = nil
	g.outcome = OutcomeNone
	g.gameOver = false
	g.paused = false
	g.cursorCol, g.cursorRow = 0, 0
	g.message, g.messageLeft = "", 0
	g.verdicts = &tally{}

	g.moduleID = max(cfg.ModuleID, 1) - 1
	g.startModule()
}

// startModule replaces the controller with a fresh module.
func (g *Game) startModule() {
	if g.ctrl != nil {
		g.ctrl.Close()
	}
	g.moduleID++
	g.moduleSeed = g.rng.Int63()
	g.moduleStart = g.tick
	g.stages = 0
	g.moduleStrikes = g.verdicts.strikes
	g.view = newView()

	g.ctrl = squares.New(squares.Options{
		ID:            g.moduleID,
		Rand:          rand.New(rand.NewSource(g.moduleSeed)),
		Judge:         g.verdicts,
		Renderer:      g.view,
		Logger:        g.logger,
		RevealDelay:   g.cfg.Reveal.Delay.Std(),
		RevealStagger: g.cfg.Reveal.Stagger.Std(),
	})
	g.ctrl.Start()
}

// Close stops the current module's reveal.
func (g *Game) Close() {
	if g.ctrl != nil {
		g.ctrl.Close()
	}
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: g.tickRate,
				Seed:     g.rng.Int63(),
				ModuleID: g.moduleID + 1,
			})
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.messageLeft > 0 {
		g.messageLeft--
	}

	if limit := g.cfg.Rules.TimeLimit.Std(); limit > 0 && g.elapsed() >= limit {
		g.endGame(OutcomeTimeUp)
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionPress) {
		g.applyPress(g.ctrl.Press(squares.Index(g.cursorCol, g.cursorRow)))
	}
	if in.Has(core.ActionCommand) {
		g.runCommand(in.Text)
	}

	g.checkModule()
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Wrap(g.cursorRow-1, squares.Size)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Wrap(g.cursorRow+1, squares.Size)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Wrap(g.cursorCol-1, squares.Size)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Wrap(g.cursorCol+1, squares.Size)
	}
}

func (g *Game) runCommand(text string) {
	results, err := g.ctrl.Command(text)
	if err != nil {
		g.say(squares.HelpMessage)
		return
	}
	for _, res := range results {
		g.applyPress(res)
	}
}

// applyPress turns a press result into points.
func (g *Game) applyPress(res squares.PressResult) {
	sc := g.cfg.Scoring
	switch res {
	case squares.PressCorrect:
		g.score += sc.CellPoints
	case squares.PressStageComplete:
		g.stages++
		g.score += sc.CellPoints + sc.StagePoints
		g.say(fmt.Sprintf("Stage %d cleared", g.stages))
	case squares.PressSolved:
		g.stages++
		g.score += sc.CellPoints + sc.StagePoints
	case squares.PressStrike:
		g.stages = 0
		g.score = max(0, g.score-sc.StrikePenalty)
		g.say(fmt.Sprintf("Strike! %d of %d", g.strikes(), g.cfg.Rules.MaxStrikes))
	}
}

// checkModule reacts to the verdicts collected during this tick.
func (g *Game) checkModule() {
	if g.strikes() >= g.cfg.Rules.MaxStrikes {
		g.endGame(OutcomeExploded)
		return
	}
	if g.verdicts.passes == g.solved {
		return
	}

	g.solved++
	g.score += g.cfg.Scoring.SolveBonus
	g.recordModule(true)
	g.logger.Info("module solved", "module", g.moduleID, "score", g.score, "solved", g.solved)

	if g.mode == ModeClassic {
		g.outcome = OutcomeSolved
		g.gameOver = true
		return
	}
	g.say(fmt.Sprintf("Module %d solved", g.moduleID))
	g.startModule()
}

func (g *Game) strikes() int {
	return g.verdicts.strikes
}

func (g *Game) endGame(outcome Outcome) {
	if g.outcome == OutcomeNone {
		g.recordModule(false)
	}
	g.outcome = outcome
	g.gameOver = true
	g.ctrl.Close()
	g.logger.Info("game over", "outcome", outcome, "score", g.score, "solved", g.solved, "strikes", g.strikes())
}

func (g *Game) recordModule(solved bool) {
	g.runs = append(g.runs, ModuleRun{
		ModuleID:  g.moduleID,
		Seed:      g.moduleSeed,
		FirstPair: g.ctrl.FirstPair(),
		Stages:    g.stages,
		Strikes:   g.verdicts.strikes - g.moduleStrikes,
		Solved:    solved,
		Duration:  g.ticksToDuration(g.tick - g.moduleStart),
	})
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

func (g *Game) elapsed() time.Duration {
	return g.ticksToDuration(g.tick)
}

func (g *Game) ticksToDuration(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(g.tickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Solved:   g.solved,
		Strikes:  g.strikes(),
	}
}

// Runs returns the modules finished so far, including the one that was
// being played when the game ended.
func (g *Game) Runs() []ModuleRun {
	out := make([]ModuleRun, len(g.runs))
	copy(out, g.runs)
	return out
}

// Outcome returns why the game ended, or OutcomeNone while it is running.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// WaitReveal blocks until the current stage's colors are fully shown.
func (g *Game) WaitReveal() {
	g.ctrl.Wait()
}
