package squares

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Judge receives the module's externally visible outcomes.
type Judge interface {
	Strike()
	Pass()
}

// CellRenderer displays a cell. Black means the cell is dark.
type CellRenderer interface {
	SetCell(index int, c Color)
}

// State is the controller's lifecycle state.
type State int

const (
	Idle State = iota
	AwaitingInput
	Solved
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AwaitingInput:
		return "AwaitingInput"
	case Solved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// PressResult describes what a press did.
type PressResult int

const (
	PressIgnored       PressResult = iota // Not accepting input, already pressed, or off-board
	PressCorrect                          // Part of a remaining placement
	PressStageComplete                    // Finished the stage, next stage is set up
	PressSolved                           // Finished the stage and the module
	PressStrike                           // Not part of any placement; module was reset
)

// String returns a human-readable name for the result.
func (r PressResult) String() string {
	switch r {
	case PressIgnored:
		return "Ignored"
	case PressCorrect:
		return "Correct"
	case PressStageComplete:
		return "StageComplete"
	case PressSolved:
		return "Solved"
	case PressStrike:
		return "Strike"
	default:
		return "Unknown"
	}
}

// Options configures a Controller.
type Options struct {
	// ID identifies the module in logs. Assigned by whoever creates it.
	ID int
	// Rand drives coloring and reveal order. Required.
	Rand RandomSource
	// Judge and Renderer may be nil.
	Judge    Judge
	Renderer CellRenderer
	// Logger defaults to a discarding logger.
	Logger *log.Logger
	// RevealDelay and RevealStagger time the color reveal of a new stage.
	// Zero reveals immediately.
	RevealDelay   time.Duration
	RevealStagger time.Duration
}

// Controller runs one module: stage setup, press handling and progression.
// All methods are safe for concurrent use. Judge and CellRenderer are called
// with the controller's lock held and must not call back into it.
type Controller struct {
	mu sync.Mutex

	id            int
	rng           RandomSource
	judge         Judge
	renderer      CellRenderer
	logger        *log.Logger
	revealDelay   time.Duration
	revealStagger time.Duration

	state      State
	board      Board
	pair       Pair
	firstPair  Pair
	placements []Placement
	pressed    []int
	stage      int
	strikes    int
	passed     bool

	ctx    context.Context
	stop   context.CancelFunc
	reveal *reveal
}

// New creates an idle controller. Call Start to set up the first stage.
func New(opts Options) *Controller {
	if opts.Rand == nil {
		panic("squares: Options.Rand is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	judge := opts.Judge
	if judge == nil {
		judge = nopJudge{}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = nopRenderer{}
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Controller{
		id:            opts.ID,
		rng:           opts.Rand,
		judge:         judge,
		renderer:      renderer,
		logger:        logger.WithPrefix(fmt.Sprintf("squares #%d", opts.ID)),
		revealDelay:   opts.RevealDelay,
		revealStagger: opts.RevealStagger,
		state:         Idle,
		board:         NewBoard(),
		ctx:           ctx,
		stop:          stop,
	}
}

// Start sets up the first stage. It does nothing unless the controller is Idle.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return
	}
	c.setStage(true)
}

// Press handles a press of the cell at index.
func (c *Controller) Press(index int) PressResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != AwaitingInput || !InRange(index) {
		return PressIgnored
	}
	if slices.Contains(c.pressed, index) {
		return PressIgnored
	}

	covered := slices.ContainsFunc(c.placements, func(p Placement) bool {
		return p.Contains(index)
	})
	if !covered {
		c.logger.Warn("incorrect press, resetting module", "cell", Coord(index), "color", c.board[index])
		c.strikes++
		c.judge.Strike()
		c.cancelReveal()
		c.setStage(true)
		return PressStrike
	}

	c.placements = slices.DeleteFunc(c.placements, func(p Placement) bool {
		return !p.Contains(index)
	})
	c.pressed = append(c.pressed, index)
	c.board[index] = White
	c.renderer.SetCell(index, White)
	for i, col := range c.board {
		if col == Black {
			c.renderer.SetCell(i, Black)
		}
	}
	c.logger.Debug("correct press", "cell", Coord(index), "remaining", len(c.placements))

	if len(c.placements) == 1 && len(c.pressed) == len(c.placements[0]) {
		c.setStage(false)
		if c.state == Solved {
			return PressSolved
		}
		return PressStageComplete
	}
	return PressCorrect
}

// Command parses a remote command and presses each named cell in order,
// stopping after a Strike or Solved result. A malformed command is rejected
// before any press is made.
func (c *Controller) Command(text string) ([]PressResult, error) {
	indices, err := ParseCommand(text)
	if err != nil {
		c.logger.Debug("rejected command", "command", text, "error", err)
		return nil, err
	}
	results := make([]PressResult, 0, len(indices))
	for _, index := range indices {
		res := c.Press(index)
		results = append(results, res)
		if res == PressStrike || res == PressSolved {
			// Later tokens were aimed at a board that no longer exists.
			break
		}
	}
	return results, nil
}

// setStage moves to a new stage. isStart resets the whole module; otherwise
// the cells pressed in the finished stage are disabled. Callers hold c.mu.
func (c *Controller) setStage(isStart bool) {
	recolor := make([]int, 0, Cells)
	for i, col := range c.board {
		if isStart || col != Black {
			recolor = append(recolor, i)
		}
	}

	if isStart {
		c.board.Reset()
		for i := range Cells {
			c.renderer.SetCell(i, Black)
		}
		c.stage = 0
	} else {
		live := 0
		for i, col := range c.board {
			switch {
			case col == White:
				c.board[i] = Black
				c.renderer.SetCell(i, Black)
			case col.IsHue():
				live++
				c.renderer.SetCell(i, Black)
			}
		}
		if live <= 3 {
			c.logger.Debug("too few live cells", "live", live)
			c.solve()
			return
		}
	}

	feasible := FeasiblePairs(c.board)
	if feasible.Size() == 0 {
		c.logger.Debug("no color pair fits the live cells", "live", c.board.EnabledCount())
		c.solve()
		return
	}

	a := Assign(c.board, feasible, c.rng)
	c.board = a.Colors
	c.pair = a.Pair
	if isStart {
		c.firstPair = a.Pair
	}

	pattern, _ := LookupPair(a.Pair)
	c.placements = Placements(pattern, c.board)
	c.pressed = c.pressed[:0]
	c.stage++
	c.state = AwaitingInput

	shuffle(recolor, c.rng)
	c.startReveal(recolor)

	if isStart {
		c.logger.Info("first stage color pair", "pair", c.firstPair)
	} else {
		c.logger.Info("next stage color pair", "pair", c.pair, "stage", c.stage)
	}
	c.logger.Debug("stage ready", "placements", len(c.placements), "live", c.board.EnabledCount())
}

// solve ends the module. Callers hold c.mu.
func (c *Controller) solve() {
	c.cancelReveal()
	c.state = Solved
	c.placements = nil
	c.pressed = c.pressed[:0]
	for i := range Cells {
		c.renderer.SetCell(i, Black)
	}
	if c.passed {
		return
	}
	c.passed = true
	c.logger.Info("module solved", "stages", c.stage, "strikes", c.strikes)
	c.judge.Pass()
}

// startReveal replaces any outstanding reveal. Callers hold c.mu.
func (c *Controller) startReveal(order []int) {
	c.cancelReveal()
	c.reveal = startReveal(c.ctx, c.revealDelay, c.revealStagger, order, func(ctx context.Context, index int) bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if ctx.Err() != nil {
			return false
		}
		c.renderer.SetCell(index, c.board[index])
		return true
	})
}

// cancelReveal stops the outstanding reveal, if any. Callers hold c.mu.
func (c *Controller) cancelReveal() {
	if c.reveal != nil {
		c.reveal.Cancel()
	}
}

// Wait blocks until the outstanding reveal has finished or been cancelled.
func (c *Controller) Wait() {
	c.mu.Lock()
	r := c.reveal
	c.mu.Unlock()
	if r != nil {
		<-r.done
	}
}

// Close cancels any reveal in progress. The controller keeps answering
// queries but no further cells are painted by reveals.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelReveal()
	c.stop()
}

// ID returns the module identifier.
func (c *Controller) ID() int {
	return c.id
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Board returns a copy of the logical board.
func (c *Controller) Board() Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board
}

// Pair returns the current stage's color pair.
func (c *Controller) Pair() Pair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pair
}

// FirstPair returns the color pair of the first stage since the last reset.
func (c *Controller) FirstPair() Pair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.firstPair
}

// Stage returns the 1-based stage number since the last reset.
func (c *Controller) Stage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Strikes returns how many incorrect presses this module has seen.
func (c *Controller) Strikes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strikes
}

// Placements returns a copy of the placements still consistent with the
// presses made this stage.
func (c *Controller) Placements() []Placement {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Placement, len(c.placements))
	for i, p := range c.placements {
		out[i] = slices.Clone(p)
	}
	return out
}

// Pressed returns the cells pressed this stage, in press order.
func (c *Controller) Pressed() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.pressed)
}

type nopJudge struct{}

func (nopJudge) Strike() {}
func (nopJudge) Pass()   {}

type nopRenderer struct{}

func (nopRenderer) SetCell(int, Color) {}
