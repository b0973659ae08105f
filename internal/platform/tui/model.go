package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/games/uncolored"
	"github.com/vovakirdan/uncolored-squares/internal/registry"
	"github.com/vovakirdan/uncolored-squares/internal/storage"
)

// chromeRows is the number of lines below the game screen: the command
// prompt and the help bar.
const chromeRows = 2

var (
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	keys       GameKeyMap
	promptKeys PromptKeyMap
	help       help.Model
	prompt     textinput.Model
	prompting  bool
	embedded   bool // Hosted by a SessionModel; leaving must not quit the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the game has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game. A nil logger
// means the package default.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.Placeholder = "a1 b2 c3"
	prompt.CharLimit = 64
	prompt.Width = 40

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		keys:       DefaultGameKeyMap(),
		promptKeys: DefaultPromptKeyMap(),
		help:       h,
		prompt:     prompt,
	}
}

func gameHeight(total int) int {
	return max(total-chromeRows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is filled in on the first tick (value receiver).
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		return m.leave(false)
	}

	if m.keyMapper.OpensPrompt(msg) && !m.gameState.GameOver && !m.gameState.Paused {
		m.prompting = true
		m.prompt.Reset()
		return m, m.prompt.Focus()
	}

	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		return m.leave(true)
	}

	return m, nil
}

// handlePromptKey edits or submits the command being typed.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m.leave(false)

	case key.Matches(msg, m.promptKeys.Submit):
		if text := strings.TrimSpace(m.prompt.Value()); text != "" {
			m.inputFrame.SetCommand(text)
		}
		m.prompting = false
		m.prompt.Blur()
		m.prompt.Reset()
		return m, nil

	case key.Matches(msg, m.promptKeys.Cancel):
		m.prompting = false
		m.prompt.Blur()
		m.prompt.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// leave ends the game, either back to the menu or out of the program.
func (m Model) leave(toMenu bool) (tea.Model, tea.Cmd) {
	m.saveGame()
	registry.Release(m.game)
	if toMenu {
		m.backToMenu = true
	} else {
		m.quitting = true
	}
	if m.embedded && toMenu {
		return m, nil
	}
	return m, tea.Quit
}

// handleResize processes window resize events. The puzzle is kept; only the
// drawing area changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// The game restarts itself on ActionRestart.
	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else {
		m.saveGame()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveGame stores the score and module history once per game over. A game
// left mid-module is saved too, so its runs are not lost.
func (m *Model) saveGame() {
	if m.scoreSaved || m.store == nil {
		return
	}
	m.scoreSaved = true

	var runs []storage.Run
	if rr, ok := m.game.(interface{ Runs() []uncolored.ModuleRun }); ok {
		runs = storedRuns(rr.Runs())
	}
	state := m.game.State()
	if state.Score == 0 && len(runs) == 0 {
		return
	}

	if _, err := m.store.SaveGame(m.game.ID(), state.Score, runs); err != nil {
		m.logger.Warn("could not save game", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("game saved", "game", m.game.ID(), "score", state.Score, "modules", len(runs))
}

func storedRuns(runs []uncolored.ModuleRun) []storage.Run {
	out := make([]storage.Run, len(runs))
	for i, r := range runs {
		out[i] = storage.Run{
			ModuleID:  r.ModuleID,
			Seed:      r.Seed,
			FirstPair: r.FirstPair.String(),
			Stages:    r.Stages,
			Strikes:   r.Strikes,
			Solved:    r.Solved,
			Duration:  r.Duration,
		}
	}
	return out
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".squares", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.prompting {
		b.WriteString(promptStyle.Render(m.prompt.View()))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.help.ShortHelpView(m.promptKeys.ShortHelp())))
		return b.String()
	}

	b.WriteString(hintStyle.Render(`Type : then squares, e.g. "a1 a2 a3 b3"`))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Prompting reports whether a command is being typed.
func (m Model) Prompting() bool {
	return m.prompting
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and releases the
// game when it returns.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	registry.Release(game)
	return err
}
