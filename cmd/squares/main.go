// squares plays the Uncolored Squares puzzle module in the terminal.
//
// Usage:
//
//	squares list              - List available modes
//	squares play [mode]       - Play a mode (default: squares)
//	squares menu              - Pick a mode interactively
//	squares serve             - Start SSH server for remote play
//	squares scores [mode]     - Show high scores and recent modules
//	squares replay            - Feed commands from a file or stdin, headless
//
// Global flags:
//
//	--config <path>       - Custom YAML config
//	--difficulty <name>   - Preset: easy, normal, hard
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - RNG seed for a reproducible module
//	--db <path>           - Database path (default: ~/.squares/scores.db)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log destination for the terminal UI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/uncolored-squares/internal/config"
	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/games/uncolored"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

// gameConfig is the configuration loaded before any subcommand runs.
var gameConfig = config.DefaultSquaresConfig()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "squares",
	Short: "Uncolored Squares - a memory puzzle module in your terminal",
	Long: `Uncolored Squares is a 4x4 puzzle module. Each stage two colors are
the rarest on the board; press every square of the shape they pick,
in any order. Pressed squares go dark, and the module is solved when
three or fewer squares are left.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent modules
  replay   - Run commands headless, one line per command

Examples:
  squares play
  squares play squares_endless --difficulty hard
  squares menu
  squares serve --ssh :2222
  squares replay --seed 42 --file moves.txt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.squares/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.squares/squares.log", "Log file for the terminal UI")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads the configuration and hands it to the games.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return err
		}
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	gameConfig = cfg

	logger, err := newLogger(cmd.Name())
	if err != nil {
		return err
	}
	log.SetDefault(logger)
	uncolored.Configure(cfg, logger)
	return nil
}

// newLogger builds the process logger. The terminal UI owns the screen, so
// play and menu log to a file; everything else logs to stderr.
func newLogger(command string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := os.Stderr
	if command == "play" || command == "menu" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "squares",
		Level:           level,
	}), nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = gameConfig.Display.TickRate
	cfg.Seed = flagSeed
	return cfg
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
