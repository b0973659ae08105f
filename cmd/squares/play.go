package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uncolored-squares/internal/games/uncolored"
	"github.com/vovakirdan/uncolored-squares/internal/platform/tui"
	"github.com/vovakirdan/uncolored-squares/internal/registry"
	"github.com/vovakirdan/uncolored-squares/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or the classic one.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Press the square under the cursor
  : / Tab           - Type squares to press, e.g. "a1 a2 a3 b3"
  P                 - Pause
  R                 - New module (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - Slow reveal, five strikes
  normal  - The configured values
  hard    - Fast reveal, one strike, three minute timer

Examples:
  squares play
  squares play squares_endless
  squares play --difficulty easy
  squares play --seed 42
  squares play --config ./my-squares.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := uncolored.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'squares list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}
	return runErr
}
