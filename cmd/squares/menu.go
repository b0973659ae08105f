package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/uncolored-squares/internal/platform/tui"
	"github.com/vovakirdan/uncolored-squares/internal/registry"
	"github.com/vovakirdan/uncolored-squares/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for
the scoreboard. After a game ends you return to the menu.

Examples:
  squares menu
  squares menu --difficulty hard
  squares menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	moduleID := 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			log.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		moduleID++
		gameCfg := cfg
		gameCfg.ModuleID = moduleID
		if flagSeed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, gameCfg); err != nil {
			return err
		}
	}
}
