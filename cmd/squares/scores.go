package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uncolored-squares/internal/games/uncolored"
	"github.com/vovakirdan/uncolored-squares/internal/registry"
	"github.com/vovakirdan/uncolored-squares/internal/storage"
)

var (
	flagScoresLimit int
	flagShowRuns    bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores and statistics of a mode, or of the classic
mode when none is given.

Examples:
  squares scores
  squares scores squares_endless --runs
  squares scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Also list the most recent modules")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := uncolored.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'squares list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Scores cleared for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'squares play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		fmt.Printf("Modules solved: %d of %d", stats.ModulesSolved, stats.ModulesPlayed)
		if stats.FastestSolve > 0 {
			fmt.Printf("  Fastest: %s", stats.FastestSolve.Round(100 * time.Millisecond))
		}
		fmt.Println()
	}

	if !flagShowRuns {
		return nil
	}

	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving modules: %v\n", err)
		return nil
	}
	fmt.Println()
	fmt.Println("Recent modules")
	fmt.Printf("  %-7s  %-16s  %-6s  %-7s  %-6s  %s\n", "Module", "First pair", "Stages", "Strikes", "Result", "Time")
	for _, r := range runs {
		result := "fail"
		if r.Solved {
			result = "solved"
		}
		fmt.Printf("  %-7d  %-16s  %-6d  %-7d  %-6s  %s\n",
			r.ModuleID, r.FirstPair, r.Stages, r.Strikes, result, r.Duration.Round(100 * time.Millisecond))
	}
	return nil
}
