package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/games/uncolored"
	"github.com/vovakirdan/uncolored-squares/internal/squares"
)

var (
	flagReplayFile     string
	flagReplayMode     string
	flagReplaySolution bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run press commands without the terminal UI",
	Long: `Play a module headless. Every input line is one command such as
"a1 a2 a3 b3"; the board is printed after each one. Blank lines and
lines starting with # are skipped. Colors are revealed instantly.

With a fixed --seed the same lines always produce the same game, which
makes replay handy for sharing puzzles and checking solutions.

Examples:
  squares replay --seed 42
  squares replay --seed 42 --file moves.txt
  echo "a1 b1" | squares replay --seed 7 --solution`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayFile, "file", "", "Read commands from a file instead of stdin")
	replayCmd.Flags().StringVar(&flagReplayMode, "mode", string(uncolored.ModeClassic), "Mode: classic or endless")
	replayCmd.Flags().BoolVar(&flagReplaySolution, "solution", false, "Print the open placements before each command")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	mode := uncolored.Mode(flagReplayMode)
	if mode != uncolored.ModeClassic && mode != uncolored.ModeEndless {
		return fmt.Errorf("unknown mode %q, expected classic or endless", flagReplayMode)
	}

	var in io.Reader = os.Stdin
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if flagReplayFile != "" {
		f, err := os.Open(flagReplayFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		interactive = false
	}

	cfg := gameConfig
	cfg.Reveal.Delay = 0
	cfg.Reveal.Stagger = 0

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	game := uncolored.New(mode, cfg, log.Default())
	game.Reset(core.RuntimeConfig{
		ScreenW:  uncolored.MinWidth,
		ScreenH:  uncolored.MinHeight,
		TickRate: cfg.Display.TickRate,
		Seed:     seed,
		ModuleID: 1,
	})
	defer game.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed %d, %s mode. %s\n", seed, mode, squares.HelpMessage)
	printReplayState(out, game)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if _, err := squares.ParseCommand(line); err != nil {
			fmt.Fprintf(out, "line %d: %q: %s\n", lineNo, line, squares.HelpMessage)
			continue
		}

		frame := core.NewInputFrame()
		frame.SetCommand(line)
		state := game.Step(frame).State
		game.WaitReveal()

		fmt.Fprintf(out, "\nline %d: %s\n", lineNo, line)
		printReplayState(out, game)

		if state.GameOver {
			fmt.Fprintf(out, "Game over: %s, score %d\n", game.Outcome(), state.Score)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	snap := game.Snapshot()
	fmt.Fprintf(out, "Input ended at module %d, stage %d, score %d\n", snap.ModuleID, snap.Stage, snap.Score)
	return nil
}

func printReplayState(out io.Writer, game *uncolored.Game) {
	snap := game.Snapshot()
	fmt.Fprintf(out, "Module %d  Stage %d  Pair %s  Strikes %d  Score %d\n",
		snap.ModuleID, snap.Stage, snap.Pair, snap.Strikes, snap.Score)
	fmt.Fprintln(out, snap.Board.String())

	if !flagReplaySolution {
		return
	}
	for _, p := range game.Placements() {
		names := make([]string, len(p))
		for i, ix := range p {
			names[i] = squares.Coord(ix)
		}
		fmt.Fprintf(out, "  open: %s\n", strings.Join(names, " "))
	}
}
