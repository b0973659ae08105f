package uncolored

import (
	"fmt"
	"time"

	"github.com/vovakirdan/uncolored-squares/internal/core"
	"github.com/vovakirdan/uncolored-squares/internal/squares"
)

const (
	cellW   = 6 // Width of one square
	cellH   = 3 // Height of one square
	gap     = 1 // Space between squares
	labelW  = 3 // Row label column
	hudRows = 2

	boardW = labelW + squares.Size*cellW + (squares.Size-1)*gap
	boardH = 1 + squares.Size*cellH + (squares.Size-1)*gap

	// MinWidth and MinHeight are the smallest screen the game can draw on.
	MinWidth  = boardW + 6
	MinHeight = hudRows + 1 + boardH + 2
)

var hueColors = map[squares.Color]core.Color{
	squares.Red:     core.ColorRed,
	squares.Green:   core.ColorGreen,
	squares.Blue:    core.ColorBlue,
	squares.Yellow:  core.ColorYellow,
	squares.Magenta: core.ColorMagenta,
}

// cellStyle returns the glyph and color of a square as the player sees it.
func cellStyle(c squares.Color) (rune, core.Color) {
	switch {
	case c == squares.White:
		return '█', core.ColorBrightWhite
	case c.IsHue():
		return '█', hueColors[c]
	default:
		return '░', core.ColorDark
	}
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	screen := dst.Bounds()
	if screen.W < MinWidth || screen.H < MinHeight {
		renderTooSmall(dst)
		return
	}

	board := core.NewRect((screen.W-boardW)/2, hudRows+1, boardW, boardH)

	g.renderHUD(dst, screen)
	g.renderBoard(dst, board)

	if g.messageLeft > 0 {
		dst.DrawTextCentered(board.Bottom()+1, g.message, core.ColorCyan)
	}

	g.renderOverlay(dst, board)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, screen core.Rect) {
	dst.DrawTextColor(1, 0, g.Title(), core.ColorBrightWhite)
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColor(screen.Right()-len(score)-1, 0, score, core.ColorYellow)

	status := fmt.Sprintf("Module #%d  Stage %d  Strikes %d/%d",
		g.moduleID, g.ctrl.Stage(), g.strikes(), g.cfg.Rules.MaxStrikes)
	if g.mode == ModeEndless {
		status += fmt.Sprintf("  Solved %d", g.solved)
	}
	dst.DrawTextColor(1, 1, status, core.ColorGray)

	if limit := g.cfg.Rules.TimeLimit.Std(); limit > 0 {
		left := max(0, limit-g.elapsed()).Round(time.Second)
		timer := formatClock(left)
		c := core.ColorGray
		if left <= 30*time.Second {
			c = core.ColorRed
		}
		dst.DrawTextColor(screen.Right()-len(timer)-1, 1, timer, c)
	}
}

func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	for col := range squares.Size {
		cx := area.X + labelW + col*(cellW+gap) + cellW/2
		dst.SetColor(cx, area.Y, rune('A'+col), core.ColorGray)
	}

	board := g.view.snapshot()
	for row := range squares.Size {
		top := area.Y + 1 + row*(cellH+gap)
		dst.SetColor(area.X, top+cellH/2, rune('1'+row), core.ColorGray)

		for col := range squares.Size {
			left := area.X + labelW + col*(cellW+gap)
			index := squares.Index(col, row)
			glyph, color := cellStyle(board[index])
			dst.DrawRect(core.NewRect(left, top, cellW, cellH), glyph, color)

			if !g.gameOver && col == g.cursorCol && row == g.cursorRow {
				marker := "[" + squares.Coord(index) + "]"
				dst.DrawTextColor(left+(cellW-len(marker))/2, top+cellH/2, marker, core.ColorBrightWhite)
			}
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	var lines []string
	switch {
	case g.gameOver:
		switch g.outcome {
		case OutcomeSolved:
			lines = []string{"MODULE SOLVED"}
		case OutcomeTimeUp:
			lines = []string{"TIME'S UP"}
		default:
			lines = []string{"BOOM"}
		}
		lines = append(lines, fmt.Sprintf("Score: %d", g.score), "R to play again")
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	// The box never spills past the board.
	area := board.CenterIn(core.Clamp(w+4, 0, board.W), core.Clamp(len(lines)+2, 0, board.H))
	dst.DrawRect(area, ' ', core.ColorDefault)
	dst.DrawBox(area, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextColor(area.X+(area.W-len(l))/2, area.Y+1+i, l, core.ColorBrightWhite)
	}
}
