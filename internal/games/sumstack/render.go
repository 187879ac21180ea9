package sumstack

import (
	"fmt"
	"time"

	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
)

const (
	cellWidth = 4 // "[10]"
	hudHeight = 4

	boardW = engine.GridCols*cellWidth + 2
	boardH = engine.GridRows + 2

	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderStatus(dst, boardY+boardH)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws score, best, level, target, current sum and timers.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	s := g.snap

	dst.DrawTextCenteredColor(0, g.Title(), core.ColorBrightYellow)

	best := g.best
	if s.Score > best {
		best = s.Score
	}
	dst.DrawText(boardX, 1, fmt.Sprintf("Score %d", s.Score))
	bestStr := fmt.Sprintf("Best %d", best)
	dst.DrawText(boardX+boardW-len(bestStr), 1, bestStr)

	dst.DrawText(boardX, 2, fmt.Sprintf("Lv %d", s.Level))
	targetStr := fmt.Sprintf("Target %d", s.TargetSum)
	dst.DrawTextColor(boardX+(boardW-len(targetStr))/2, 2, targetStr, core.ColorBrightCyan)
	sumStr := fmt.Sprintf("Sum %d", s.CurrentSum)
	sumColor := core.ColorDefault
	if s.CurrentSum > 0 {
		sumColor = core.ColorGreen
	}
	dst.DrawTextColor(boardX+boardW-len(sumStr), 2, sumStr, sumColor)

	dst.DrawText(boardX, 3, fmt.Sprintf("Next row %ds", s.SecondsToNextRow))
	if s.Mode == engine.ModeTime {
		timeStr := "Time " + formatClock(s.TimeLeft)
		timeColor := core.ColorDefault
		if s.TimeLeft <= 10*time.Second {
			timeColor = core.ColorRed
		}
		dst.DrawTextColor(boardX+boardW-len(timeStr), 3, timeStr, timeColor)
	}
}

// formatClock formats a duration as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderBoard draws the grid frame, blocks, selection and cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	frameColor := core.ColorGray
	if g.flashTicks > 0 {
		frameColor = core.ColorBrightGreen
	} else if g.overflowTicks > 0 {
		frameColor = core.ColorRed
	}
	dst.DrawBoxColor(core.NewRect(boardX, boardY, boardW, boardH), frameColor)

	for row := range engine.GridRows {
		for col := range engine.GridCols {
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row

			b, ok := g.snap.BlockAt(row, col)
			switch {
			case !ok:
				dst.SetColor(x+2, y, '·', core.ColorGray)
			case g.snap.IsSelected(b.ID):
				dst.DrawTextColor(x+1, y, fmt.Sprintf("%2d", b.Value), core.ColorHighlight)
			case b.IsNew:
				dst.DrawTextColor(x+1, y, fmt.Sprintf("%2d", b.Value), core.ColorWhite)
			default:
				dst.DrawTextColor(x+1, y, fmt.Sprintf("%2d", b.Value), core.ValueColor(b.Value))
			}

			if row == g.cursorRow && col == g.cursorCol && g.inputEnabled() {
				dst.SetColor(x, y, '[', core.ColorBrightYellow)
				dst.SetColor(x+3, y, ']', core.ColorBrightYellow)
			}
		}
	}

	// Danger marker while a block sits in the top row
	for _, b := range g.snap.Blocks {
		if b.Row == 0 {
			dst.SetColor(boardX-2, boardY+1, '!', core.ColorBrightRed)
			break
		}
	}
}

// renderStatus draws the transient message line under the board.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch {
	case g.flashTicks > 0:
		dst.DrawTextCenteredColor(y, fmt.Sprintf("+%d", g.flashPoints), core.ColorBrightGreen)
	case g.overflowTicks > 0:
		dst.DrawTextCenteredColor(y, "Too much!", core.ColorRed)
	}
}

// renderOverlays draws pause, game over and level-up boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	var lines []string
	color := core.ColorDefault

	switch {
	case g.snap.GameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", g.snap.Score), "R retry  B menu"}
		color = core.ColorBrightRed
	case g.snap.Paused:
		lines = []string{"PAUSED", "P to resume"}
		color = core.ColorBrightYellow
	case g.levelUpTicks > 0:
		lines = []string{"LEVEL UP!", fmt.Sprintf("Level %d", g.levelUpLevel)}
		color = core.ColorBrightMagenta
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := board.Centered(w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, color)
	for i, l := range lines {
		dst.DrawTextColor(box.X+(box.W-len(l))/2, box.Y+1+i, l, color)
	}
}
