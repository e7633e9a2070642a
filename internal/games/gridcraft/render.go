package gridcraft

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
)

const (
	cellWidth    = 2  // Screen columns per grid cell
	panelWidth   = 22 // HUD column
	minSlotWidth = 5  // Fits the "[n]" label
)

// Glyphs
const (
	glyphBlock   = '█'
	glyphGhost   = '▒'
	glyphBlocked = '░'
	glyphEmpty   = '·'
)

const helpLine = "←↑↓→ move  1-3/Tab pick  Enter place  P pause  Q quit"

// traySize returns the width of one tray slot and the tray height, sized
// for the largest catalog shape.
func traySize(rules engine.Rules) (slotW, height int) {
	rows, cols := 0, 0
	for _, s := range rules.Catalog {
		rows = max(rows, s.Rows())
		cols = max(cols, s.Cols())
	}
	return max(cols*cellWidth+2, minSlotWidth), rows + 1
}

// minScreenSize returns the smallest screen the layout fits in.
func minScreenSize(rules engine.Rules) (int, int) {
	slotW, trayH := traySize(rules)
	boardW := rules.GridSize*cellWidth + 2
	w := max(boardW+2+panelWidth, rules.BatchSize*slotW) + 2
	h := 2 + (rules.GridSize + 2) + 1 + trayH + 1
	return w, h
}

// layout holds the screen positions of each region.
type layout struct {
	board core.Rect
	panel core.Rect
	trayX int
	trayY int
}

func (g *Game) layout() layout {
	n := g.rules.GridSize
	slotW, _ := traySize(g.rules)
	boardW := n*cellWidth + 2
	total := max(boardW+2+panelWidth, g.rules.BatchSize*slotW)
	x := max((g.screenW-total)/2, 0)

	board := core.NewRect(x, 2, boardW, n+2)
	return layout{
		board: board,
		panel: core.NewRect(board.Right()+2, board.Y, panelWidth, board.H),
		trayX: x,
		trayY: board.Bottom() + 1,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.round == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	dst.DrawTextCentered(0, g.title, core.ColorCyan)

	g.renderBoard(dst, l.board)
	if !g.gameOver {
		g.renderGhost(dst, l.board)
	}
	g.renderPanel(dst, l.panel)
	g.renderTray(dst, l.trayX, l.trayY)
	dst.DrawTextCentered(g.screenH-1, helpLine, core.ColorGray)

	switch {
	case g.gameOver:
		g.renderGameOver(dst, l.board)
	case g.paused:
		g.renderOverlay(dst, l.board, core.ColorYellow, "PAUSED", "P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := minScreenSize(g.rules)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.ColorGray)
}

// cellOrigin returns the screen position of grid cell (x, y).
func cellOrigin(board core.Rect, x, y int) (int, int) {
	return board.X + 1 + x*cellWidth, board.Y + 1 + y
}

func drawCell(dst *core.Screen, px, py int, r rune, color core.Color) {
	for i := range cellWidth {
		dst.SetCell(px+i, py, core.Cell{Rune: r, Color: color})
	}
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, g.phaseColor(g.round.Phase()))

	n := g.rules.GridSize
	for y := range n {
		for x := range n {
			px, py := cellOrigin(board, x, y)
			if v := g.round.Cell(x, y); v != 0 {
				drawCell(dst, px, py, glyphBlock, core.BlockColor(v))
				continue
			}
			dst.SetCell(px, py, core.Cell{Rune: glyphEmpty, Color: core.ColorDim})
		}
	}
}

// renderGhost previews the selected block at the cursor: block colored
// when it fits, red when it does not.
func (g *Game) renderGhost(dst *core.Screen, board core.Rect) {
	b, ok := g.selectedBlock()
	if !ok {
		return
	}

	glyph, color := glyphGhost, core.BlockColor(b.Color)
	if !g.round.CanPlace(g.selected, g.cursorX, g.cursorY) {
		glyph, color = glyphBlocked, core.ColorRed
	}

	for r := range b.Shape.Rows() {
		for c := range b.Shape.Cols() {
			if !b.Shape.Occupied(r, c) {
				continue
			}
			px, py := cellOrigin(board, g.cursorX+c, g.cursorY+r)
			drawCell(dst, px, py, glyph, color)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	x, y := panel.X, panel.Y
	phase := g.round.Phase()

	label := func(row int, name, value string, color core.Color) {
		dst.DrawTextColor(x, y+row, name, core.ColorGray)
		dst.DrawTextColor(x+7, y+row, value, color)
	}

	label(0, "Score", humanize.Comma(int64(g.round.Score())), core.ColorWhite)
	label(1, "Best", humanize.Comma(int64(g.round.HighScore())), core.ColorGold)

	timeColor := core.ColorWhite
	if g.round.TimeRemaining() <= g.cfg.UrgentTime {
		timeColor = core.ColorRed
	}
	label(2, "Time", formatClock(g.round.TimeRemaining()), timeColor)
	label(3, "Phase", fmt.Sprintf("%d  x%.1f", phase.Number, phase.Multiplier), g.phaseColor(phase))

	if combo := g.round.Combo(); combo > 0 {
		label(4, "Combo", fmt.Sprintf("x%d", combo), core.ColorGold)
	}

	stats := g.round.Stats()
	label(6, "Lines", humanize.Comma(int64(stats.LinesCleared)), core.ColorWhite)
	label(7, "Blocks", humanize.Comma(int64(stats.Placements)), core.ColorWhite)

	if g.flash.ticks > 0 {
		dst.DrawTextColor(x, y+9, g.flash.text, g.flash.color)
	}
}

// formatClock renders remaining seconds as m:ss, rounding up so the clock
// shows 0:00 only when time is out.
func formatClock(seconds float64) string {
	s := int(math.Ceil(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func (g *Game) renderTray(dst *core.Screen, x, y int) {
	grid := g.round.Grid()
	slotW, _ := traySize(g.rules)

	for i, b := range g.round.AvailableBlocks() {
		sx := x + i*slotW

		labelColor := core.ColorGray
		text := fmt.Sprintf(" %d ", i+1)
		if i == g.selected {
			labelColor = core.ColorYellow
			text = fmt.Sprintf("[%d]", i+1)
		}
		dst.DrawTextColor(sx, y, text, labelColor)

		color := core.BlockColor(b.Color)
		if _, _, fits := engine.FirstFit(grid, b.Shape); !fits {
			color = core.ColorDim
		}
		for r := range b.Shape.Rows() {
			for c := range b.Shape.Cols() {
				if b.Shape.Occupied(r, c) {
					drawCell(dst, sx+c*cellWidth, y+1+r, glyphBlock, color)
				}
			}
		}
	}
}

func (g *Game) renderGameOver(dst *core.Screen, board core.Rect) {
	title := "NO MOVES LEFT"
	if g.round.TimeRemaining() <= 0 {
		title = "TIME UP"
	}

	lines := []string{title, "Score " + humanize.Comma(int64(g.round.Score()))}
	if s := g.round.Score(); s > 0 && s >= g.round.HighScore() {
		lines = append(lines, "NEW BEST!")
	}
	lines = append(lines, "R restart  B menu")

	g.renderOverlay(dst, board, core.ColorRed, lines...)
}

// renderOverlay draws a boxed message centered on the board.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, color core.Color, lines ...string) {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect(board.X+(board.W-w)/2, board.Y+(board.H-h)/2, w, h)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, color)

	for i, line := range lines {
		lx := box.X + (w-len([]rune(line)))/2
		dst.DrawTextColor(lx, box.Y+1+i, line, color)
	}
}
