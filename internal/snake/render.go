package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Each tile is drawn two terminal columns wide so the board looks square.
const (
	tileCols  = 2
	hudHeight = 1
)

// MinScreen returns the smallest screen the board fits on.
func (g *Game) MinScreen() (w, h int) {
	return g.cols*tileCols + 2, g.rows + 2 + hudHeight
}

// Render draws the HUD, the board and, after game over, the high-score overlay.
// dst is cleared first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boxW, boxH := g.MinScreen()
	boxH -= hudHeight
	offX := max((dst.Width()-boxW)/2, 0)
	box := core.NewRect(offX, hudHeight, boxW, boxH)

	g.renderHUD(dst, offX)
	dst.DrawBox(box, core.ColorGray)

	// Empty tiles carry a faint dot so the grid stays visible.
	for y := range g.rows {
		for x := range g.cols {
			g.drawTile(dst, box, core.Point{X: x, Y: y}, '·', ' ', core.ColorDarkGray)
		}
	}
	if g.insideBoard(g.food) {
		g.drawTile(dst, box, g.food, '█', '█', core.ColorRed)
	}
	for _, o := range g.obstacles {
		g.drawTile(dst, box, o, '▒', '▒', core.ColorGray)
	}
	for _, seg := range g.body {
		g.drawTile(dst, box, seg, '▓', '▓', core.ColorGreen)
	}
	if g.insideBoard(g.head) {
		g.drawTile(dst, box, g.head, '█', '█', core.ColorBrightGreen)
	}

	if g.gameOver {
		g.renderGameOver(dst, box)
	}
}

func (g *Game) drawTile(dst *core.Screen, box core.Rect, p core.Point, left, right rune, c core.Color) {
	sx := box.X + 1 + p.X*tileCols
	sy := box.Y + 1 + p.Y
	dst.SetColor(sx, sy, left, c)
	dst.SetColor(sx+1, sy, right, c)
}

func (g *Game) renderHUD(dst *core.Screen, x int) {
	score, c := fmt.Sprintf("Score: %d", len(g.body)), core.ColorWhite
	if g.gameOver {
		score, c = fmt.Sprintf("Game Over: %d", len(g.body)), core.ColorBrightRed
	}
	dst.DrawText(x, 0, score, c)
	dst.DrawText(x+len(score)+3, 0, fmt.Sprintf("Best: %d", g.best), core.ColorYellow)
}

// renderGameOver draws a centered panel with the final score and the high-score table.
func (g *Game) renderGameOver(dst *core.Screen, box core.Rect) {
	lines := []string{fmt.Sprintf("Game Over: %d", len(g.body)), "", "High Scores:"}
	for i, s := range g.topScores {
		lines = append(lines, fmt.Sprintf("%d: %d", i+1, s))
	}
	if len(g.topScores) == 0 {
		lines = append(lines, "(none yet)")
	}
	lines = append(lines, "", "press any key to restart")

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	panel := core.NewRect(0, 0, width+4, len(lines)+2)
	panel.X = box.X + (box.W-panel.W)/2
	panel.Y = box.Y + (box.H-panel.H)/2

	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawText(panel.X+2, panel.Y+1+i, l, c)
	}
}
