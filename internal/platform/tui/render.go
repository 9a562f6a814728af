package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// background is painted under every cell so the board reads as a black canvas.
var background = lipgloss.Color("0")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle().Background(background),
	core.ColorRed:         lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
