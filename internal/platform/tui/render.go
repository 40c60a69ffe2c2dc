package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return styles
}()

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one style; blank runs are written unstyled,
// which keeps the mostly empty braille playfield cheap to redraw.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*3 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			blank := first.Rune == ' '

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if (cell.Rune == ' ') != blank || (!blank && cell.Color != first.Color) {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first.Color).Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor returns the style for a color, falling back to the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// renderStatus draws the one-line status bar under the playfield.
func renderStatus(st core.GameState, asteroidsLeft, width int) string {
	text := fmt.Sprintf("Score %d  Asteroids %d  Tick %d", st.Score, asteroidsLeft, st.Tick)
	bar := statusStyle.Render(text)
	if st.Paused {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, pausedStyle.Render("PAUSED"))
	}
	if width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}
