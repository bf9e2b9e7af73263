package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorCardBack: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCardFace: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorMatched:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorCursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorTimer:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// Shared styles for the form and modal screens.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 3)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("9")).
			Foreground(lipgloss.Color("9")).
			Padding(1, 3)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

// renderAlert draws a blocking message centred in the view.
func renderAlert(msg string, width, height int) string {
	box := alertStyle.Render(msg + "\n\n" + mutedStyle.Render("press any key"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderModal centres a bordered panel in the view.
func renderModal(body string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modalStyle.Render(body))
}
