package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/tui/styles"
)

// ModeIndicator renders the editor mode and active tool. hint is a short
// instruction for the current gesture, e.g. how to finish a drawing.
func ModeIndicator(mode, tool, hint string, width int) string {
	textStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)
	modeStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(styles.Lavender).Italic(true)

	left := " Tool: " + tool
	right := mode + " "

	innerW := width - 2
	pad := innerW - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}

	lines := []string{textStyle.Render(left) + strings.Repeat(" ", pad) + modeStyle.Render(right)}
	if hint != "" {
		lines = append(lines, hintStyle.Render(" "+hint))
	}
	return RenderInfoBox("Mode", lines, width)
}
