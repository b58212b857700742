package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/playsketch-cli/tui/styles"
)

// FitWidth cuts or space-pads s to exactly width terminal cells. Cutting is
// ANSI and grapheme aware, so styled court glyphs and wide runes survive.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// FitLines returns exactly height lines, dropping the tail or adding blanks.
func FitLines(lines []string, height int) []string {
	height = max(height, 0)
	out := make([]string, height)
	copy(out, lines)
	return out
}

// Container is a fixed Width x Height box for panels and forms.
type Container struct {
	Width  int
	Height int
}

// Render fits content into the box. When lines are cut off the last row
// says how many are hidden.
func (c Container) Render(content string) string {
	if c.Height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	hidden := len(lines) - c.Height
	lines = FitLines(lines, c.Height)
	if hidden > 0 {
		more := fmt.Sprintf("↓ %d more", hidden+1)
		lines[c.Height-1] = lipgloss.NewStyle().Foreground(styles.Purple).Render(more)
	}
	for i := range lines {
		lines[i] = FitWidth(lines[i], c.Width)
	}
	return strings.Join(lines, "\n")
}
