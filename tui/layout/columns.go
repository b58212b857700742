package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/tui/styles"
)

// Responsive layout constants.
const (
	MinTerminalWidth  = 80 // minimum terminal width for the editor
	MinTerminalHeight = 20 // minimum terminal height for the editor
	SideHideThreshold = 100 // below this width, the side panel is hidden
	SideMinWidth      = 30  // side panel width up to WideThreshold
	WideThreshold     = 160 // above this width, the side panel grows
)

// ComputeColumnWidths splits the terminal between the court and the side panel.
// The court keeps everything the side panel does not need; below
// SideHideThreshold the court takes the whole width.
func ComputeColumnWidths(termWidth int) (court, side int, showSide bool) {
	showSide = termWidth >= SideHideThreshold
	if !showSide {
		return termWidth, 0, false
	}

	side = SideMinWidth
	if termWidth > WideThreshold {
		side = SideMinWidth + (termWidth-WideThreshold)/4
	}
	// 1 border character between the columns
	court = termWidth - side - 1
	return court, side, true
}

// JoinColumns joins pre-rendered column strings side by side with purple border separators.
// Each column is normalized to the given height and padded to its width.
func JoinColumns(columns []string, widths []int, height int) string {
	borderStr := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render("│")

	colLines := make([][]string, len(columns))
	for i, col := range columns {
		colLines[i] = FitLines(strings.Split(col, "\n"), height)
	}

	rows := make([]string, height)
	for row := range rows {
		parts := make([]string, len(colLines))
		for i, lines := range colLines {
			parts[i] = FitWidth(lines[row], widths[i])
		}
		rows[row] = strings.Join(parts, borderStr)
	}

	return strings.Join(rows, "\n")
}
