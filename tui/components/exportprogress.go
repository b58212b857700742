package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/playsketch-cli/tui/styles"
)

// ExportProgressState holds the state for the export progress display.
type ExportProgressState struct {
	Active bool
	// Format is the export format name
	Format    string
	Total     int
	Completed int
	// Path is the output file
	Path string
	// Done is set once the file is written
	Done bool
	// Err is the failure, if any
	Err error
}

// ExportProgress renders a bordered info box showing export progress.
// It displays a progress bar, percentage, frame counter and the output file.
func ExportProgress(state ExportProgressState, width int) string {
	if !state.Active || width < 10 {
		return ""
	}

	greenStyle := lipgloss.NewStyle().Foreground(styles.Green)
	amberStyle := lipgloss.NewStyle().Foreground(styles.Amber)
	redStyle := lipgloss.NewStyle().Foreground(styles.Red)
	textStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)

	innerW := max(width-4, 6)

	var pct int
	if state.Total > 0 {
		pct = state.Completed * 100 / state.Total
	}

	// Bar width: innerW minus " XXX%" label minus 1 space padding
	barWidth := max(innerW-6, 4)
	filled := 0
	if state.Total > 0 {
		filled = min(barWidth*state.Completed/state.Total, barWidth)
	}

	bar := greenStyle.Render(strings.Repeat("█", filled)) + amberStyle.Render(strings.Repeat("░", barWidth-filled))
	contentLines := []string{" " + bar + textStyle.Render(fmt.Sprintf(" %3d%%", pct))}
	contentLines = append(contentLines, textStyle.Render(fmt.Sprintf(" %d/%d frames", state.Completed, state.Total)))

	switch {
	case state.Err != nil:
		contentLines = append(contentLines, " "+redStyle.Render("Export failed"))
	case state.Done:
		contentLines = append(contentLines, " "+greenStyle.Render("Export complete"))
	}
	if state.Path != "" {
		path := state.Path
		if lipgloss.Width(path) > innerW-2 {
			path = ansi.Truncate(path, innerW-2, "...")
		}
		contentLines = append(contentLines, " "+textStyle.Render(path))
	}

	return RenderInfoBox("Export "+strings.ToUpper(state.Format), contentLines, width)
}
