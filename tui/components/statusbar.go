// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/tui/styles"
)

// StatusBarState holds the play summary shown in the status bar.
type StatusBarState struct {
	// Name is the play name
	Name string
	// Court is the court variant
	Court string
	// File is the path the play was loaded from or saved to
	File string
	// Dirty indicates unsaved changes
	Dirty bool
	// Playing indicates an animation is running
	Playing bool
	// Frame is the active frame index and Frames the frame count
	Frame  int
	Frames int
	// Mode is the editor mode
	Mode string
}

// StatusBar renders the status bar component.
// The left side shows the play and its file, the right side the frame and mode.
func StatusBar(state StatusBarState, width int) string {
	icon := "✎"
	if state.Playing {
		icon = "▶"
	}

	file := state.File
	if file == "" {
		file = "unsaved"
	}
	var dirty string
	if state.Dirty {
		dirty = " ●"
	}

	leftContent := fmt.Sprintf(" %s %s (%s court) · %s%s", icon, state.Name, state.Court, file, dirty)
	rightContent := fmt.Sprintf("Frame %d/%d  %s ", state.Frame+1, state.Frames, state.Mode)

	padding := width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent)
	if padding < 1 {
		padding = 1
	}
	content := leftContent + strings.Repeat(" ", padding) + rightContent

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Foreground(styles.LightLavender).
		Bold(true).
		Width(width).
		MaxWidth(width)

	return statusBarStyle.Render(content)
}
