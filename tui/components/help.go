// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/tui/styles"
)

type helpBinding struct {
	key, desc string
}

type helpGroup struct {
	title    string
	bindings []helpBinding
}

var helpGroups = []helpGroup{
	{"Tools", []helpBinding{
		{"s", "Select: drag players"},
		{"d", "Delete a player (asks first)"},
		{"b", "Give or take the ball"},
		{"c r p n t m", "Cut, dribble, pass, screen, shoot, move"},
	}},
	{"Mouse", []helpBinding{
		{"Drag token", "Drop a player from the palette"},
		{"Left", "Grab, start a path, finish a path"},
		{"Right", "Add a waypoint while drawing"},
		{"Leave court", "Cancel the path being drawn"},
		{"Frame strip", "Jump to a frame"},
	}},
	{"Frames", []helpBinding{
		{"← →", "Previous / next frame"},
		{"Home End", "First / last frame"},
		{"a", "Add frame (players carry forward)"},
		{"x", "Delete frame"},
		{"C", "Clear frame"},
		{"e", "Edit frame notes"},
		{"Space", "Animate / stop"},
		{"N", "New play"},
	}},
	{"Commands", []helpBinding{
		{":w :e", "Write / open a play file (:e! discards)"},
		{":name :court", "Rename, switch half/full court"},
		{":goto :note", "Jump to frame n, set frame notes"},
		{":place", "Place a player: place 3 250 200"},
		{":export", "Export pdf or gif [file]"},
		{":lib", "save, open, list, rm library plays"},
		{"Esc", "Cancel command, drag or path"},
		{"q :q!", "Quit, discarding changes"},
	}},
}

// HelpOverlay renders every keybinding in a panel centred on a width x height screen.
func HelpOverlay(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Lavender).Bold(true).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)
	groupStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true).MarginTop(1)

	lines := []string{
		lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true).Padding(0, 1).Render("Keybindings"),
		"",
	}
	for _, g := range helpGroups {
		lines = append(lines, groupStyle.Render(g.title))
		for _, b := range g.bindings {
			lines = append(lines, "  "+keyStyle.Render(b.key)+descStyle.Render(b.desc))
		}
	}
	lines = append(lines,
		"  "+keyStyle.Render(styles.Disabled.Render("undo/redo"))+descStyle.Render("Not available"),
		"",
		lipgloss.NewStyle().Foreground(styles.Lavender).Italic(true).Render("Press any key to close"),
	)

	panel := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BrightPurple).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
