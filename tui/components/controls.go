// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/playsketch-cli/tui/styles"
)

// Control represents a single control with its display info.
type Control struct {
	Name     string
	Shortcut string
}

// ControlGroup represents a group of related controls with sub-group support.
// SubGroups allows the renderer to place horizontal dividers between sub-groups.
type ControlGroup struct {
	Name      string
	SubGroups [][]Control
}

// GetControlGroups returns the control groups for display.
func GetControlGroups() []ControlGroup {
	return []ControlGroup{
		{
			Name: "Frames",
			SubGroups: [][]Control{
				{
					{Name: "Prev", Shortcut: "←"},
					{Name: "Next", Shortcut: "→"},
				},
				{
					{Name: "Add", Shortcut: "a"},
					{Name: "Delete", Shortcut: "x"},
					{Name: "Clear", Shortcut: "C"},
					{Name: "Notes", Shortcut: "e"},
				},
				{
					{Name: "Animate", Shortcut: "Space"},
				},
			},
		},
		{
			Name: "Play",
			SubGroups: [][]Control{
				{
					{Name: "New", Shortcut: "N"},
					{Name: "Command", Shortcut: ":"},
					{Name: "Help", Shortcut: "?"},
					{Name: "Quit", Shortcut: "Ctrl+C"},
				},
			},
		},
	}
}

// RenderInfoBox renders a generic bordered box with a tab-style header and content lines.
// Content lines are rendered as-is (caller handles styling) and truncated to fit.
func RenderInfoBox(title string, contentLines []string, width int) string {
	if width < 4 {
		return ""
	}

	innerWidth := width - 2

	headerStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	// Tab header: ╭─ Title ─────╮
	headerText := headerStyle.Render(" " + title + " ")
	if lipgloss.Width(headerText) > innerWidth-1 {
		headerText = ansi.Truncate(headerText, innerWidth-1, "")
	}
	fillWidth := innerWidth - 1 - lipgloss.Width(headerText)
	if fillWidth < 0 {
		fillWidth = 0
	}
	lines := []string{borderStyle.Render("╭─") + headerText + borderStyle.Render(strings.Repeat("─", fillWidth)+"╮")}

	for _, line := range contentLines {
		if lipgloss.Width(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "")
		}
		pad := innerWidth - lipgloss.Width(line)
		lines = append(lines, borderStyle.Render("│")+line+strings.Repeat(" ", pad)+borderStyle.Render("│"))
	}

	// Bottom border: ╰──────────────╯
	lines = append(lines, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(lines, "\n")
}

// RenderControlBox renders a control group inside a bordered box with tab header
// and horizontal dividers between sub-groups.
//
//	 ┌────────┐
//	┌┤ Frames ├┐
//	│└────────┘└──────────────┐
//	│ Prev    [ ← ]           │
//	├─────────────────────────┤
//	│ Add     [ a ]           │
//	└─────────────────────────┘
func RenderControlBox(group ControlGroup, width int) string {
	if width < 6 {
		return ""
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Purple)
	headerStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)
	shortcutStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)

	innerW := width - 2
	tabLabel := " " + group.Name + " "
	tabW := lipgloss.Width(tabLabel)

	remainW := innerW - tabW - 3
	if remainW < 0 {
		remainW = 0
	}
	lines := []string{
		" " + borderStyle.Render("┌"+strings.Repeat("─", tabW)+"┐"),
		borderStyle.Render("┌┤") + headerStyle.Render(tabLabel) + borderStyle.Render("├┐"),
		borderStyle.Render("│└" + strings.Repeat("─", tabW) + "┘└" + strings.Repeat("─", remainW) + "┐"),
	}

	maxNameW := 0
	for _, sg := range group.SubGroups {
		for _, c := range sg {
			maxNameW = max(maxNameW, len(c.Name))
		}
	}

	for si, subGroup := range group.SubGroups {
		for _, c := range subGroup {
			content := nameStyle.Render(fmt.Sprintf("%-*s", maxNameW, c.Name)) + "  " +
				shortcutStyle.Render("[ "+c.Shortcut+" ]")
			pad := innerW - 2 - lipgloss.Width(content)
			if pad < 0 {
				pad = 0
			}
			row := borderStyle.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + borderStyle.Render("│")
			if lipgloss.Width(row) > width {
				row = ansi.Truncate(row, width, "")
			}
			lines = append(lines, row)
		}
		if si < len(group.SubGroups)-1 {
			lines = append(lines, borderStyle.Render("├"+strings.Repeat("─", innerW)+"┤"))
		}
	}

	lines = append(lines, borderStyle.Render("└"+strings.Repeat("─", innerW)+"┘"))
	return strings.Join(lines, "\n")
}
