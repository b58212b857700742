package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/editor"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/tui/styles"
)

// ToolButton binds a key to an editor tool.
type ToolButton struct {
	Key  string
	Tool editor.Tool
}

// ToolButtons lists the toolbar in display order.
var ToolButtons = []ToolButton{
	{"s", editor.Select},
	{"d", editor.Delete},
	{"b", editor.Ball},
	{"c", editor.Cut},
	{"r", editor.Dribble},
	{"p", editor.Pass},
	{"n", editor.Screen},
	{"t", editor.Shoot},
	{"m", editor.Move},
}

// span is a clickable stretch of a row, in cells.
type span struct {
	start, end int
	text       string
}

// layoutSpans places items left to right after a prefix, separated by gap cells.
func layoutSpans(prefix string, items []string, gap int) []span {
	spans := make([]span, 0, len(items))
	x := lipgloss.Width(prefix)
	for _, it := range items {
		w := lipgloss.Width(it)
		spans = append(spans, span{start: x, end: x + w, text: it})
		x += w + gap
	}
	return spans
}

const toolbarPrefix = " Tools "

func toolbarSpans() []span {
	items := make([]string, len(ToolButtons))
	for i, b := range ToolButtons {
		items[i] = "[" + b.Key + "] " + string(b.Tool)
	}
	return layoutSpans(toolbarPrefix, items, 1)
}

// Toolbar renders the tool row. The active tool is highlighted; locked dims
// every tool while playback or an export owns the play.
func Toolbar(active editor.Tool, locked bool, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	toolStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)
	if locked {
		toolStyle = lipgloss.NewStyle().Foreground(styles.Purple)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(toolbarPrefix))
	for i, s := range toolbarSpans() {
		if i > 0 {
			b.WriteString(" ")
		}
		if ToolButtons[i].Tool == active && !locked {
			b.WriteString(styles.Highlight.Render(s.text))
		} else {
			b.WriteString(toolStyle.Render(s.text))
		}
	}

	// undo/redo are not supported
	b.WriteString("  " + styles.Disabled.Render("undo") + " " + styles.Disabled.Render("redo"))

	return lipgloss.NewStyle().Background(styles.DeepPurple).Width(width).Render(b.String())
}

// ToolAt returns the tool under toolbar column x.
func ToolAt(x int) (editor.Tool, bool) {
	for i, s := range toolbarSpans() {
		if x >= s.start && x < s.end {
			return ToolButtons[i].Tool, true
		}
	}
	return "", false
}

const palettePrefix = " Players "

// PaletteLabels lists the palette tokens in display order.
var PaletteLabels = append(append([]string{}, play.OffenseLabels...), play.DefenseLabels...)

func paletteSpans() []span {
	items := make([]string, len(PaletteLabels))
	for i, l := range PaletteLabels {
		items[i] = "(" + l + ")"
	}
	return layoutSpans(palettePrefix, items, 1)
}

// Palette renders the row of player tokens that can be dragged onto the court.
// The token being carried is highlighted.
func Palette(carrying string, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(styles.Lavender).Italic(true)

	var b strings.Builder
	b.WriteString(labelStyle.Render(palettePrefix))
	for i, s := range paletteSpans() {
		if i > 0 {
			b.WriteString(" ")
		}
		label := PaletteLabels[i]
		switch {
		case label == carrying:
			b.WriteString(styles.Highlight.Render(s.text))
		case play.IsOffenseLabel(label):
			b.WriteString(styles.Offense.Render(s.text))
		default:
			b.WriteString(styles.Defense.Render(s.text))
		}
	}
	b.WriteString("  " + hintStyle.Render("drag onto the court"))

	return lipgloss.NewStyle().Background(styles.DeepPurple).Width(width).Render(b.String())
}

// PaletteTokenAt returns the palette token under palette column x.
func PaletteTokenAt(x int) (string, bool) {
	for i, s := range paletteSpans() {
		if x >= s.start && x < s.end {
			return PaletteLabels[i], true
		}
	}
	return "", false
}
