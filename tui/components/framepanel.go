package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/tui/styles"
)

// FramePanel renders the active frame's roster, lines and notes.
func FramePanel(f *play.Frame, width int) string {
	textStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Lavender).Italic(true)
	subStyle := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)

	var offense, defense []string
	holder := "-"
	for _, p := range f.Players {
		if p.IsOffense {
			offense = append(offense, p.Label)
		} else {
			defense = append(defense, p.Label)
		}
		if p.HasBall {
			holder = p.Label
		}
	}

	var lines []string
	lines = append(lines, textStyle.Render(fmt.Sprintf(" O %s", orDash(strings.Join(offense, " ")))))
	lines = append(lines, textStyle.Render(fmt.Sprintf(" D %s", orDash(strings.Join(defense, " ")))))
	lines = append(lines, textStyle.Render(" Ball ")+styles.BallHolder.Render(" "+holder+" "))

	if len(f.Lines) > 0 {
		counts := map[play.Kind]int{}
		for _, a := range f.Lines {
			counts[a.Type]++
		}
		var parts []string
		for _, k := range play.Kinds {
			if counts[k] > 0 {
				parts = append(parts, lipgloss.NewStyle().Foreground(KindColor(k)).Render(fmt.Sprintf("%s×%d", k, counts[k])))
			}
		}
		lines = append(lines, " "+strings.Join(parts, " "))
	}

	lines = append(lines, subStyle.Render(" Notes"))
	if f.Notes == "" {
		lines = append(lines, dimStyle.Render(" none (e to edit)"))
	} else {
		for _, l := range wrap(f.Notes, width-4) {
			lines = append(lines, textStyle.Render(" "+l))
		}
	}

	return RenderInfoBox(fmt.Sprintf("Frame #%d", f.ID), lines, width)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// wrap breaks text into lines of at most width cells on word boundaries.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case lipgloss.Width(line)+1+lipgloss.Width(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return out
}
