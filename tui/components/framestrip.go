package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/tui/styles"
)

// FrameStripState holds what the frame strip shows.
type FrameStripState struct {
	// Count is the number of frames in the play
	Count int
	// Cursor is the active frame index
	Cursor int
	// Playing indicates an animation is running
	Playing bool
	// Index and Progress locate the animation between frame Index and Index+1
	Index    int
	Progress float64
	// Clock is the text shown right of the bar
	Clock string
}

// frameStripBar returns the bar width for a strip of the given total width.
func frameStripBar(width int, clock string) int {
	inner := max(width-4, 10)
	return max(inner-lipgloss.Width(" "+clock)-2, 10)
}

// markerCol returns the bar column of frame i.
func markerCol(i, count, barWidth int) int {
	if count <= 1 {
		return 0
	}
	return int(math.Round(float64(barWidth-1) * float64(i) / float64(count-1)))
}

// FrameAt returns the frame under column x of a strip rendered at width, or -1.
// The bar starts two cells in: the left border and a space.
func FrameAt(state FrameStripState, x, width int) int {
	barWidth := frameStripBar(width, state.Clock)
	pos := x - 2
	if state.Count <= 0 || pos < 0 || pos >= barWidth {
		return -1
	}
	best, bestDist := -1, math.MaxInt
	for i := 0; i < state.Count; i++ {
		d := pos - markerCol(i, state.Count, barWidth)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// FrameStrip renders the frame sequence as a bar with one ◆ per frame in a
// bordered container. The ▲ indicator follows the active frame, or the
// animation while it plays.
// Total output height is 6 lines: top border + 4 content rows + bottom border.
func FrameStrip(state FrameStripState, width int) string {
	if width < 20 {
		return ""
	}

	filledStyle := lipgloss.NewStyle().Foreground(styles.BrightPurple)
	unfilledStyle := lipgloss.NewStyle().Foreground(styles.Purple)
	clockStyle := lipgloss.NewStyle().Foreground(styles.LightLavender).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(styles.Cyan)
	posStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)

	barWidth := frameStripBar(width, state.Clock)

	fillPos := markerCol(state.Cursor, state.Count, barWidth)
	if state.Playing && state.Count > 1 {
		at := (float64(state.Index) + state.Progress) / float64(state.Count-1)
		fillPos = int(math.Round(float64(barWidth-1) * math.Min(at, 1)))
	}

	markers := make([]bool, barWidth)
	for i := 0; i < state.Count; i++ {
		markers[markerCol(i, state.Count, barWidth)] = true
	}

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case markers[i] && i == fillPos:
			bar.WriteString(posStyle.Render("◆"))
		case markers[i]:
			bar.WriteString(markerStyle.Render("◆"))
		case i < fillPos:
			bar.WriteString(filledStyle.Render("━"))
		default:
			bar.WriteString(unfilledStyle.Render("─"))
		}
	}
	barLine := " " + bar.String() + " " + clockStyle.Render(state.Clock)

	var indicator strings.Builder
	indicator.WriteString(" ")
	for i := 0; i < barWidth; i++ {
		if i == fillPos {
			indicator.WriteString(posStyle.Render("▲"))
		} else {
			indicator.WriteString(" ")
		}
	}

	// frame numbers under their markers, skipped where they would collide
	numbers := []rune(strings.Repeat(" ", barWidth+1))
	next := 0
	for i := 0; i < state.Count; i++ {
		label := []rune(fmt.Sprint(i + 1))
		col := markerCol(i, state.Count, barWidth) + 1
		if col < next || col+len(label) > len(numbers) {
			continue
		}
		copy(numbers[col:], label)
		next = col + len(label) + 1
	}
	numberLine := lipgloss.NewStyle().Foreground(styles.Lavender).Render(string(numbers))

	title := fmt.Sprintf("Frames %d/%d", state.Cursor+1, state.Count)
	return RenderInfoBox(title, []string{barLine, indicator.String(), numberLine, ""}, width)
}
