package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHelpOverlayListsEveryToolKey(t *testing.T) {
	out := HelpOverlay(120, 50)
	for _, b := range ToolButtons {
		if b.Key == "s" || b.Key == "d" || b.Key == "b" {
			assert.Contains(t, out, b.Key)
		}
	}
	assert.Contains(t, out, "c r p n t m")
	assert.Contains(t, out, "undo/redo")
	assert.Contains(t, out, "Not available")
}

func TestRenderInfoBox(t *testing.T) {
	out := RenderInfoBox("Notes", []string{"short", strings.Repeat("x", 50)}, 20)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "Notes")
	assert.Empty(t, RenderInfoBox("x", nil, 3))
}
