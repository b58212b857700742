package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestComputeColumnWidths(t *testing.T) {
	court, side, show := ComputeColumnWidths(80)
	assert.False(t, show)
	assert.Equal(t, 80, court)
	assert.Equal(t, 0, side)

	court, side, show = ComputeColumnWidths(120)
	assert.True(t, show)
	assert.Equal(t, SideMinWidth, side)
	assert.Equal(t, 120-SideMinWidth-1, court)

	court, side, show = ComputeColumnWidths(200)
	assert.True(t, show)
	assert.Equal(t, SideMinWidth+10, side)
	assert.Equal(t, 200, court+side+1)
}

func TestJoinColumns(t *testing.T) {
	out := JoinColumns([]string{"a\nb\nc", "x"}, []int{4, 3}, 2)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 8, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "a")
	assert.Contains(t, lines[0], "x")
	assert.Contains(t, lines[1], "b")
	assert.NotContains(t, out, "c")
}
