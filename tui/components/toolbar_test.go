package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/playsketch-cli/editor"
)

func TestToolAt(t *testing.T) {
	// " Tools " then "[s] select"
	tool, ok := ToolAt(7)
	assert.True(t, ok)
	assert.Equal(t, editor.Select, tool)

	tool, ok = ToolAt(16)
	assert.True(t, ok)
	assert.Equal(t, editor.Select, tool)

	// gap between buttons
	_, ok = ToolAt(17)
	assert.False(t, ok)

	tool, ok = ToolAt(18)
	assert.True(t, ok)
	assert.Equal(t, editor.Delete, tool)

	_, ok = ToolAt(0)
	assert.False(t, ok)
	_, ok = ToolAt(500)
	assert.False(t, ok)
}

func TestToolButtonsCoverEveryTool(t *testing.T) {
	var tools []editor.Tool
	keys := map[string]bool{}
	for _, b := range ToolButtons {
		tools = append(tools, b.Tool)
		assert.False(t, keys[b.Key], "duplicate key %q", b.Key)
		keys[b.Key] = true
	}
	assert.ElementsMatch(t, editor.Tools, tools)
}

func TestPaletteTokenAt(t *testing.T) {
	// " Players " then "(1) (2) ..."
	label, ok := PaletteTokenAt(9)
	assert.True(t, ok)
	assert.Equal(t, "1", label)

	_, ok = PaletteTokenAt(12)
	assert.False(t, ok)

	label, ok = PaletteTokenAt(13)
	assert.True(t, ok)
	assert.Equal(t, "2", label)

	_, ok = PaletteTokenAt(3)
	assert.False(t, ok)

	// defenders follow the offense
	last := paletteSpans()[len(PaletteLabels)-1]
	label, ok = PaletteTokenAt(last.start)
	assert.True(t, ok)
	assert.Equal(t, "X5", label)
}
