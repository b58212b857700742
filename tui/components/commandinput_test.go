package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeString(s *CommandInputState, text string) {
	for _, r := range text {
		s.InsertChar(r)
	}
}

func TestCommandInputEditing(t *testing.T) {
	var s CommandInputState
	s.SetResult("old", true)
	s.Open()
	assert.True(t, s.Active)
	assert.Empty(t, s.Result)

	typeString(&s, "nme")
	s.MoveCursorLeft()
	s.MoveCursorLeft()
	s.InsertChar('a')
	assert.Equal(t, "name", string(s.Input))
	assert.Equal(t, 2, s.CursorPos)

	s.Backspace()
	assert.Equal(t, "nme", string(s.Input))
	s.Delete()
	assert.Equal(t, "ne", string(s.Input))

	s.MoveCursorRight()
	s.MoveCursorRight()
	s.MoveCursorRight()
	assert.Equal(t, 2, s.CursorPos)

	assert.Equal(t, "ne", s.GetCommand())
	assert.False(t, s.Active)
	assert.Empty(t, s.Input)
}

func TestCommandInputRunes(t *testing.T) {
	var s CommandInputState
	s.Open()
	typeString(&s, "name Café ñ")
	s.Backspace()
	s.Backspace()
	assert.Equal(t, "name Café", s.GetCommand())
}

func TestCommandInputBoundaries(t *testing.T) {
	var s CommandInputState
	s.Open()
	s.Backspace()
	s.Delete()
	s.MoveCursorLeft()
	assert.Equal(t, 0, s.CursorPos)
	assert.Empty(t, s.Input)
}

func TestCommandInputView(t *testing.T) {
	var s CommandInputState
	assert.Contains(t, CommandInput(s, 60), "? for help")

	s.SetResult("Written horns.json", false)
	assert.Contains(t, CommandInput(s, 60), "Written horns.json")

	s.Open()
	typeString(&s, "w")
	assert.Contains(t, CommandInput(s, 60), "w_")
}
