package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/tui/styles"
)

// CommandInputState holds the state for the command input component.
// The buffer is kept as runes so notes and names may hold any text.
type CommandInputState struct {
	// Active indicates if command mode is active
	Active bool
	// Input is the current command input buffer
	Input []rune
	// CursorPos is the cursor position within the input, in runes
	CursorPos int
	// Result is the result message to display (success or error)
	Result string
	// IsError indicates if the result is an error message
	IsError bool
}

// CommandInput renders the command input component.
// When active, it shows a ':' prompt with the current input.
// When not active but there's a result, it shows the result message.
// Otherwise, it shows a help hint.
func CommandInput(state CommandInputState, width int) string {
	lineStyle := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Width(width).
		MaxWidth(width)

	if state.Active {
		promptStyle := lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)
		inputStyle := lipgloss.NewStyle().
			Foreground(styles.LightLavender)

		pos := min(state.CursorPos, len(state.Input))
		display := string(state.Input[:pos]) + "_" + string(state.Input[pos:])
		return lineStyle.Render(promptStyle.Render(":") + inputStyle.Render(display))
	}

	if state.Result != "" {
		resultStyle := lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)
		if state.IsError {
			resultStyle = resultStyle.Foreground(styles.Pink)
		}
		return lineStyle.Render(" " + resultStyle.Render(state.Result))
	}

	hintStyle := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Italic(true)
	return lineStyle.Render(" " + hintStyle.Render("? for help, : for commands"))
}

// Open activates command mode with an empty buffer.
func (s *CommandInputState) Open() {
	s.Active = true
	s.Input = nil
	s.CursorPos = 0
	s.ClearResult()
}

// InsertChar inserts a character at the current cursor position.
func (s *CommandInputState) InsertChar(c rune) {
	s.Input = append(s.Input[:s.CursorPos], append([]rune{c}, s.Input[s.CursorPos:]...)...)
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *CommandInputState) Backspace() {
	if s.CursorPos == 0 {
		return
	}
	s.Input = append(s.Input[:s.CursorPos-1], s.Input[s.CursorPos:]...)
	s.CursorPos--
}

// Delete deletes the character at the cursor.
func (s *CommandInputState) Delete() {
	if s.CursorPos < len(s.Input) {
		s.Input = append(s.Input[:s.CursorPos], s.Input[s.CursorPos+1:]...)
	}
}

// MoveCursorLeft moves the cursor left.
func (s *CommandInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *CommandInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// Clear clears the input buffer and deactivates command mode.
func (s *CommandInputState) Clear() {
	s.Input = nil
	s.CursorPos = 0
	s.Active = false
}

// GetCommand returns the current command and clears the input.
func (s *CommandInputState) GetCommand() string {
	cmd := string(s.Input)
	s.Clear()
	return cmd
}

// SetResult sets the result message.
func (s *CommandInputState) SetResult(msg string, isError bool) {
	s.Result = msg
	s.IsError = isError
}

// ClearResult clears the result message.
func (s *CommandInputState) ClearResult() {
	s.Result = ""
	s.IsError = false
}
