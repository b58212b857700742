package editor

import (
	"fmt"
	"strings"

	"github.com/user/playsketch-cli/play"
)

// Mode is the interaction state of the editor.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Drawing
	ConfirmDelete
	Playing
	Exporting
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "IDLE"
	case Dragging:
		return "DRAG"
	case Drawing:
		return "DRAW"
	case ConfirmDelete:
		return "DELETE?"
	case Playing:
		return "PLAY"
	case Exporting:
		return "EXPORT"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Tool is the active toolbar tool.
type Tool string

const (
	Select  Tool = "select"
	Delete  Tool = "delete"
	Ball    Tool = "ball"
	Cut     Tool = "cut"
	Dribble Tool = "dribble"
	Pass    Tool = "pass"
	Screen  Tool = "screen"
	Shoot   Tool = "shoot"
	Move    Tool = "move"
)

// Tools lists the toolbar in display order.
var Tools = []Tool{Select, Delete, Ball, Cut, Dribble, Pass, Screen, Shoot, Move}

// ParseTool converts a tool name to a Tool.
func ParseTool(s string) (Tool, error) {
	t := Tool(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tools {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q", s)
}

// Kind returns the annotation kind a path tool draws.
func (t Tool) Kind() (play.Kind, bool) {
	switch t {
	case Cut:
		return play.Cut, true
	case Dribble:
		return play.Dribble, true
	case Pass:
		return play.Pass, true
	case Screen:
		return play.Screen, true
	case Shoot:
		return play.Shoot, true
	case Move:
		return play.Move, true
	}
	return "", false
}

// IsPath reports whether the tool draws annotations.
func (t Tool) IsPath() bool {
	_, ok := t.Kind()
	return ok
}

// Button identifies the pointer button of a press.
type Button int

const (
	// Primary places, grabs, starts and commits.
	Primary Button = iota
	// Secondary appends a waypoint while drawing.
	Secondary
)
