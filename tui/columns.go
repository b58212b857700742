package tui

import (
	"fmt"
	"strings"

	"github.com/user/playsketch-cli/editor"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/playback"
	"github.com/user/playsketch-cli/tui/components"
	"github.com/user/playsketch-cli/tui/layout"
)

// scene returns the playback scene to draw instead of the active frame.
func (m *Model) scene() (playback.Scene, bool) {
	if m.editor.Mode() != editor.Playing && !m.frozen {
		return playback.Scene{}, false
	}
	return m.editor.Scene()
}

// renderCourt draws the court box: the active frame with the drawing preview,
// or the playback scene.
func (m *Model) renderCourt(lay screen) string {
	p := m.editor.Play()
	state := components.CourtViewState{Court: p.Court, Highlight: -1}
	title := fmt.Sprintf("%s court", p.Court)

	if s, ok := m.scene(); ok {
		state.Players = s.Players
		state.Lines = s.Lines
		state.Ball = s.Ball
		title = fmt.Sprintf("Playback %d→%d", s.Index+1, min(s.Index+2, p.Len()))
	} else {
		f := p.Current()
		state.Players = f.Players
		state.Lines = f.Lines
		if a, ok := m.editor.Preview(); ok {
			state.Preview = &a
		}
		state.Highlight = m.editor.Selected()
		if m.editor.Mode() == editor.ConfirmDelete {
			pending, _ := m.editor.PendingDelete()
			for i := range f.Players {
				if f.Players[i] == pending {
					state.Highlight = i
				}
			}
		}
	}

	v := lay.view
	court := strings.Split(components.CourtView(state, v), "\n")
	inner := lay.bodyHeight - 2
	lines := make([]string, 0, inner)
	for row := lay.bodyTop + 1; row < lay.bodyTop+1+inner; row++ {
		r := row - v.Top
		if r < 0 || r >= len(court) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, strings.Repeat(" ", v.Left-1)+court[r])
	}
	return components.RenderInfoBox(title, lines, lay.courtWidth)
}

// renderSide renders the side panel: the open form, or the mode, frame and
// export boxes followed by the controls.
func (m *Model) renderSide(width, height int) string {
	if m.form != nil {
		return layout.Container{Width: width, Height: height}.Render(m.form.View())
	}

	parts := []string{
		components.ModeIndicator(m.editor.Mode().String(), string(m.editor.Tool()), m.modeHint(), width),
	}
	if s, ok := m.scene(); ok {
		parts = append(parts, components.FramePanel(&play.Frame{
			ID:      m.editor.Play().Frames[min(s.Index, m.editor.Play().Len()-1)].ID,
			Notes:   s.Notes,
			Players: s.Players,
			Lines:   s.Lines,
		}, width))
	} else {
		parts = append(parts, components.FramePanel(m.editor.Play().Current(), width))
	}
	if m.exportProgress.Active {
		parts = append(parts, components.ExportProgress(m.exportProgress, width))
	}
	for _, g := range components.GetControlGroups() {
		parts = append(parts, components.RenderControlBox(g, width))
	}
	return layout.Container{Width: width, Height: height}.Render(strings.Join(parts, "\n"))
}

// modeHint explains how to finish the current gesture.
func (m *Model) modeHint() string {
	if m.carrying != "" {
		return "release on the court to place " + m.carrying
	}
	switch m.editor.Mode() {
	case editor.Drawing:
		return "right: waypoint, left: finish"
	case editor.Dragging:
		return "release to drop"
	case editor.ConfirmDelete:
		return "confirm the delete"
	case editor.Playing:
		return "Space to stop"
	case editor.Exporting:
		return "export running"
	}
	if m.frozen {
		return "stopped, any key to edit"
	}
	return ""
}
