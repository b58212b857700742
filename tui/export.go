package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/playsketch-cli/pkg/export"
	"github.com/user/playsketch-cli/play"
)

// exportProgressMsg carries progress updates from the export goroutine.
type exportProgressMsg struct {
	current int
	total   int
}

// exportCompleteMsg is sent when export finishes successfully.
type exportCompleteMsg struct {
	path string
}

// exportErrorMsg is sent when export encounters an error.
type exportErrorMsg struct {
	err error
}

// waitForExportMsg returns a tea.Cmd that waits for the next message on the channel.
func waitForExportMsg(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// startExportGoroutine renders snapshot to path in a background goroutine.
// snapshot must not be shared with the editor. Progress messages are sent to
// the returned channel, which is closed after the final complete or error message.
func startExportGoroutine(ctx context.Context, snapshot *play.Play, format export.Format, path string, opts export.Options) <-chan tea.Msg {
	total := snapshot.Len()
	// progress may arrive from several render goroutines; the buffer keeps
	// them from blocking on a slow UI
	ch := make(chan tea.Msg, total+2)

	go func() {
		defer close(ch)

		ch <- exportProgressMsg{current: 0, total: total}
		err := export.File(ctx, snapshot, format, path, opts, func(done, total int) {
			ch <- exportProgressMsg{current: done, total: total}
		})
		if err != nil {
			ch <- exportErrorMsg{err}
			return
		}
		ch <- exportCompleteMsg{path: path}
	}()

	return ch
}
