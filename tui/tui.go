package tui

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/user/playsketch-cli/config"
	"github.com/user/playsketch-cli/db"
	"github.com/user/playsketch-cli/editor"
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/pkg/export"
	"github.com/user/playsketch-cli/pkg/timeutil"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/tui/components"
	"github.com/user/playsketch-cli/tui/forms"
	"github.com/user/playsketch-cli/tui/layout"
	"github.com/user/playsketch-cli/tui/styles"
)

const (
	// resultDisplayDuration is how long to show command results.
	resultDisplayDuration = 3 * time.Second
	// frameStripHeight is the height of the frame strip box.
	frameStripHeight = 6
	// chromeHeight is every row that is not the body: status bar, toolbar,
	// palette, frame strip and command input.
	chromeHeight = 3 + frameStripHeight + 1
)

// playTickMsg drives playback. Ticks from an earlier playback carry a stale
// generation and are ignored.
type playTickMsg struct {
	gen int
	at  time.Time
}

// clearResultMsg is sent to clear the command result message.
type clearResultMsg struct{}

// hideExportMsg is sent to hide the export box after an export finished.
type hideExportMsg struct{}

// formKind identifies the open form.
type formKind int

const (
	formNone formKind = iota
	formDelete
	formNotes
	formNewPlay
)

// Model is the Bubbletea model for the TUI application.
// It implements the tea.Model interface with Init, Update, and View methods.
type Model struct {
	// editor owns the play being edited
	editor *editor.Editor
	// database connection for the play library; nil when unavailable
	db *sql.DB
	// resolved configuration
	cfg *config.Config
	// logger writes to the log file, never to the terminal
	log zerolog.Logger
	// path is the file the play was loaded from or last written to
	path string
	// quitting flag to signal shutdown
	quitting bool
	// quitArmed is set after q was pressed with unsaved changes
	quitArmed bool
	// terminal width
	width int
	// terminal height
	height int
	// command input state
	commandInput components.CommandInputState
	// showHelp indicates if the help overlay is visible
	showHelp bool
	// playGen is bumped on every start and stop of playback
	playGen int
	// lastTick is the time of the previous playback tick
	lastTick time.Time
	// frozen shows the stopped playback scene until the next action
	frozen bool
	// carrying is the palette token being dragged onto the court
	carrying string
	// export state
	exportCh       <-chan tea.Msg
	exportProgress components.ExportProgressState
	cancelExport   context.CancelFunc
	// open huh form and the values bound to it
	form          *huh.Form
	formKind      formKind
	confirmDelete bool
	notesText     string
	newPlay       forms.NewPlayResult
}

// NewModel creates a new TUI model editing ed. path is the file ed's play
// came from, if any.
func NewModel(ed *editor.Editor, database *sql.DB, cfg *config.Config, log zerolog.Logger, path string) *Model {
	return &Model{
		editor: ed,
		db:     database,
		cfg:    cfg,
		log:    log,
		path:   path,
	}
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return nil
}

// playTickCmd schedules the next playback tick.
func playTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return playTickMsg{gen: gen, at: t}
	})
}

// flash shows msg in the result line and schedules clearing it.
func (m *Model) flash(msg string, isError bool) tea.Cmd {
	m.commandInput.SetResult(msg, isError)
	return tea.Tick(resultDisplayDuration, func(t time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// report shows err, or ok when err is nil and ok is not empty.
func (m *Model) report(err error, ok string) tea.Cmd {
	if err != nil {
		m.log.Debug().Err(err).Str("mode", m.editor.Mode().String()).Msg("action rejected")
		return m.flash("Error: "+err.Error(), true)
	}
	if ok == "" {
		return nil
	}
	return m.flash(ok, false)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case playTickMsg:
		return m.handlePlayTick(msg)

	case clearResultMsg:
		m.commandInput.ClearResult()
		return m, nil

	case exportProgressMsg:
		m.exportProgress.Completed = msg.current
		m.exportProgress.Total = msg.total
		return m, waitForExportMsg(m.exportCh)

	case exportCompleteMsg:
		m.finishExport()
		m.exportProgress.Done = true
		m.exportProgress.Completed = m.exportProgress.Total
		m.log.Info().Str("path", msg.path).Str("format", m.exportProgress.Format).Msg("export complete")
		return m, tea.Batch(
			m.flash("Exported to "+msg.path, false),
			tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg { return hideExportMsg{} }),
		)

	case exportErrorMsg:
		m.finishExport()
		m.exportProgress.Err = msg.err
		m.log.Error().Err(msg.err).Str("path", m.exportProgress.Path).Msg("export failed")
		return m, m.flash("Error: "+msg.err.Error(), true)

	case hideExportMsg:
		if m.editor.Mode() != editor.Exporting {
			m.exportProgress = components.ExportProgressState{}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		// Handle help overlay - any key dismisses it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.commandInput.Active {
			return m.handleCommandInput(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.form != nil || m.showHelp || m.commandInput.Active {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// handleKey handles key events in normal mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.quitArmed = false
	}
	if key != " " {
		m.frozen = false
	}

	for _, b := range components.ToolButtons {
		if key == b.Key {
			return m, m.report(m.editor.SelectTool(b.Tool), "")
		}
	}

	switch key {
	case "?":
		m.showHelp = true
		return m, nil
	case "q":
		if m.editor.Dirty() && !m.quitArmed {
			m.quitArmed = true
			return m, m.flash("Unsaved changes: press q again to quit, or :w to save", true)
		}
		return m.quit()
	case ":":
		m.commandInput.Open()
		return m, nil
	case "esc":
		m.carrying = ""
		m.editor.PointerLeave()
		m.editor.CancelDelete()
		return m, nil
	case " ":
		return m.togglePlayback()
	case "left":
		return m, m.report(m.editor.PrevFrame(), "")
	case "right":
		return m, m.report(m.editor.NextFrame(), "")
	case "home":
		return m, m.report(m.editor.SwitchFrame(0), "")
	case "end":
		return m, m.report(m.editor.SwitchFrame(m.editor.Play().Len()-1), "")
	case "a":
		err := m.editor.AddFrame()
		return m, m.report(err, fmt.Sprintf("Added frame %d", m.editor.Play().Cursor()+1))
	case "x":
		n := m.editor.Play().Cursor() + 1
		return m, m.report(m.editor.DeleteFrame(), fmt.Sprintf("Deleted frame %d", n))
	case "C":
		return m, m.report(m.editor.ClearFrame(), "Frame cleared")
	case "e":
		return m.openNotesForm()
	case "N":
		return m.openNewPlayForm()
	case "u", "ctrl+z", "ctrl+y", "ctrl+r":
		return m, m.flash("Undo/redo is not available", true)
	}
	return m, nil
}

// handleMouse maps mouse events on the court to editor pointer events and
// handles the toolbar, palette and frame strip.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lay := m.layout()
	v := lay.view
	onCourt := v.Contains(msg.X, msg.Y)
	pt := v.ToCourt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return m, nil
		}
		m.frozen = false
		m.quitArmed = false
		left := msg.Button == tea.MouseButtonLeft

		switch {
		case left && msg.Y == lay.toolbarRow:
			if t, ok := components.ToolAt(msg.X); ok {
				return m, m.report(m.editor.SelectTool(t), "")
			}
		case left && msg.Y == lay.paletteRow:
			if label, ok := components.PaletteTokenAt(msg.X); ok {
				m.carrying = label
			}
		case left && msg.Y >= lay.stripTop && msg.Y < lay.stripTop+frameStripHeight:
			if i := components.FrameAt(m.frameStripState(), msg.X, m.width); i >= 0 {
				return m, m.report(m.editor.SwitchFrame(i), "")
			}
		case onCourt:
			btn := editor.Primary
			if !left {
				btn = editor.Secondary
			}
			if err := m.editor.PointerDown(pt, btn); err != nil {
				return m, m.report(err, "")
			}
			if m.editor.Mode() == editor.ConfirmDelete {
				return m.openDeleteForm()
			}
		}

	case tea.MouseActionMotion:
		if onCourt {
			m.editor.PointerMove(pt)
		} else {
			m.editor.PointerLeave()
		}

	case tea.MouseActionRelease:
		if m.carrying != "" {
			label := m.carrying
			m.carrying = ""
			if msg.Y == lay.paletteRow {
				// released where it was picked up
				return m, nil
			}
			return m, m.report(m.editor.Drop(label, pt), "Placed "+label)
		}
		if onCourt {
			m.editor.PointerUp(pt)
		} else {
			m.editor.PointerLeave()
		}
	}
	return m, nil
}

// togglePlayback starts playback, or stops it and freezes the scene.
func (m *Model) togglePlayback() (tea.Model, tea.Cmd) {
	if m.editor.Mode() == editor.Playing {
		m.editor.StopPlayback()
		m.playGen++
		m.frozen = true
		return m, m.flash(fmt.Sprintf("Stopped at frame %d", m.editor.Play().Cursor()+1), false)
	}

	m.frozen = false
	if err := m.editor.StartPlayback(); err != nil {
		return m, m.report(err, "")
	}
	m.playGen++
	m.lastTick = time.Now()
	m.log.Debug().Int("frames", m.editor.Play().Len()).Dur("transition", m.cfg.Playback.Transition).Msg("playback started")
	return m, playTickCmd(m.playGen, m.cfg.Playback.Interval)
}

// handlePlayTick advances playback by the time since the previous tick.
func (m *Model) handlePlayTick(msg playTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.playGen || m.editor.Mode() != editor.Playing {
		return m, nil
	}
	dt := msg.at.Sub(m.lastTick)
	m.lastTick = msg.at
	if _, running := m.editor.Tick(dt); !running {
		m.playGen++
		return m, m.flash("Playback finished", false)
	}
	return m, playTickCmd(m.playGen, m.cfg.Playback.Interval)
}

// quit stops any export and ends the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelExport != nil {
		m.cancelExport()
	}
	m.quitting = true
	return m, tea.Quit
}

// openForm shows f in the side panel.
func (m *Model) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	width := m.width
	if lay := m.layout(); lay.showSide {
		width = lay.sideWidth
	}
	m.form = f.WithWidth(width)
	m.formKind = kind
	return m, f.Init()
}

func (m *Model) openDeleteForm() (tea.Model, tea.Cmd) {
	p, ok := m.editor.PendingDelete()
	if !ok {
		return m, nil
	}
	m.confirmDelete = false
	return m.openForm(formDelete, forms.NewConfirmDeleteForm(p.Label, &m.confirmDelete))
}

func (m *Model) openNotesForm() (tea.Model, tea.Cmd) {
	if m.editor.Mode() == editor.Playing || m.editor.Mode() == editor.Exporting {
		return m, m.report(editor.ErrBusy, "")
	}
	p := m.editor.Play()
	m.notesText = p.Current().Notes
	return m.openForm(formNotes, forms.NewNotesForm(p.Cursor()+1, &m.notesText))
}

func (m *Model) openNewPlayForm() (tea.Model, tea.Cmd) {
	if m.editor.Mode() == editor.Playing || m.editor.Mode() == editor.Exporting {
		return m, m.report(editor.ErrBusy, "")
	}
	m.newPlay = forms.NewPlayResult{Court: string(m.cfg.Court)}
	return m.openForm(formNewPlay, forms.NewPlayForm(&m.newPlay, m.editor.Dirty()))
}

// updateForm forwards msg to the open form and applies it once it completes.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return m.closeForm(false)
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m.closeForm(true)
	case huh.StateAborted:
		return m.closeForm(false)
	}
	return m, cmd
}

// closeForm applies a submitted form and returns to normal mode.
func (m *Model) closeForm(submitted bool) (tea.Model, tea.Cmd) {
	kind := m.formKind
	m.form = nil
	m.formKind = formNone

	switch kind {
	case formDelete:
		p, _ := m.editor.PendingDelete()
		if submitted && m.confirmDelete {
			return m, m.report(m.editor.ConfirmDelete(), "Deleted "+p.Label)
		}
		m.editor.CancelDelete()
		return m, nil

	case formNotes:
		if !submitted {
			return m, nil
		}
		return m, m.report(m.editor.SetNotes(strings.TrimSpace(m.notesText)), "Notes saved")

	case formNewPlay:
		if !submitted || !m.newPlay.Discard {
			return m, nil
		}
		court, err := play.ParseCourt(m.newPlay.Court)
		if err != nil {
			return m, m.report(err, "")
		}
		if err := m.editor.NewPlay(strings.TrimSpace(m.newPlay.Name), court); err != nil {
			return m, m.report(err, "")
		}
		m.path = ""
		m.log.Info().Str("name", m.editor.Play().Name).Str("court", string(court)).Msg("new play")
		return m, m.flash("New play: "+m.editor.Play().Name, false)
	}
	return m, nil
}

// handleCommandInput handles key events when in command mode.
func (m *Model) handleCommandInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commandInput.Clear()
		return m, nil

	case "enter":
		cmdStr := m.commandInput.GetCommand()
		if cmdStr == "" {
			return m, nil
		}
		result, cmd, err := m.executeCommand(cmdStr)
		if err != nil {
			return m, m.report(err, "")
		}
		if m.quitting {
			return m.quit()
		}
		if result == "" {
			return m, cmd
		}
		return m, tea.Batch(m.flash(result, false), cmd)

	case "backspace":
		m.commandInput.Backspace()
		return m, nil

	case "delete":
		m.commandInput.Delete()
		return m, nil

	case "left":
		m.commandInput.MoveCursorLeft()
		return m, nil

	case "right":
		m.commandInput.MoveCursorRight()
		return m, nil

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			for _, r := range msg.Runes {
				m.commandInput.InsertChar(r)
			}
		}
		return m, nil
	}
}

// executeCommand parses and executes a command string.
// Returns a result message, an optional follow-up command, or an error.
func (m *Model) executeCommand(cmdStr string) (string, tea.Cmd, error) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return "", nil, nil
	}

	cmd := parts[0]
	args := parts[1:]
	// rest keeps the argument text with its inner spacing, for names and notes
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cmdStr), cmd))

	switch cmd {
	case "w", "write":
		res, err := m.writeFile(rest)
		return res, nil, err
	case "wq":
		if _, err := m.writeFile(rest); err != nil {
			return "", nil, err
		}
		m.quitting = true
		return "", nil, nil
	case "e", "edit", "e!":
		res, err := m.openFile(rest, cmd == "e!")
		return res, nil, err
	case "name":
		if rest == "" {
			return "Name: " + m.editor.Play().Name, nil, nil
		}
		if err := m.editor.Rename(rest); err != nil {
			return "", nil, err
		}
		return "Renamed to " + m.editor.Play().Name, nil, nil
	case "court":
		if len(args) < 1 {
			return fmt.Sprintf("Court: %s", m.editor.Play().Court), nil, nil
		}
		court, err := play.ParseCourt(args[0])
		if err != nil {
			return "", nil, err
		}
		if err := m.editor.SetCourt(court); err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("Court set to %s", court), nil, nil
	case "note", "notes":
		if err := m.editor.SetNotes(rest); err != nil {
			return "", nil, err
		}
		return "Notes saved", nil, nil
	case "goto", "frame":
		if len(args) < 1 {
			return "", nil, fmt.Errorf("goto requires a frame number (e.g., goto 2)")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("invalid frame number: %s", args[0])
		}
		if err := m.editor.SwitchFrame(n - 1); err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("Frame %d", m.editor.Play().Cursor()+1), nil, nil
	case "tool":
		if len(args) < 1 {
			return "", nil, fmt.Errorf("tool requires a name (e.g., tool pass)")
		}
		t, err := editor.ParseTool(args[0])
		if err != nil {
			return "", nil, err
		}
		return "", nil, m.editor.SelectTool(t)
	case "place":
		return m.placeCommand(args)
	case "export":
		return m.startExport(args)
	case "lib", "library":
		res, err := m.libraryCommand(args, rest)
		return res, nil, err
	case "q", "quit":
		if m.editor.Dirty() {
			return "", nil, fmt.Errorf("unsaved changes (use :w to save or :q! to discard)")
		}
		m.quitting = true
		return "", nil, nil
	case "q!":
		m.quitting = true
		return "", nil, nil
	case "help", "h":
		return "Commands: w, e, name, court, note, goto, tool, place, export pdf|gif, lib save|open|list|rm, q", nil, nil
	default:
		return "", nil, fmt.Errorf("unknown command: %s", cmd)
	}
}

// placeCommand drops a player at court coordinates: place <label> <x> <y>.
func (m *Model) placeCommand(args []string) (string, tea.Cmd, error) {
	if len(args) != 3 {
		return "", nil, fmt.Errorf("usage: place <label> <x> <y>")
	}
	label := strings.ToUpper(args[0])
	known := false
	for _, l := range components.PaletteLabels {
		known = known || l == label
	}
	if !known {
		return "", nil, fmt.Errorf("unknown player %q (want 1-5 or X1-X5)", args[0])
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		return "", nil, fmt.Errorf("invalid coordinates: %s %s", args[1], args[2])
	}
	if err := m.editor.Drop(label, geom.Pt(x, y)); err != nil {
		return "", nil, err
	}
	return "Placed " + label, nil, nil
}

// writeFile saves the play to path, or to the file it is bound to.
func (m *Model) writeFile(path string) (string, error) {
	if path == "" {
		path = m.path
	}
	if path == "" {
		return "", fmt.Errorf("no file name (use :w <file>)")
	}
	if err := play.SaveFile(path, m.editor.Play()); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("save failed")
		return "", err
	}
	m.path = path
	m.editor.MarkSaved()
	m.log.Info().Str("path", path).Int("frames", m.editor.Play().Len()).Msg("play saved")
	return "Written " + path, nil
}

// openFile replaces the play with the contents of path. A failed load leaves
// a blank play.
func (m *Model) openFile(path string, force bool) (string, error) {
	if path == "" {
		return "", fmt.Errorf("open requires a file (e.g., e horns.json)")
	}
	if m.editor.Dirty() && !force {
		return "", fmt.Errorf("unsaved changes (use :w to save or :e! to discard)")
	}
	f, err := os.Open(path)
	if err != nil {
		if rerr := m.editor.Reset(); rerr != nil {
			return "", rerr
		}
		err = fmt.Errorf("%w: %v", play.ErrLoad, err)
	} else {
		defer f.Close()
		err = m.editor.Load(f, play.FormatFromPath(path))
	}
	if err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("load failed")
		m.path = ""
		return "", err
	}
	m.path = path
	m.log.Info().Str("path", path).Int("frames", m.editor.Play().Len()).Msg("play loaded")
	return fmt.Sprintf("Opened %s (%d frames)", m.editor.Play().Name, m.editor.Play().Len()), nil
}

// startExport begins an export in the background: export pdf|gif [file].
func (m *Model) startExport(args []string) (string, tea.Cmd, error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("export requires a format (e.g., export pdf or export gif out.gif)")
	}
	format, err := export.ParseFormat(args[0])
	if err != nil {
		return "", nil, err
	}

	snapshot, err := m.editor.BeginExport()
	if err != nil {
		return "", nil, err
	}
	path := export.BuildExportPath(m.cfg.Export.Dir, snapshot.Name, format)
	if len(args) > 1 {
		path = args[1]
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelExport = cancel
	m.exportProgress = components.ExportProgressState{
		Active: true,
		Format: string(format),
		Total:  snapshot.Len(),
		Path:   path,
	}
	m.exportCh = startExportGoroutine(ctx, snapshot, format, path, export.Options{
		Scale:    m.cfg.Export.Scale,
		Interval: m.cfg.Export.GIFInterval,
	})
	m.log.Info().Str("format", string(format)).Str("path", path).Msg("export started")
	return fmt.Sprintf("Exporting %d frames to %s", snapshot.Len(), path), waitForExportMsg(m.exportCh), nil
}

// finishExport unlocks the editor after an export ended either way.
func (m *Model) finishExport() {
	m.editor.EndExport()
	if m.cancelExport != nil {
		m.cancelExport()
		m.cancelExport = nil
	}
	m.exportCh = nil
}

// libraryCommand handles lib subcommands.
func (m *Model) libraryCommand(args []string, rest string) (string, error) {
	if m.db == nil {
		return "", fmt.Errorf("play library is not available")
	}
	if len(args) == 0 {
		return "", fmt.Errorf("lib requires a subcommand: save, open, list, rm")
	}
	name := strings.TrimSpace(strings.TrimPrefix(rest, args[0]))

	switch args[0] {
	case "save":
		if name != "" {
			if err := m.editor.Rename(name); err != nil {
				return "", err
			}
		}
		if _, err := db.SavePlay(m.db, m.editor.Play()); err != nil {
			m.log.Error().Err(err).Msg("library save failed")
			return "", err
		}
		if m.path == "" {
			m.editor.MarkSaved()
		}
		return fmt.Sprintf("Saved '%s' to library", m.editor.Play().Name), nil

	case "open":
		if name == "" {
			return "", fmt.Errorf("lib open requires a play name")
		}
		p, err := db.LoadPlay(m.db, name)
		if err != nil {
			return "", err
		}
		if err := m.editor.LoadPlay(p); err != nil {
			return "", err
		}
		m.path = ""
		m.log.Info().Str("name", name).Msg("play opened from library")
		return fmt.Sprintf("Opened '%s' (%d frames)", p.Name, p.Len()), nil

	case "list", "ls":
		records, err := db.SelectPlays(m.db)
		if err != nil {
			return "", err
		}
		if len(records) == 0 {
			return "Library is empty", nil
		}
		names := make([]string, len(records))
		for i, r := range records {
			names[i] = r.Name
		}
		return fmt.Sprintf("%d plays: %s", len(records), strings.Join(names, ", ")), nil

	case "rm", "delete":
		if name == "" {
			return "", fmt.Errorf("lib rm requires a play name")
		}
		if err := db.DeletePlay(m.db, name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed '%s' from library", name), nil
	}
	return "", fmt.Errorf("unknown lib subcommand: %s", args[0])
}

// screen is the row and column layout of the current terminal size.
type screen struct {
	toolbarRow int
	paletteRow int
	bodyTop    int
	bodyHeight int
	stripTop   int
	courtWidth int
	sideWidth  int
	showSide   bool
	view       components.Viewport
}

// layout computes where everything goes for the current terminal size.
func (m *Model) layout() screen {
	s := screen{toolbarRow: 1, paletteRow: 2, bodyTop: 3}
	s.bodyHeight = max(m.height-chromeHeight, 4)
	s.stripTop = s.bodyTop + s.bodyHeight
	s.courtWidth, s.sideWidth, s.showSide = layout.ComputeColumnWidths(m.width)

	// the court box border takes one cell on each side
	s.view = components.FitViewport(m.editor.Play().Court, 1, s.bodyTop+1, s.courtWidth-2, s.bodyHeight-2)
	return s
}

// minTerminalWidth is the minimum terminal width for the editor.
const minTerminalWidth = layout.MinTerminalWidth

// View renders the current state of the model as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 {
		return ""
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.width < minTerminalWidth || m.height < layout.MinTerminalHeight {
		warningStyle := lipgloss.NewStyle().
			Foreground(styles.Pink).
			Bold(true)
		hintStyle := lipgloss.NewStyle().
			Foreground(styles.Lavender).
			Italic(true)
		return warningStyle.Render(fmt.Sprintf("Terminal too small (%dx%d)", m.width, m.height)) + "\n" +
			hintStyle.Render(fmt.Sprintf("Minimum size: %dx%d", minTerminalWidth, layout.MinTerminalHeight)) + "\n" +
			hintStyle.Render("Please resize your terminal.")
	}

	lay := m.layout()
	locked := m.editor.Mode() == editor.Playing || m.editor.Mode() == editor.Exporting

	statusBar := components.StatusBar(m.statusBarState(), m.width)
	toolbar := components.Toolbar(m.editor.Tool(), locked, m.width)
	palette := components.Palette(m.carrying, m.width)

	var body string
	switch {
	case lay.showSide:
		body = layout.JoinColumns(
			[]string{m.renderCourt(lay), m.renderSide(lay.sideWidth, lay.bodyHeight)},
			[]int{lay.courtWidth, lay.sideWidth},
			lay.bodyHeight,
		)
	case m.form != nil:
		body = layout.Container{Width: m.width, Height: lay.bodyHeight}.Render(m.form.View())
	default:
		body = m.renderCourt(lay)
	}

	strip := components.FrameStrip(m.frameStripState(), m.width)
	commandInput := components.CommandInput(m.commandInput, m.width)

	return strings.Join([]string{statusBar, toolbar, palette, body, strip, commandInput}, "\n")
}

func (m *Model) statusBarState() components.StatusBarState {
	p := m.editor.Play()
	return components.StatusBarState{
		Name:    p.Name,
		Court:   string(p.Court),
		File:    m.path,
		Dirty:   m.editor.Dirty(),
		Playing: m.editor.Mode() == editor.Playing,
		Frame:   p.Cursor(),
		Frames:  p.Len(),
		Mode:    m.editor.Mode().String(),
	}
}

func (m *Model) frameStripState() components.FrameStripState {
	p := m.editor.Play()
	state := components.FrameStripState{Count: p.Len(), Cursor: p.Cursor()}

	transition := m.cfg.Playback.Transition
	if eng := m.editor.Playback(); eng != nil && (m.editor.Mode() == editor.Playing || m.frozen) {
		state.Playing = true
		state.Index = eng.Index()
		state.Progress = eng.Progress()
		transition = eng.Duration()
	}
	pos, total := timeutil.PlaybackClock(state.Index, state.Progress, transition, p.Len())
	if !state.Playing {
		pos, _ = timeutil.PlaybackClock(p.Cursor(), 0, transition, p.Len())
	}
	state.Clock = timeutil.FormatClock(pos) + " / " + timeutil.FormatClock(total)
	return state
}

// Run starts the Bubbletea program with the given editor.
// It returns an error if the program fails to start or run.
func Run(ed *editor.Editor, database *sql.DB, cfg *config.Config, log zerolog.Logger, path string) error {
	model := NewModel(ed, database, cfg, log, path)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
