// Package editor implements the play editing state machine: tool selection,
// pointer handling, frame commands and the hand-off to playback and export.
package editor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/playback"
)

var (
	// ErrBusy is returned when an action is not allowed in the current mode.
	ErrBusy = errors.New("editor is busy")
	// ErrNotOffense is returned when the ball is assigned to a defender.
	ErrNotOffense = errors.New("only offensive players can have the ball")
	// ErrOutOfBounds is returned when a player is dropped off the court.
	ErrOutOfBounds = errors.New("drop point is outside the court")
	// ErrNoPlayer is returned when a tool needs a player and none was hit.
	ErrNoPlayer = errors.New("no player there")
)

// Options configures an Editor.
type Options struct {
	// Radius of newly placed players; zero selects play.DefaultRadius.
	Radius float64
	// Transition is the playback duration of one frame pair.
	Transition time.Duration
}

// Editor owns a play and mediates every change made to it.
type Editor struct {
	play *play.Play
	opts Options

	mode Mode
	tool Tool

	grab       int
	grabOffset geom.Point

	draft *play.Annotation

	pending int

	engine *playback.Engine
	dirty  bool
}

// New returns an editor for p. A nil play starts a new one.
func New(p *play.Play, opts Options) *Editor {
	if p == nil {
		p = play.New("", "")
	}
	if opts.Radius <= 0 {
		opts.Radius = play.DefaultRadius
	}
	return &Editor{
		play:    p,
		opts:    opts,
		tool:    Select,
		grab:    -1,
		pending: -1,
	}
}

// Play returns the edited play.
func (e *Editor) Play() *play.Play { return e.play }

// Mode returns the interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// Dirty reports whether the play changed since the last MarkSaved.
func (e *Editor) Dirty() bool { return e.dirty }

// MarkSaved clears the dirty flag.
func (e *Editor) MarkSaved() { e.dirty = false }

// Preview returns the annotation being drawn.
func (e *Editor) Preview() (play.Annotation, bool) {
	if e.mode != Drawing || e.draft == nil {
		return play.Annotation{}, false
	}
	return e.draft.Clone(), true
}

// PendingDelete returns the player awaiting delete confirmation.
func (e *Editor) PendingDelete() (play.Player, bool) {
	f := e.play.Current()
	if e.mode != ConfirmDelete || e.pending < 0 || e.pending >= len(f.Players) {
		return play.Player{}, false
	}
	return f.Players[e.pending], true
}

// Selected returns the index of the player being dragged, or -1.
func (e *Editor) Selected() int {
	if e.mode != Dragging {
		return -1
	}
	return e.grab
}

// SelectTool switches tools, abandoning any gesture in progress.
func (e *Editor) SelectTool(t Tool) error {
	if e.locked() {
		return ErrBusy
	}
	e.toIdle()
	e.tool = t
	return nil
}

// locked reports whether the play is owned by playback or an export.
func (e *Editor) locked() bool {
	return e.mode == Playing || e.mode == Exporting
}

// editable returns ErrBusy unless the current frame can be edited.
func (e *Editor) editable() error {
	if e.locked() || e.mode == ConfirmDelete {
		return ErrBusy
	}
	return nil
}

// toIdle discards drawing, drag and pending delete state.
func (e *Editor) toIdle() {
	e.mode = Idle
	e.draft = nil
	e.grab = -1
	e.pending = -1
}

// Drop places a palette token on the court.
func (e *Editor) Drop(label string, pt geom.Point) error {
	if err := e.editable(); err != nil {
		return err
	}
	if !e.play.Court.Contains(pt) {
		return ErrOutOfBounds
	}
	e.toIdle()
	e.play.Current().AddPlayer(play.NewPlayer(label, pt, e.opts.Radius))
	e.dirty = true
	return nil
}

// PointerDown handles a button press at pt in court coordinates.
func (e *Editor) PointerDown(pt geom.Point, btn Button) error {
	if err := e.editable(); err != nil {
		return err
	}

	if e.mode == Drawing {
		if btn == Secondary {
			e.appendWaypoint(pt)
			return nil
		}
		e.commit(pt)
		return nil
	}
	if btn != Primary {
		return nil
	}

	f := e.play.Current()
	hit := f.PlayerAt(pt)

	switch {
	case e.tool == Select:
		if hit < 0 {
			return nil
		}
		e.mode = Dragging
		e.grab = hit
		e.grabOffset = pt.Sub(f.Players[hit].Pos())

	case e.tool == Delete:
		if hit < 0 {
			return ErrNoPlayer
		}
		e.mode = ConfirmDelete
		e.pending = hit

	case e.tool == Ball:
		if hit < 0 {
			return ErrNoPlayer
		}
		return e.toggleBall(hit)

	case e.tool.IsPath():
		if hit < 0 {
			return ErrNoPlayer
		}
		kind, _ := e.tool.Kind()
		anchor := f.Players[hit]
		e.mode = Drawing
		e.draft = &play.Annotation{
			Type:     kind,
			PlayerID: anchor.ID,
			Points:   []geom.Point{anchor.Pos(), pt},
		}
	}
	return nil
}

// PointerMove tracks the pointer for drags and the live end of a drawing.
func (e *Editor) PointerMove(pt geom.Point) {
	switch e.mode {
	case Dragging:
		f := e.play.Current()
		if e.grab < 0 || e.grab >= len(f.Players) {
			e.toIdle()
			return
		}
		f.Players[e.grab].SetPos(pt.Sub(e.grabOffset))
		e.dirty = true
	case Drawing:
		e.draft.Points[len(e.draft.Points)-1] = pt
	}
}

// PointerUp ends a drag. Drawing continues until the next primary press.
func (e *Editor) PointerUp(pt geom.Point) {
	if e.mode != Dragging {
		return
	}
	e.PointerMove(pt)
	e.toIdle()
}

// PointerLeave ends a drag in place and discards a drawing.
func (e *Editor) PointerLeave() {
	switch e.mode {
	case Dragging, Drawing:
		e.toIdle()
	}
}

// appendWaypoint freezes the live point and starts a new live segment from it.
func (e *Editor) appendWaypoint(pt geom.Point) {
	e.draft.Points[len(e.draft.Points)-1] = pt
	e.draft.Points = append(e.draft.Points, pt)
}

// commit finishes the drawing at pt. A release over a player snaps the end to
// that player's centre and records it as the target.
func (e *Editor) commit(pt geom.Point) {
	a := e.draft
	f := e.play.Current()
	if hit := f.PlayerAt(pt); hit >= 0 {
		pt = f.Players[hit].Pos()
		a.TargetID = f.Players[hit].ID
	}
	a.Points[len(a.Points)-1] = pt
	if f.AddLine(*a) {
		e.dirty = true
	}
	e.toIdle()
}

func (e *Editor) toggleBall(i int) error {
	f := e.play.Current()
	p := &f.Players[i]
	if !p.IsOffense {
		return ErrNotOffense
	}
	if p.HasBall {
		p.HasBall = false
	} else {
		f.GiveBall(i)
	}
	e.dirty = true
	return nil
}

// ConfirmDelete removes the player awaiting confirmation.
func (e *Editor) ConfirmDelete() error {
	if e.mode != ConfirmDelete {
		return ErrNoPlayer
	}
	e.play.Current().RemovePlayer(e.pending)
	e.dirty = true
	e.toIdle()
	return nil
}

// CancelDelete keeps the player awaiting confirmation.
func (e *Editor) CancelDelete() {
	if e.mode == ConfirmDelete {
		e.toIdle()
	}
}

// frameCommand gates structural commands and returns the editor to Idle.
func (e *Editor) frameCommand() error {
	if e.locked() {
		return ErrBusy
	}
	e.toIdle()
	return nil
}

// SwitchFrame activates frame i, clamped into range.
func (e *Editor) SwitchFrame(i int) error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.SwitchFrame(i)
	return nil
}

// NextFrame and PrevFrame step the cursor.
func (e *Editor) NextFrame() error { return e.SwitchFrame(e.play.Cursor() + 1) }
func (e *Editor) PrevFrame() error { return e.SwitchFrame(e.play.Cursor() - 1) }

// AddFrame carries the current frame forward into a new frame.
func (e *Editor) AddFrame() error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.AddFrame()
	e.dirty = true
	return nil
}

// DeleteFrame removes the current frame.
func (e *Editor) DeleteFrame() error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	if err := e.play.DeleteFrame(e.play.Cursor()); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// ClearFrame empties the current frame.
func (e *Editor) ClearFrame() error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	if err := e.play.ClearFrame(e.play.Cursor()); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// SetNotes replaces the current frame's notes.
func (e *Editor) SetNotes(text string) error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	if err := e.play.SetNotes(e.play.Cursor(), text); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// Rename sets the play name.
func (e *Editor) Rename(name string) error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.Rename(name)
	e.dirty = true
	return nil
}

// SetCourt switches the court variant.
func (e *Editor) SetCourt(c play.Court) error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.SetCourt(c)
	e.dirty = true
	return nil
}

// NewPlay discards the play and starts over with a single blank frame.
func (e *Editor) NewPlay(name string, court play.Court) error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.Replace(play.New(name, court))
	e.dirty = false
	return nil
}

// Load replaces the play with a decoded one. The play is reset before decoding,
// so a failed load leaves a blank play behind.
func (e *Editor) Load(r io.Reader, format play.Format) error {
	if err := e.Reset(); err != nil {
		return err
	}
	loaded, err := play.Decode(r, format)
	if err != nil {
		return err
	}
	e.play.Replace(loaded)
	e.play.SwitchFrame(0)
	return nil
}

// Reset discards the play for a blank one, the state a failed load leaves.
func (e *Editor) Reset() error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.Reset()
	e.dirty = false
	return nil
}

// LoadPlay replaces the play with p.
func (e *Editor) LoadPlay(p *play.Play) error {
	if err := e.frameCommand(); err != nil {
		return err
	}
	e.play.Replace(p)
	e.play.SwitchFrame(0)
	e.dirty = false
	return nil
}

// StartPlayback hands the play to a playback engine.
func (e *Editor) StartPlayback() error {
	if e.locked() {
		return ErrBusy
	}
	engine := playback.New(e.play, e.opts.Transition)
	if err := engine.Start(); err != nil {
		return err
	}
	e.toIdle()
	e.engine = engine
	e.mode = Playing
	return nil
}

// Tick advances playback by dt. It reports false once playback has ended, at
// which point the final frame is active and the editor is Idle again.
func (e *Editor) Tick(dt time.Duration) (playback.Scene, bool) {
	if e.mode != Playing || e.engine == nil {
		return playback.Scene{}, false
	}
	s := e.engine.Tick(dt)
	if e.engine.Done() {
		e.play.SwitchFrame(e.engine.Index())
		e.mode = Idle
		return s, false
	}
	return s, true
}

// StopPlayback freezes playback and activates the frame that was playing.
func (e *Editor) StopPlayback() {
	if e.mode != Playing || e.engine == nil {
		return
	}
	e.engine.Stop()
	e.play.SwitchFrame(e.engine.Index())
	e.mode = Idle
}

// Scene returns the frozen or playing scene, if playback has run.
func (e *Editor) Scene() (playback.Scene, bool) {
	if e.engine == nil {
		return playback.Scene{}, false
	}
	return e.engine.Scene(), true
}

// Playback returns the engine of the current or last playback.
func (e *Editor) Playback() *playback.Engine {
	return e.engine
}

// BeginExport locks the editor and returns a snapshot of the play for the
// exporter to work on.
func (e *Editor) BeginExport() (*play.Play, error) {
	if e.locked() {
		return nil, ErrBusy
	}
	e.toIdle()
	e.mode = Exporting
	return e.play.Clone(), nil
}

// EndExport unlocks the editor after an export finished or failed.
func (e *Editor) EndExport() {
	if e.mode == Exporting {
		e.mode = Idle
	}
}

// Describe returns a one-line summary of the editor state for status lines.
func (e *Editor) Describe() string {
	return fmt.Sprintf("%s · frame %d/%d · %s", e.mode, e.play.Cursor()+1, e.play.Len(), e.tool)
}
