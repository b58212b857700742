// Package play holds the play model: players, path annotations, frames and the
// ordered frame sequence, along with carry-forward and the persisted file codec.
package play

import (
	"fmt"
	"strings"

	"github.com/user/playsketch-cli/geom"
)

// DefaultName is used for new plays and loaded files with an empty name.
const DefaultName = "Untitled Play"

// Court is the background variant a play is drawn on.
type Court string

const (
	HalfCourt Court = "half"
	FullCourt Court = "full"
)

// ParseCourt converts a court string to a Court.
func ParseCourt(s string) (Court, error) {
	switch Court(strings.ToLower(strings.TrimSpace(s))) {
	case HalfCourt:
		return HalfCourt, nil
	case FullCourt:
		return FullCourt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCourt, s)
}

// Size returns the court extent in court units (tenths of a foot).
func (c Court) Size() (w, h float64) {
	if c == FullCourt {
		return 940, 500
	}
	return 500, 470
}

// Contains reports whether pt lies on the court.
func (c Court) Contains(pt geom.Point) bool {
	w, h := c.Size()
	return pt.X >= 0 && pt.Y >= 0 && pt.X <= w && pt.Y <= h
}

// Play is an ordered sequence of frames plus metadata. The cursor always points at
// a valid frame.
type Play struct {
	Name        string
	Court       Court
	Frames      []Frame
	NextFrameID int

	cursor int
}

// New returns a play with a single blank frame.
func New(name string, court Court) *Play {
	p := &Play{}
	p.Reset()
	if name != "" {
		p.Name = name
	}
	if court != "" {
		p.Court = court
	}
	return p
}

// Reset replaces the play with a single blank frame, keeping nothing.
func (p *Play) Reset() {
	p.Name = DefaultName
	p.Court = HalfCourt
	p.Frames = []Frame{{ID: 1}}
	p.NextFrameID = 2
	p.cursor = 0
}

// Len returns the number of frames.
func (p *Play) Len() int {
	return len(p.Frames)
}

// Cursor returns the index of the active frame.
func (p *Play) Cursor() int {
	return p.cursor
}

// Current returns the active frame.
func (p *Play) Current() *Frame {
	if len(p.Frames) == 0 {
		p.Reset()
	}
	return &p.Frames[p.cursor]
}

// Frame returns the frame at index i.
func (p *Play) Frame(i int) (*Frame, error) {
	if i < 0 || i >= len(p.Frames) {
		return nil, fmt.Errorf("%w: %d", ErrNoFrame, i)
	}
	return &p.Frames[i], nil
}

// SwitchFrame makes frame i active, clamping i into range. An empty sequence is
// reset to a new play.
func (p *Play) SwitchFrame(i int) {
	if len(p.Frames) == 0 {
		p.Reset()
		return
	}
	p.cursor = clamp(i, 0, len(p.Frames)-1)
}

// DeleteFrame removes frame i and moves the cursor to the previous frame.
func (p *Play) DeleteFrame(i int) error {
	if len(p.Frames) <= 1 {
		return ErrLastFrame
	}
	if i < 0 || i >= len(p.Frames) {
		return fmt.Errorf("%w: %d", ErrNoFrame, i)
	}
	p.Frames = append(p.Frames[:i], p.Frames[i+1:]...)
	p.cursor = clamp(i-1, 0, len(p.Frames)-1)
	return nil
}

// ClearFrame empties the players, lines and notes of frame i in place.
func (p *Play) ClearFrame(i int) error {
	f, err := p.Frame(i)
	if err != nil {
		return err
	}
	f.Clear()
	return nil
}

// AddBlankFrame appends an empty frame and makes it active.
func (p *Play) AddBlankFrame() *Frame {
	return p.appendFrame(Frame{})
}

// SetNotes replaces the notes of frame i.
func (p *Play) SetNotes(i int, text string) error {
	f, err := p.Frame(i)
	if err != nil {
		return err
	}
	f.Notes = text
	return nil
}

// Rename sets the play name, falling back to the default for blank names.
func (p *Play) Rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	p.Name = name
}

// SetCourt switches the court variant.
func (p *Play) SetCourt(c Court) {
	p.Court = c
}

// Replace swaps in the contents of o wholesale.
func (p *Play) Replace(o *Play) {
	c := o.Clone()
	*p = *c
	if len(p.Frames) == 0 {
		p.Reset()
	}
	p.cursor = clamp(p.cursor, 0, len(p.Frames)-1)
}

// Clone returns a structural deep copy of the play, cursor included.
func (p *Play) Clone() *Play {
	c := &Play{
		Name:        p.Name,
		Court:       p.Court,
		NextFrameID: p.NextFrameID,
		cursor:      p.cursor,
		Frames:      make([]Frame, len(p.Frames)),
	}
	for i := range p.Frames {
		c.Frames[i] = p.Frames[i].Clone()
	}
	return c
}

// appendFrame assigns the next identifier, appends f and makes it active.
func (p *Play) appendFrame(f Frame) *Frame {
	f.ID = p.NextFrameID
	p.NextFrameID++
	p.Frames = append(p.Frames, f)
	p.cursor = len(p.Frames) - 1
	return &p.Frames[p.cursor]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
