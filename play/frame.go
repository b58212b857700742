package play

import "github.com/user/playsketch-cli/geom"

// Frame is one static snapshot of the court.
type Frame struct {
	ID      int          `json:"id" yaml:"id"`
	Notes   string       `json:"notes" yaml:"notes"`
	Players []Player     `json:"players" yaml:"players"`
	Lines   []Annotation `json:"lines" yaml:"lines"`
}

// Clone returns a structural deep copy of the frame.
func (f *Frame) Clone() Frame {
	c := Frame{
		ID:      f.ID,
		Notes:   f.Notes,
		Players: append([]Player(nil), f.Players...),
	}
	if f.Lines != nil {
		c.Lines = make([]Annotation, len(f.Lines))
		for i, a := range f.Lines {
			c.Lines[i] = a.Clone()
		}
	}
	return c
}

// Clear removes all players, lines and notes.
func (f *Frame) Clear() {
	f.Players = nil
	f.Lines = nil
	f.Notes = ""
}

// PlayerAt returns the index of the topmost player containing pt, or -1.
// Players are scanned in reverse insertion order so the latest placed wins.
func (f *Frame) PlayerAt(pt geom.Point) int {
	for i := len(f.Players) - 1; i >= 0; i-- {
		if f.Players[i].Contains(pt) {
			return i
		}
	}
	return -1
}

// PlayerByID returns the index of the player with the given id, or -1.
func (f *Frame) PlayerByID(id string) int {
	if id == "" {
		return -1
	}
	for i := range f.Players {
		if f.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// PlayerAtExact returns the first player whose centre equals pt exactly, or -1.
func (f *Frame) PlayerAtExact(pt geom.Point) int {
	for i := range f.Players {
		if f.Players[i].Pos().Equal(pt) {
			return i
		}
	}
	return -1
}

// BallHolder returns the index of the player holding the ball, or -1.
func (f *Frame) BallHolder() int {
	for i := range f.Players {
		if f.Players[i].HasBall {
			return i
		}
	}
	return -1
}

// AddPlayer appends a player and returns its index.
func (f *Frame) AddPlayer(p Player) int {
	f.Players = append(f.Players, p)
	return len(f.Players) - 1
}

// RemovePlayer deletes the player at index i.
func (f *Frame) RemovePlayer(i int) {
	if i < 0 || i >= len(f.Players) {
		return
	}
	f.Players = append(f.Players[:i], f.Players[i+1:]...)
}

// GiveBall moves possession to player i, clearing any previous holder first.
func (f *Frame) GiveBall(i int) {
	for j := range f.Players {
		f.Players[j].HasBall = false
	}
	if i >= 0 && i < len(f.Players) {
		f.Players[i].HasBall = true
	}
}

// AddLine commits an annotation. Paths with fewer than two points are ignored.
func (f *Frame) AddLine(a Annotation) bool {
	if !a.Valid() {
		return false
	}
	f.Lines = append(f.Lines, a.Clone())
	return true
}

// AnchorOf resolves the player an annotation starts from. The anchor id wins when
// it resolves; otherwise the start point is matched by exact coordinates.
func (f *Frame) AnchorOf(a Annotation) int {
	if i := f.PlayerByID(a.PlayerID); i >= 0 {
		return i
	}
	return f.PlayerAtExact(a.Start())
}

// TargetOf resolves the player an annotation ends on, by id then by coordinates.
func (f *Frame) TargetOf(a Annotation) int {
	if i := f.PlayerByID(a.TargetID); i >= 0 {
		return i
	}
	return f.PlayerAtExact(a.End())
}
