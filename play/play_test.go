package play

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/playsketch-cli/geom"
)

func TestNew(t *testing.T) {
	p := New("", "")

	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, HalfCourt, p.Court)
	require.Equal(t, 1, p.Len())
	assert.Equal(t, 1, p.Frames[0].ID)
	assert.Equal(t, 2, p.NextFrameID)
	assert.Equal(t, 0, p.Cursor())

	p = New("Horns", FullCourt)
	assert.Equal(t, "Horns", p.Name)
	assert.Equal(t, FullCourt, p.Court)
}

func TestSwitchFrame_Clamps(t *testing.T) {
	p := New("", "")
	p.AddBlankFrame()
	p.AddBlankFrame()

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"in range", 1, 1},
		{"negative", -4, 0},
		{"past end", 10, 2},
		{"last", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SwitchFrame(tt.index)
			assert.Equal(t, tt.want, p.Cursor())
		})
	}
}

func TestSwitchFrame_EmptyResets(t *testing.T) {
	p := New("Zipper", FullCourt)
	p.Frames = nil

	p.SwitchFrame(3)

	require.Equal(t, 1, p.Len())
	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, 0, p.Cursor())
}

func TestDeleteFrame(t *testing.T) {
	p := New("", "")
	err := p.DeleteFrame(0)
	assert.ErrorIs(t, err, ErrLastFrame)
	assert.Equal(t, 1, p.Len())

	p.AddBlankFrame() // id 2
	p.AddBlankFrame() // id 3
	require.NoError(t, p.DeleteFrame(2))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, p.Cursor())

	require.NoError(t, p.DeleteFrame(0))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 2, p.Current().ID)

	assert.ErrorIs(t, p.DeleteFrame(0), ErrLastFrame)
}

func TestDeleteFrame_OutOfRange(t *testing.T) {
	p := New("", "")
	p.AddBlankFrame()

	assert.ErrorIs(t, p.DeleteFrame(5), ErrNoFrame)
	assert.Equal(t, 2, p.Len())
}

func TestFrameIDsAreUnique(t *testing.T) {
	p := New("", "")
	p.AddFrame()
	p.AddBlankFrame()
	require.NoError(t, p.DeleteFrame(1))
	p.AddFrame()

	seen := map[int]bool{}
	for _, f := range p.Frames {
		assert.False(t, seen[f.ID], "duplicate frame id %d", f.ID)
		seen[f.ID] = true
	}
}

func TestClearFrame(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(NewPlayer("1", geom.Pt(10, 10), 0))
	f.AddLine(Annotation{Type: Cut, Points: []geom.Point{geom.Pt(10, 10), geom.Pt(50, 50)}})
	f.Notes = "weak side"

	require.NoError(t, p.ClearFrame(0))

	assert.Empty(t, p.Current().Players)
	assert.Empty(t, p.Current().Lines)
	assert.Empty(t, p.Current().Notes)
	assert.ErrorIs(t, p.ClearFrame(3), ErrNoFrame)
}

func TestRenameAndNotes(t *testing.T) {
	p := New("", "")
	p.Rename("  Floppy  ")
	assert.Equal(t, "Floppy", p.Name)
	p.Rename("   ")
	assert.Equal(t, DefaultName, p.Name)

	require.NoError(t, p.SetNotes(0, "2 curls"))
	assert.Equal(t, "2 curls", p.Current().Notes)
	assert.ErrorIs(t, p.SetNotes(1, "x"), ErrNoFrame)
}

func TestParseCourt(t *testing.T) {
	c, err := ParseCourt("FULL")
	require.NoError(t, err)
	assert.Equal(t, FullCourt, c)

	_, err = ParseCourt("quarter")
	assert.ErrorIs(t, err, ErrInvalidCourt)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Dribble")
	require.NoError(t, err)
	assert.Equal(t, Dribble, k)
	assert.True(t, k.IsMotion())
	assert.False(t, Pass.IsMotion())

	_, err = ParseKind("alley-oop")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestNewPlayer(t *testing.T) {
	o := NewPlayer("3", geom.Pt(1, 2), 0)
	d := NewPlayer("X3", geom.Pt(1, 2), 20)

	assert.True(t, o.IsOffense)
	assert.False(t, d.IsOffense)
	assert.False(t, o.HasBall)
	assert.Equal(t, DefaultRadius, o.Radius)
	assert.Equal(t, 20.0, d.Radius)
	assert.NotEmpty(t, o.ID)
	assert.NotEqual(t, o.ID, d.ID)
}

func TestPlayerAt_StrictRadiusAndTopmost(t *testing.T) {
	var f Frame
	f.AddPlayer(NewPlayer("1", geom.Pt(100, 100), 15))
	f.AddPlayer(NewPlayer("2", geom.Pt(110, 100), 15))

	assert.Equal(t, 1, f.PlayerAt(geom.Pt(105, 100)), "latest placed wins on overlap")
	assert.Equal(t, 0, f.PlayerAt(geom.Pt(90, 100)))
	assert.Equal(t, -1, f.PlayerAt(geom.Pt(85, 100)), "exactly on the radius is a miss")
	assert.Equal(t, -1, f.PlayerAt(geom.Pt(300, 300)))
}

func TestGiveBall_SingleHolder(t *testing.T) {
	var f Frame
	f.AddPlayer(NewPlayer("1", geom.Pt(0, 0), 0))
	f.AddPlayer(NewPlayer("2", geom.Pt(50, 0), 0))

	f.GiveBall(0)
	f.GiveBall(1)

	assert.False(t, f.Players[0].HasBall)
	assert.True(t, f.Players[1].HasBall)
	assert.Equal(t, 1, f.BallHolder())
}

func TestClone_IsDeep(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(NewPlayer("1", geom.Pt(10, 10), 0))
	f.AddLine(Annotation{Type: Cut, Points: []geom.Point{geom.Pt(10, 10), geom.Pt(40, 10)}})

	c := p.Clone()
	c.Frames[0].Players[0].X = 99
	c.Frames[0].Lines[0].Points[1].X = 99

	assert.Equal(t, 10.0, p.Frames[0].Players[0].X)
	assert.Equal(t, 40.0, p.Frames[0].Lines[0].Points[1].X)
}

func TestAddLine_RejectsShortPaths(t *testing.T) {
	var f Frame
	assert.False(t, f.AddLine(Annotation{Type: Cut, Points: []geom.Point{geom.Pt(1, 1)}}))
	assert.Empty(t, f.Lines)
}

func TestCourtBounds(t *testing.T) {
	w, h := HalfCourt.Size()
	assert.Equal(t, 500.0, w)
	assert.Equal(t, 470.0, h)
	w, _ = FullCourt.Size()
	assert.Equal(t, 940.0, w)

	assert.True(t, HalfCourt.Contains(geom.Pt(0, 470)))
	assert.False(t, HalfCourt.Contains(geom.Pt(600, 10)))
	assert.True(t, FullCourt.Contains(geom.Pt(600, 10)))
	assert.False(t, FullCourt.Contains(geom.Pt(-1, 10)))
}

func TestReplace(t *testing.T) {
	p := New("", "")
	o := New("Box", FullCourt)
	o.AddBlankFrame()

	p.Replace(o)
	o.Frames[0].Notes = "changed"

	assert.Equal(t, "Box", p.Name)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, p.Cursor())
	assert.Empty(t, p.Frames[0].Notes)
}
