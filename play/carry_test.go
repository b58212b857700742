package play

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/playsketch-cli/geom"
)

func line(kind Kind, pts ...geom.Point) Annotation {
	return Annotation{Type: kind, Points: pts}
}

func TestAddFrame_PureCarryForward(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(NewPlayer("1", geom.Pt(100, 100), 0))
	f.AddPlayer(NewPlayer("X1", geom.Pt(120, 140), 0))
	f.GiveBall(0)

	first := p.AddFrame()
	firstPlayers := append([]Player(nil), first.Players...)
	second := p.AddFrame()

	assert.Equal(t, firstPlayers, second.Players)
	assert.Equal(t, p.Frames[0].Players, second.Players)
	assert.Empty(t, second.Lines)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.Cursor())
}

func TestAddFrame_CutMovesPlayer(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(Player{X: 100, Y: 100, Radius: 15, Label: "1", IsOffense: true})
	f.AddLine(line(Cut, geom.Pt(100, 100), geom.Pt(200, 100)))
	f.Notes = "cut through"

	next := p.AddFrame()

	require.Len(t, next.Players, 1)
	assert.Equal(t, geom.Pt(200, 100), next.Players[0].Pos())
	assert.Empty(t, next.Lines)
	assert.Empty(t, next.Notes)
	// source frame is untouched
	assert.Equal(t, geom.Pt(100, 100), p.Frames[0].Players[0].Pos())
	assert.Len(t, p.Frames[0].Lines, 1)
}

func TestAddFrame_PassTransfersBall(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(Player{X: 100, Y: 100, Radius: 15, Label: "1", IsOffense: true, HasBall: true})
	f.AddPlayer(Player{X: 300, Y: 100, Radius: 15, Label: "2", IsOffense: true})
	f.AddLine(line(Pass, geom.Pt(100, 100), geom.Pt(300, 100)))

	next := p.AddFrame()

	assert.False(t, next.Players[0].HasBall)
	assert.True(t, next.Players[1].HasBall)
}

func TestAddFrame_PassAndCutFromPasser(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(Player{X: 100, Y: 100, Radius: 15, Label: "1", IsOffense: true, HasBall: true})
	f.AddPlayer(Player{X: 300, Y: 100, Radius: 15, Label: "2", IsOffense: true})
	// give and go: pass first, then cut
	f.AddLine(line(Pass, geom.Pt(100, 100), geom.Pt(300, 100)))
	f.AddLine(line(Cut, geom.Pt(100, 100), geom.Pt(150, 300)))

	next := p.AddFrame()

	assert.Equal(t, geom.Pt(150, 300), next.Players[0].Pos())
	assert.False(t, next.Players[0].HasBall, "passer loses the ball after relocating")
	assert.True(t, next.Players[1].HasBall)
	assert.Equal(t, 1, countHolders(next))
}

func TestAddFrame_UnmatchedLinesNoop(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(Player{X: 100, Y: 100, Radius: 15, Label: "1", IsOffense: true, HasBall: true})
	f.AddLine(line(Cut, geom.Pt(5, 5), geom.Pt(50, 50)))
	f.AddLine(line(Pass, geom.Pt(100, 100), geom.Pt(400, 400)))

	next := p.AddFrame()

	assert.Equal(t, geom.Pt(100, 100), next.Players[0].Pos())
	assert.True(t, next.Players[0].HasBall, "pass without receiver keeps the ball")
}

func TestAddFrame_MultiSegmentUsesEndPoint(t *testing.T) {
	p := New("", "")
	f := p.Current()
	f.AddPlayer(Player{X: 10, Y: 10, Radius: 15, Label: "4", IsOffense: true})
	f.AddLine(line(Dribble, geom.Pt(10, 10), geom.Pt(60, 10), geom.Pt(60, 90), geom.Pt(200, 90)))

	next := p.AddFrame()

	assert.Equal(t, geom.Pt(200, 90), next.Players[0].Pos())
}

func TestAddFrame_IDMatchingBeatsCoordinates(t *testing.T) {
	p := New("", "")
	f := p.Current()
	a := NewPlayer("1", geom.Pt(100, 100), 0)
	b := NewPlayer("2", geom.Pt(100, 100), 0) // stacked on the same spot
	f.AddPlayer(a)
	f.AddPlayer(b)
	f.AddLine(Annotation{Type: Cut, PlayerID: b.ID, Points: []geom.Point{geom.Pt(100, 100), geom.Pt(250, 100)}})

	next := p.AddFrame()

	assert.Equal(t, geom.Pt(100, 100), next.Players[0].Pos())
	assert.Equal(t, geom.Pt(250, 100), next.Players[1].Pos())
}

func TestAddFrame_PassTargetByID(t *testing.T) {
	p := New("", "")
	f := p.Current()
	a := NewPlayer("1", geom.Pt(100, 100), 0)
	a.HasBall = true
	b := NewPlayer("2", geom.Pt(300, 100), 0)
	f.AddPlayer(a)
	f.AddPlayer(b)
	// receiver cuts before the pass line is applied
	f.AddLine(Annotation{Type: Cut, PlayerID: b.ID, Points: []geom.Point{geom.Pt(300, 100), geom.Pt(300, 250)}})
	f.AddLine(Annotation{Type: Pass, PlayerID: a.ID, TargetID: b.ID, Points: []geom.Point{geom.Pt(100, 100), geom.Pt(300, 100)}})

	next := p.AddFrame()

	assert.True(t, next.Players[1].HasBall)
	assert.False(t, next.Players[0].HasBall)
}

func TestAddFrame_LastLineWins(t *testing.T) {
	p := New("", "")
	f := p.Current()
	a := NewPlayer("3", geom.Pt(100, 100), 0)
	f.AddPlayer(a)
	f.AddLine(Annotation{Type: Cut, PlayerID: a.ID, Points: []geom.Point{geom.Pt(100, 100), geom.Pt(200, 100)}})
	f.AddLine(Annotation{Type: Move, PlayerID: a.ID, Points: []geom.Point{geom.Pt(100, 100), geom.Pt(100, 300)}})

	next := p.AddFrame()

	assert.Equal(t, geom.Pt(100, 300), next.Players[0].Pos())
}

func countHolders(f *Frame) int {
	n := 0
	for _, p := range f.Players {
		if p.HasBall {
			n++
		}
	}
	return n
}
