package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/playback"
)

func TestGeometry(t *testing.T) {
	half := Geometry(play.HalfCourt)
	assert.Equal(t, 500.0, half.Width)
	assert.Equal(t, 470.0, half.Height)
	require.Len(t, half.Baskets, 1)

	full := Geometry(play.FullCourt)
	assert.Equal(t, 940.0, full.Width)
	assert.Len(t, full.Baskets, 2)
	assert.Greater(t, len(full.Segments), len(half.Segments))
}

func TestGeometry_MarkingsStayOnCourt(t *testing.T) {
	for _, c := range []play.Court{play.HalfCourt, play.FullCourt} {
		g := Geometry(c)
		for _, pl := range g.Polylines(5) {
			for _, p := range pl {
				assert.True(t, p.X >= -1e-9 && p.X <= g.Width+1e-9, "%s: x=%v", c, p.X)
				assert.True(t, p.Y >= -1e-9 && p.Y <= g.Height+1e-9, "%s: y=%v", c, p.Y)
			}
		}
	}
}

func TestThreePointArcMeetsCornerLines(t *testing.T) {
	g := Geometry(play.HalfCourt)
	var three Arc
	for _, a := range g.Arcs {
		if a.Radius == threeRadius {
			three = a
		}
	}
	pts := three.Points(10)
	assert.InDelta(t, cornerThreeInset, math.Min(pts[0].X, pts[len(pts)-1].X), 1e-6)
	assert.InDelta(t, 500-cornerThreeInset, math.Max(pts[0].X, pts[len(pts)-1].X), 1e-6)
}

func TestFrame_Size(t *testing.T) {
	var f play.Frame
	img := Frame(&f, play.HalfCourt, Options{Scale: 1, Margin: 10})
	assert.Equal(t, 520, img.Bounds().Dx())
	assert.Equal(t, 490, img.Bounds().Dy())

	img = Frame(&f, play.FullCourt, Options{Scale: 0.5})
	assert.Equal(t, 470, img.Bounds().Dx())
	assert.Equal(t, 250, img.Bounds().Dy())
}

func TestFrame_DrawsPlayers(t *testing.T) {
	var f play.Frame
	f.AddPlayer(play.Player{X: 100, Y: 300, Radius: 15, Label: "1", IsOffense: true})
	f.AddPlayer(play.Player{X: 300, Y: 300, Radius: 15, Label: "X1"})

	img := Frame(&f, play.HalfCourt, Options{Margin: 10})

	assert.Equal(t, color.RGBA(Background), img.RGBAAt(2, 2))
	assert.Equal(t, Floor, img.RGBAAt(10+20, 10+300))
	assert.Equal(t, OffenseFill, img.RGBAAt(10+100-10, 10+300))
	assert.Equal(t, CourtLine, img.RGBAAt(10+300-9, 10+300))
}

func TestScene_DrawsBallInFlight(t *testing.T) {
	ball := geom.Pt(200, 320)
	s := playback.Scene{Ball: &ball}

	img := Scene(s, play.HalfCourt, Options{})

	assert.Equal(t, BallFill, img.RGBAAt(200, 320))
}

func TestFrame_DrawsAnnotations(t *testing.T) {
	var f play.Frame
	f.AddLine(play.Annotation{Type: play.Cut, Points: []geom.Point{geom.Pt(60, 300), geom.Pt(200, 300)}})
	f.AddLine(play.Annotation{Type: play.Pass, Points: []geom.Point{geom.Pt(60, 400), geom.Pt(200, 400)}})

	img := Frame(&f, play.HalfCourt, Options{})

	assert.Equal(t, LineColor(play.Cut), img.RGBAAt(100, 300))
	// first dash is drawn, the gap after it is not
	assert.Equal(t, LineColor(play.Pass), img.RGBAAt(65, 400))
	assert.Equal(t, Floor, img.RGBAAt(75, 400))
}
