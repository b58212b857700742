package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
)

func TestFitViewportKeepsCourtInsideArea(t *testing.T) {
	for _, court := range []play.Court{play.HalfCourt, play.FullCourt} {
		v := FitViewport(court, 1, 4, 100, 30)
		assert.LessOrEqual(t, v.Cols, 100, court)
		assert.LessOrEqual(t, v.Rows, 30, court)
		assert.GreaterOrEqual(t, v.Left, 1, court)
		assert.GreaterOrEqual(t, v.Top, 4, court)
		assert.LessOrEqual(t, v.Left+v.Cols, 101, court)
		assert.LessOrEqual(t, v.Top+v.Rows, 34, court)
	}
}

func TestFitViewportDegenerateArea(t *testing.T) {
	v := FitViewport(play.HalfCourt, 0, 0, 0, 0)
	assert.Equal(t, 1, v.Cols)
	assert.Equal(t, 1, v.Rows)
}

func TestViewportRoundTrip(t *testing.T) {
	v := FitViewport(play.HalfCourt, 2, 3, 80, 24)

	for _, cell := range [][2]int{{0, 0}, {v.Cols - 1, v.Rows - 1}, {v.Cols / 2, v.Rows / 3}} {
		x, y := v.Left+cell[0], v.Top+cell[1]
		require.True(t, v.Contains(x, y))

		pt := v.ToCourt(x, y)
		assert.True(t, play.HalfCourt.Contains(pt))

		col, row := v.Cell(pt)
		assert.Equal(t, cell[0], col)
		assert.Equal(t, cell[1], row)
	}

	assert.False(t, v.Contains(v.Left-1, v.Top))
	assert.False(t, v.Contains(v.Left, v.Top+v.Rows))
}

func TestViewportCellClamps(t *testing.T) {
	v := FitViewport(play.HalfCourt, 0, 0, 50, 20)

	col, row := v.Cell(geom.Pt(-100, -100))
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row = v.Cell(geom.Pt(9999, 9999))
	assert.Equal(t, v.Cols-1, col)
	assert.Equal(t, v.Rows-1, row)
}

func TestArrow(t *testing.T) {
	o := geom.Pt(0, 0)
	assert.Equal(t, '→', Arrow(o, geom.Pt(10, 0)))
	assert.Equal(t, '↓', Arrow(o, geom.Pt(0, 10)))
	assert.Equal(t, '←', Arrow(o, geom.Pt(-10, 0)))
	assert.Equal(t, '↑', Arrow(o, geom.Pt(0, -10)))
	assert.Equal(t, '↘', Arrow(o, geom.Pt(10, 10)))
	assert.Equal(t, '↖', Arrow(o, geom.Pt(-10, -10)))
}

func TestCourtView(t *testing.T) {
	v := FitViewport(play.HalfCourt, 0, 0, 60, 20)
	state := CourtViewState{
		Court: play.HalfCourt,
		Players: []play.Player{
			play.NewPlayer("1", geom.Pt(250, 300), 15),
			play.NewPlayer("X1", geom.Pt(250, 250), 15),
		},
		Lines: []play.Annotation{
			{Type: play.Pass, Points: []geom.Point{geom.Pt(250, 300), geom.Pt(100, 300)}},
		},
		Highlight: -1,
	}

	out := CourtView(state, v)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, v.Rows)
	for _, l := range lines {
		assert.Equal(t, v.Cols, lipgloss.Width(l))
	}
	assert.Contains(t, out, "X1")
	assert.Contains(t, out, "←")
}

func TestCourtViewScreenEnd(t *testing.T) {
	v := FitViewport(play.HalfCourt, 0, 0, 60, 20)
	out := CourtView(CourtViewState{
		Court: play.HalfCourt,
		Lines: []play.Annotation{
			{Type: play.Screen, Points: []geom.Point{geom.Pt(100, 100), geom.Pt(200, 100)}},
		},
		Highlight: -1,
	}, v)
	assert.Contains(t, out, "┼")
}
