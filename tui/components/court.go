package components

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/render"
	"github.com/user/playsketch-cli/tui/styles"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Viewport maps terminal cells onto court coordinates.
type Viewport struct {
	// Left and Top are the screen cell of the court's top-left corner
	Left, Top int
	// Cols and Rows are the size of the court in cells
	Cols, Rows int
	// Width and Height are the size of the court in court units
	Width, Height float64
}

// FitViewport returns the largest viewport that shows court inside the
// cols x rows area at (left, top) with its proportions kept, centred in the area.
func FitViewport(court play.Court, left, top, cols, rows int) Viewport {
	w, h := court.Size()
	v := Viewport{Width: w, Height: h, Cols: 1, Rows: 1, Left: left, Top: top}
	if cols < 1 || rows < 1 {
		return v
	}

	scale := math.Min(float64(cols)/w, float64(rows)*cellAspect/h)
	v.Cols = max(1, int(w*scale))
	v.Rows = max(1, int(h*scale/cellAspect))
	v.Left = left + (cols-v.Cols)/2
	v.Top = top + (rows-v.Rows)/2
	return v
}

// Contains reports whether the screen cell lies on the court.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.Left && x < v.Left+v.Cols && y >= v.Top && y < v.Top+v.Rows
}

// ToCourt converts a screen cell to the court point at the cell's centre.
func (v Viewport) ToCourt(x, y int) geom.Point {
	return geom.Pt(
		(float64(x-v.Left)+0.5)/float64(v.Cols)*v.Width,
		(float64(y-v.Top)+0.5)/float64(v.Rows)*v.Height,
	)
}

// Cell converts a court point to a cell of the court grid, clamped to the grid.
func (v Viewport) Cell(pt geom.Point) (col, row int) {
	col = int(math.Floor(pt.X / v.Width * float64(v.Cols)))
	row = int(math.Floor(pt.Y / v.Height * float64(v.Rows)))
	return min(max(col, 0), v.Cols-1), min(max(row, 0), v.Rows-1)
}

// step is the sampling distance in court units that visits every cell a line crosses.
func (v Viewport) step() float64 {
	return math.Min(v.Width/float64(v.Cols), v.Height/float64(v.Rows)) / 2
}

// CourtViewState is everything the court view draws.
type CourtViewState struct {
	Court   play.Court
	Players []play.Player
	Lines   []play.Annotation
	// Preview is the annotation being drawn, if any
	Preview *play.Annotation
	// Ball is the ball in flight during playback
	Ball *geom.Point
	// Highlight is the index of the player being dragged or deleted, -1 for none
	Highlight int
}

// cell style slots
const (
	slotFloor = iota
	slotMarking
	slotOffense
	slotDefense
	slotHolder
	slotHighlight
	slotBall
	slotPreview
	slotKind // first annotation kind; kinds follow in play.Kinds order
)

// KindColor returns the terminal colour of an annotation kind.
func KindColor(k play.Kind) lipgloss.Color {
	switch k {
	case play.Cut:
		return styles.Cyan
	case play.Dribble:
		return styles.Amber
	case play.Pass:
		return styles.Green
	case play.Screen:
		return styles.Pink
	case play.Shoot:
		return styles.Red
	default:
		return styles.Lavender
	}
}

func kindSlot(k play.Kind) int {
	for i, kk := range play.Kinds {
		if kk == k {
			return slotKind + i
		}
	}
	return slotMarking
}

func kindGlyph(k play.Kind) rune {
	switch k {
	case play.Cut:
		return '•'
	case play.Dribble:
		return '~'
	case play.Pass:
		return '-'
	case play.Screen:
		return '='
	case play.Shoot:
		return '»'
	default:
		return '·'
	}
}

var courtStyles = func() []lipgloss.Style {
	base := lipgloss.NewStyle().Background(styles.Floor)
	s := make([]lipgloss.Style, slotKind+len(play.Kinds))
	s[slotFloor] = base
	s[slotMarking] = base.Foreground(styles.CourtLine)
	s[slotOffense] = styles.Offense.Background(styles.Floor)
	s[slotDefense] = styles.Defense.Background(styles.Floor)
	s[slotHolder] = styles.BallHolder
	s[slotHighlight] = styles.Highlight
	s[slotBall] = base.Foreground(styles.Amber).Bold(true)
	s[slotPreview] = base.Foreground(styles.LightLavender).Bold(true)
	for i, k := range play.Kinds {
		s[slotKind+i] = base.Foreground(KindColor(k))
	}
	return s
}()

// grid is the character canvas behind the court view.
type grid struct {
	v     Viewport
	runes [][]rune
	slots [][]int
}

func newGrid(v Viewport) *grid {
	g := &grid{v: v, runes: make([][]rune, v.Rows), slots: make([][]int, v.Rows)}
	for r := range g.runes {
		g.runes[r] = []rune(strings.Repeat(" ", v.Cols))
		g.slots[r] = make([]int, v.Cols)
	}
	return g
}

func (g *grid) set(col, row int, ch rune, slot int) {
	if row < 0 || row >= len(g.runes) || col < 0 || col >= len(g.runes[row]) {
		return
	}
	g.runes[row][col] = ch
	g.slots[row][col] = slot
}

// path plots a polyline. dash > 0 leaves gaps of that length in court units.
func (g *grid) path(pts []geom.Point, slot int, glyph func(a, b geom.Point) rune, dash float64) {
	step := g.v.step()
	travelled := 0.0
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		n := max(1, int(math.Ceil(geom.Distance(a, b)/step)))
		ch := glyph(a, b)
		for s := 0; s <= n; s++ {
			d := travelled + geom.Distance(a, b)*float64(s)/float64(n)
			if dash > 0 && int(d/dash)%2 == 1 {
				continue
			}
			col, row := g.v.Cell(geom.Lerp(a, b, float64(s)/float64(n)))
			g.set(col, row, ch, slot)
		}
		travelled += geom.Distance(a, b)
	}
}

// text writes s centred on pt.
func (g *grid) text(pt geom.Point, s string, slot int) {
	col, row := g.v.Cell(pt)
	col -= utf8.RuneCountInString(s) / 2
	for i, r := range []rune(s) {
		g.set(col+i, row, r, slot)
	}
}

func (g *grid) String() string {
	lines := make([]string, len(g.runes))
	for r, row := range g.runes {
		var b strings.Builder
		start := 0
		for c := 1; c <= len(row); c++ {
			if c == len(row) || g.slots[r][c] != g.slots[r][start] {
				b.WriteString(courtStyles[g.slots[r][start]].Render(string(row[start:c])))
				start = c
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// markingGlyph picks a box-drawing character that follows the line direction.
func markingGlyph(a, b geom.Point) rune {
	dx, dy := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
	switch {
	case dy < 1e-9 || dx > 2*dy:
		return '─'
	case dx < 1e-9 || dy > 2*dx:
		return '│'
	default:
		return '·'
	}
}

var arrows = []rune("→↘↓↙←↖↑↗")

// Arrow returns the arrow character pointing from a to b.
func Arrow(a, b geom.Point) rune {
	oct := int(math.Round(geom.Angle(a, b) / (math.Pi / 4)))
	return arrows[((oct%8)+8)%8]
}

func (g *grid) annotation(a play.Annotation, slot int) {
	if len(a.Points) < 2 {
		return
	}
	glyph := kindGlyph(a.Type)
	dash := 0.0
	if a.Type == play.Pass {
		dash = 2 * g.v.Width / float64(g.v.Cols)
	}
	g.path(a.Points, slot, func(geom.Point, geom.Point) rune { return glyph }, dash)

	end := a.End()
	prev := a.Points[len(a.Points)-2]
	col, row := g.v.Cell(end)
	if a.Type == play.Screen {
		g.set(col, row, '┼', slot)
		return
	}
	g.set(col, row, Arrow(prev, end), slot)
}

// CourtView draws the court, annotations and players into Rows lines of
// Cols cells.
func CourtView(state CourtViewState, v Viewport) string {
	g := newGrid(v)

	for _, pl := range render.Geometry(state.Court).Polylines(v.step() * 2) {
		g.path(pl, slotMarking, markingGlyph, 0)
	}
	for _, a := range state.Lines {
		g.annotation(a, kindSlot(a.Type))
	}
	if state.Preview != nil {
		g.annotation(*state.Preview, slotPreview)
	}
	for i, p := range state.Players {
		slot := slotDefense
		switch {
		case i == state.Highlight:
			slot = slotHighlight
		case p.HasBall:
			slot = slotHolder
		case p.IsOffense:
			slot = slotOffense
		}
		g.text(p.Pos(), p.Label, slot)
	}
	if state.Ball != nil {
		col, row := v.Cell(*state.Ball)
		g.set(col, row, '●', slotBall)
	}

	return g.String()
}
