// Package render draws frames and playback scenes. Court markings are
// described once in court units and shared by the raster renderer and the
// terminal court view.
package render

import (
	"math"

	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
)

// Segment is a straight court marking.
type Segment struct {
	A, B geom.Point
}

// Arc is a circular court marking between two angles in radians, measured
// counter-clockwise from the positive x axis.
type Arc struct {
	Center     geom.Point
	Radius     float64
	Start, End float64
}

// Points samples the arc into a polyline of n+1 points.
func (a Arc) Points(n int) []geom.Point {
	if n < 1 {
		n = 1
	}
	pts := make([]geom.Point, n+1)
	for i := 0; i <= n; i++ {
		t := a.Start + (a.End-a.Start)*float64(i)/float64(n)
		pts[i] = geom.Pt(a.Center.X+a.Radius*math.Cos(t), a.Center.Y+a.Radius*math.Sin(t))
	}
	return pts
}

// Court holds the markings of a court variant in court units.
type Court struct {
	Width, Height float64
	Segments      []Segment
	Arcs          []Arc
	// Baskets are rim centres.
	Baskets []geom.Point
}

const (
	rimRadius        = 7.5
	basketOffset     = 52.5
	backboardOffset  = 40
	backboardHalf    = 30
	keyWidth         = 160
	keyLength        = 190
	freeThrowRadius  = 60
	threeRadius      = 237.5
	cornerThreeInset = 30
	cornerThreeDepth = 140
	restrictedRadius = 40
	centerRadius     = 60
)

// Geometry returns the markings for a court variant. The half court has the
// baseline at y=0; the full court runs baseline to baseline along x.
func Geometry(c play.Court) Court {
	if c == play.FullCourt {
		return fullCourt()
	}
	return halfCourt()
}

func halfCourt() Court {
	w, h := play.HalfCourt.Size()
	cx := w / 2
	basket := geom.Pt(cx, basketOffset)
	ct := Court{Width: w, Height: h, Baskets: []geom.Point{basket}}

	ct.Segments = append(ct.Segments, rect(0, 0, w, h)...)
	ct.Segments = append(ct.Segments, rect(cx-keyWidth/2, 0, keyWidth, keyLength)...)
	ct.Segments = append(ct.Segments,
		Segment{geom.Pt(cx-backboardHalf, backboardOffset), geom.Pt(cx+backboardHalf, backboardOffset)},
		Segment{geom.Pt(cornerThreeInset, 0), geom.Pt(cornerThreeInset, cornerThreeDepth)},
		Segment{geom.Pt(w-cornerThreeInset, 0), geom.Pt(w-cornerThreeInset, cornerThreeDepth)},
	)

	// the arc meets the corner lines where x = inset
	meet := math.Acos((cx - cornerThreeInset) / threeRadius)
	ct.Arcs = append(ct.Arcs,
		Arc{Center: basket, Radius: rimRadius, Start: 0, End: 2 * math.Pi},
		Arc{Center: basket, Radius: restrictedRadius, Start: 0, End: math.Pi},
		Arc{Center: geom.Pt(cx, keyLength), Radius: freeThrowRadius, Start: 0, End: 2 * math.Pi},
		Arc{Center: basket, Radius: threeRadius, Start: meet, End: math.Pi - meet},
		Arc{Center: geom.Pt(cx, h), Radius: centerRadius, Start: math.Pi, End: 2 * math.Pi},
	)
	return ct
}

func fullCourt() Court {
	w, h := play.FullCourt.Size()
	cy := h / 2
	left := geom.Pt(basketOffset, cy)
	right := geom.Pt(w-basketOffset, cy)
	ct := Court{Width: w, Height: h, Baskets: []geom.Point{left, right}}

	ct.Segments = append(ct.Segments, rect(0, 0, w, h)...)
	ct.Segments = append(ct.Segments, Segment{geom.Pt(w/2, 0), geom.Pt(w/2, h)})
	ct.Arcs = append(ct.Arcs, Arc{Center: geom.Pt(w/2, cy), Radius: centerRadius, Start: 0, End: 2 * math.Pi})

	meet := math.Asin((cy - cornerThreeInset) / threeRadius)
	for _, end := range []struct {
		basket   geom.Point
		baseline float64
		dir      float64
		facing   float64
	}{
		{left, 0, 1, 0},
		{right, w, -1, math.Pi},
	} {
		b := end.basket
		keyX := end.baseline
		if end.dir < 0 {
			keyX = w - keyLength
		}
		ft := geom.Pt(end.baseline+end.dir*keyLength, cy)
		board := end.baseline + end.dir*backboardOffset
		depth := end.baseline + end.dir*cornerThreeDepth

		ct.Segments = append(ct.Segments, rect(keyX, cy-keyWidth/2, keyLength, keyWidth)...)
		ct.Segments = append(ct.Segments,
			Segment{geom.Pt(board, cy-backboardHalf), geom.Pt(board, cy+backboardHalf)},
			Segment{geom.Pt(end.baseline, cornerThreeInset), geom.Pt(depth, cornerThreeInset)},
			Segment{geom.Pt(end.baseline, h-cornerThreeInset), geom.Pt(depth, h-cornerThreeInset)},
		)
		ct.Arcs = append(ct.Arcs,
			Arc{Center: b, Radius: rimRadius, Start: 0, End: 2 * math.Pi},
			Arc{Center: b, Radius: restrictedRadius, Start: end.facing - math.Pi/2, End: end.facing + math.Pi/2},
			Arc{Center: ft, Radius: freeThrowRadius, Start: 0, End: 2 * math.Pi},
			Arc{Center: b, Radius: threeRadius, Start: end.facing - meet, End: end.facing + meet},
		)
	}
	return ct
}

func rect(x, y, w, h float64) []Segment {
	a, b := geom.Pt(x, y), geom.Pt(x+w, y)
	c, d := geom.Pt(x+w, y+h), geom.Pt(x, y+h)
	return []Segment{{a, b}, {b, c}, {c, d}, {d, a}}
}

// Polylines flattens every marking into polylines, sampling arcs at roughly
// one point per step court units.
func (c Court) Polylines(step float64) [][]geom.Point {
	if step <= 0 {
		step = 5
	}
	lines := make([][]geom.Point, 0, len(c.Segments)+len(c.Arcs))
	for _, s := range c.Segments {
		lines = append(lines, []geom.Point{s.A, s.B})
	}
	for _, a := range c.Arcs {
		n := int(math.Ceil(math.Abs(a.End-a.Start) * a.Radius / step))
		lines = append(lines, a.Points(n))
	}
	return lines
}
