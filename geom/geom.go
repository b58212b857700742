// Package geom provides the 2D point math used by the play model, the playback
// engine and the renderers.
package geom

import "math"

// DefaultWavelength is the distance covered by one full zigzag period of a dribble stroke.
const DefaultWavelength = 15.0

// Point is a position in court coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Angle returns the direction from one point to another in radians.
func Angle(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// PointOnPath returns the position at progress along a path of n points treated as
// n-1 equal-duration linear segments. Progress is clamped to [0, 1]. A single point
// path returns that point and an empty path returns the origin.
func PointOnPath(path []Point, progress float64) Point {
	switch len(path) {
	case 0:
		return Point{}
	case 1:
		return path[0]
	}

	progress = Clamp01(progress)
	if progress == 1 {
		return path[len(path)-1]
	}
	segments := len(path) - 1
	scaled := progress * float64(segments)
	idx := int(math.Floor(scaled))
	if idx >= segments {
		idx = segments - 1
	}
	return Lerp(path[idx], path[idx+1], scaled-float64(idx))
}

// ZigzagOffsets returns the vertices of a zigzag running from start to end. A vertex
// is placed every half wavelength, alternating amplitude on either side of the line.
// The first and last vertices are exactly start and end.
func ZigzagOffsets(start, end Point, amplitude, wavelength float64) []Point {
	if wavelength <= 0 {
		wavelength = DefaultWavelength
	}
	length := Distance(start, end)
	if length == 0 {
		return []Point{start, end}
	}

	steps := int(length / (wavelength / 2))
	if steps < 1 {
		return []Point{start, end}
	}

	// unit perpendicular to the stroke
	nx := -(end.Y - start.Y) / length
	ny := (end.X - start.X) / length

	pts := make([]Point, 0, steps+1)
	pts = append(pts, start)
	for i := 1; i < steps; i++ {
		base := Lerp(start, end, float64(i)/float64(steps))
		side := amplitude
		if i%2 == 0 {
			side = -amplitude
		}
		pts = append(pts, Point{X: base.X + nx*side, Y: base.Y + ny*side})
	}
	pts = append(pts, end)
	return pts
}

// PathLength returns the summed length of the path's segments.
func PathLength(path []Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}
