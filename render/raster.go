package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/playback"
)

// Options controls raster output.
type Options struct {
	// Scale is pixels per court unit; zero means 1.
	Scale float64
	// Margin is the border around the court in pixels.
	Margin int
	// Title is drawn in the top-left margin when set.
	Title string
}

// Palette colours, shared with the exporters.
var (
	Floor       = color.RGBA{0xf2, 0xd7, 0xa6, 0xff}
	CourtLine   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Ink         = color.RGBA{0x22, 0x22, 0x22, 0xff}
	OffenseFill = color.RGBA{0x1f, 0x5f, 0xbf, 0xff}
	DefenseFill = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	BallFill    = color.RGBA{0xe6, 0x7e, 0x22, 0xff}
	Background  = color.RGBA{0x2c, 0x3e, 0x50, 0xff}
)

// LineColor returns the stroke colour of an annotation kind.
func LineColor(k play.Kind) color.RGBA {
	switch k {
	case play.Pass:
		return color.RGBA{0x27, 0xae, 0x60, 0xff}
	case play.Dribble:
		return color.RGBA{0x8e, 0x44, 0xad, 0xff}
	case play.Screen:
		return color.RGBA{0x34, 0x49, 0x5e, 0xff}
	case play.Shoot:
		return color.RGBA{0xd3, 0x54, 0x00, 0xff}
	case play.Move:
		return color.RGBA{0x7f, 0x8c, 0x8d, 0xff}
	}
	return Ink
}

const (
	strokeWidth   = 3.0
	courtWidth    = 2.0
	arrowLength   = 14.0
	arrowSpread   = math.Pi / 7
	screenBarHalf = 12.0
	zigzagAmp     = 5.0
	dashLength    = 10.0
	ballRadius    = 6.0
)

// Frame renders a single frame.
func Frame(f *play.Frame, court play.Court, opts Options) *image.RGBA {
	return Scene(playback.Static(f), court, opts)
}

// Scene renders a playback scene: court, annotations, players and ball.
func Scene(s playback.Scene, court play.Court, opts Options) *image.RGBA {
	c := newCanvas(Geometry(court), opts)
	c.court()
	for _, a := range s.Lines {
		c.annotation(a)
	}
	for _, p := range s.Players {
		c.player(p)
	}
	if s.Ball != nil {
		c.begin()
		c.disc(*s.Ball, ballRadius)
		c.fill(BallFill)
	}
	if opts.Title != "" {
		c.text(opts.Title, image.Pt(opts.Margin/2+2, 14), CourtLine)
	}
	return c.img
}

// canvas maps court units to pixels and fills paths through a vector rasterizer.
type canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	geo    Court
	scale  float64
	margin float64
}

func newCanvas(geo Court, opts Options) *canvas {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(geo.Width*scale)) + 2*opts.Margin
	h := int(math.Ceil(geo.Height*scale)) + 2*opts.Margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return &canvas{
		img:    img,
		z:      vector.NewRasterizer(w, h),
		geo:    geo,
		scale:  scale,
		margin: float64(opts.Margin),
	}
}

func (c *canvas) px(p geom.Point) (float32, float32) {
	return float32(c.margin + p.X*c.scale), float32(c.margin + p.Y*c.scale)
}

func (c *canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// polygon adds a closed path, normalised to one winding so overlapping
// shapes in the same fill never cancel out.
func (c *canvas) polygon(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area < 0 {
		rev := make([]geom.Point, len(pts))
		for i := range pts {
			rev[i] = pts[len(pts)-1-i]
		}
		pts = rev
	}
	x, y := c.px(pts[0])
	c.z.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = c.px(p)
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
}

// line adds a stroke of the given width in court units.
func (c *canvas) line(a, b geom.Point, width float64) {
	d := geom.Distance(a, b)
	if d == 0 {
		return
	}
	n := geom.Pt(-(b.Y-a.Y)/d, (b.X-a.X)/d).Scale(width / 2)
	c.polygon([]geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

func (c *canvas) polyline(pts []geom.Point, width float64) {
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i], width)
	}
}

func (c *canvas) dashed(pts []geom.Point, width float64) {
	on := true
	left := dashLength
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := geom.Distance(a, b)
		pos := 0.0
		for pos < seg {
			step := math.Min(left, seg-pos)
			next := geom.Lerp(a, b, (pos+step)/seg)
			if on {
				c.line(geom.Lerp(a, b, pos/seg), next, width)
			}
			pos += step
			left -= step
			if left <= 0 {
				on = !on
				left = dashLength
			}
		}
	}
}

func (c *canvas) disc(center geom.Point, r float64) {
	c.polygon(circle(center, r, 32))
}

func (c *canvas) ring(center geom.Point, r, width float64) {
	pts := circle(center, r, 32)
	c.polyline(append(pts, pts[0]), width)
}

func circle(center geom.Point, r float64, n int) []geom.Point {
	return Arc{Center: center, Radius: r, Start: 0, End: 2 * math.Pi}.Points(n)[:n]
}

func (c *canvas) text(s string, at image.Point, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(s)
}

// label centres s on a court point.
func (c *canvas) label(s string, center geom.Point, col color.Color) {
	x, y := c.px(center)
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Round()
	c.text(s, image.Pt(int(x)-w/2, int(y)+face.Ascent/2-1), col)
}

func (c *canvas) court() {
	c.begin()
	c.polygon([]geom.Point{{}, geom.Pt(c.geo.Width, 0), geom.Pt(c.geo.Width, c.geo.Height), geom.Pt(0, c.geo.Height)})
	c.fill(Floor)

	c.begin()
	for _, pl := range c.geo.Polylines(4) {
		c.polyline(pl, courtWidth)
	}
	c.fill(CourtLine)
}

func (c *canvas) annotation(a play.Annotation) {
	if !a.Valid() {
		return
	}
	pts := a.Points
	c.begin()
	switch a.Type {
	case play.Pass:
		c.dashed(pts, strokeWidth)
		c.arrowhead(pts)
	case play.Dribble:
		for i := 1; i < len(pts); i++ {
			if i == len(pts)-1 {
				// keep the last stretch straight so the arrowhead reads cleanly
				head := geom.Lerp(pts[i], pts[i-1], math.Min(1, arrowLength/math.Max(geom.Distance(pts[i-1], pts[i]), 1)))
				c.polyline(geom.ZigzagOffsets(pts[i-1], head, zigzagAmp, geom.DefaultWavelength), strokeWidth)
				c.line(head, pts[i], strokeWidth)
				continue
			}
			c.polyline(geom.ZigzagOffsets(pts[i-1], pts[i], zigzagAmp, geom.DefaultWavelength), strokeWidth)
		}
		c.arrowhead(pts)
	case play.Screen:
		c.polyline(pts, strokeWidth)
		c.screenBar(pts)
	case play.Shoot:
		c.polyline(pts, strokeWidth*1.5)
		c.arrowhead(pts)
	default:
		c.polyline(pts, strokeWidth)
		c.arrowhead(pts)
	}
	c.fill(LineColor(a.Type))
}

// arrowhead adds a filled triangle at the end of the path, oriented along the
// final segment.
func (c *canvas) arrowhead(pts []geom.Point) {
	tip := pts[len(pts)-1]
	from := pts[len(pts)-2]
	back := geom.Angle(tip, from)
	l := tip.Add(geom.Pt(math.Cos(back-arrowSpread), math.Sin(back-arrowSpread)).Scale(arrowLength))
	r := tip.Add(geom.Pt(math.Cos(back+arrowSpread), math.Sin(back+arrowSpread)).Scale(arrowLength))
	c.polygon([]geom.Point{tip, l, r})
}

// screenBar adds the perpendicular bar that ends a screen.
func (c *canvas) screenBar(pts []geom.Point) {
	tip := pts[len(pts)-1]
	a := geom.Angle(pts[len(pts)-2], tip) + math.Pi/2
	off := geom.Pt(math.Cos(a), math.Sin(a)).Scale(screenBarHalf)
	c.line(tip.Add(off), tip.Sub(off), strokeWidth*1.5)
}

func (c *canvas) player(p play.Player) {
	center := p.Pos()
	r := p.Radius
	if r <= 0 {
		r = play.DefaultRadius
	}

	c.begin()
	if p.IsOffense {
		c.disc(center, r)
		c.fill(OffenseFill)
		c.label(p.Label, center, CourtLine)
	} else {
		c.disc(center, r)
		c.fill(CourtLine)
		c.begin()
		c.ring(center, r, strokeWidth)
		c.fill(DefenseFill)
		c.label(p.Label, center, DefenseFill)
	}

	if p.HasBall {
		c.begin()
		c.disc(center.Add(geom.Pt(r*0.8, -r*0.8)), ballRadius)
		c.fill(BallFill)
	}
}
