package export

import (
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/render"
)

// gifPalette puts the renderer's exact colours first so flat areas stay flat.
var gifPalette = func() color.Palette {
	p := color.Palette{
		render.Background, render.Floor, render.CourtLine, render.Ink,
		render.OffenseFill, render.DefenseFill, render.BallFill,
	}
	for _, k := range play.Kinds {
		p = append(p, render.LineColor(k))
	}
	return append(p, palette.Plan9[:256-len(p)]...)
}()

// WriteGIF writes the images as an animated GIF showing each for interval.
func WriteGIF(w io.Writer, images []*image.RGBA, interval time.Duration) error {
	if len(images) == 0 {
		return errors.New("no frames to export")
	}
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{LoopCount: 0}
	for _, img := range images {
		b := img.Bounds()
		pm := image.NewPaletted(b, gifPalette)
		draw.FloydSteinberg.Draw(pm, b, img, b.Min)
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}
