package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/render"
)

func samplePlay() *play.Play {
	p := play.New("Horns Twist", play.HalfCourt)
	f := p.Current()
	a := f.AddPlayer(play.NewPlayer("1", geom.Pt(250, 380), 0))
	f.AddPlayer(play.NewPlayer("4", geom.Pt(180, 200), 0))
	f.AddPlayer(play.NewPlayer("X1", geom.Pt(250, 340), 0))
	f.GiveBall(a)
	f.AddLine(play.Annotation{Type: play.Dribble, PlayerID: f.Players[a].ID,
		Points: []geom.Point{geom.Pt(250, 380), geom.Pt(320, 300)}})
	f.Notes = "1 dribbles off the horns screen"
	p.AddFrame()
	p.AddFrame()
	return p
}

func TestBuildExportPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "Horns_Twist.pdf"), BuildExportPath("out", "Horns Twist", PDF))
	assert.Equal(t, filepath.Join("out", "a_b_c.gif"), BuildExportPath("out", "a/b:c", GIF))
	assert.Equal(t, filepath.Join("out", "Untitled_Play.gif"), BuildExportPath("out", "  ", GIF))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("GIF")
	require.NoError(t, err)
	assert.Equal(t, GIF, f)

	_, err = ParseFormat("mp4")
	assert.Error(t, err)
}

func TestRenderFrames_OrderAndProgress(t *testing.T) {
	p := samplePlay()
	var calls atomic.Int32

	images, err := RenderFrames(context.Background(), p, 0.5, func(done, total int) {
		calls.Add(1)
		assert.Equal(t, 3, total)
		assert.LessOrEqual(t, done, total)
	})

	require.NoError(t, err)
	require.Len(t, images, 3)
	for _, img := range images {
		require.NotNil(t, img)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestRenderFrames_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderFrames(ctx, samplePlay(), 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteGIF(t *testing.T) {
	p := samplePlay()
	images, err := RenderFrames(context.Background(), p, 0.5, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, images, 1500*time.Millisecond))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{150, 150, 150}, g.Delay)
	assert.Equal(t, images[0].Bounds(), g.Image[0].Bounds())
}

func TestWriteGIF_Dithers(t *testing.T) {
	// render.Floor is in the palette, the other colour is not
	flat := image.NewRGBA(image.Rect(0, 0, 32, 32))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(render.Floor), image.Point{}, draw.Src)
	odd := image.NewRGBA(image.Rect(0, 0, 32, 32))
	draw.Draw(odd, odd.Bounds(), image.NewUniform(color.RGBA{0x5a, 0xa0, 0x13, 0xff}), image.Point{}, draw.Src)

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, []*image.RGBA{flat, odd}, time.Second))
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)

	assert.Len(t, distinctIndices(g.Image[0]), 1)
	assert.Greater(t, len(distinctIndices(g.Image[1])), 1)
}

func distinctIndices(pm *image.Paletted) map[uint8]bool {
	seen := make(map[uint8]bool)
	for _, idx := range pm.Pix {
		seen[idx] = true
	}
	return seen
}

func TestWriteGIF_Empty(t *testing.T) {
	assert.Error(t, WriteGIF(&bytes.Buffer{}, nil, time.Second))
}

func TestWritePDF_OnePagePerFrame(t *testing.T) {
	p := samplePlay()
	images, err := RenderFrames(context.Background(), p, 0.5, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, p, images))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
	assert.Equal(t, 3, strings.Count(out, "/Type /Page\n"))
}

func TestWritePDF_MismatchedImages(t *testing.T) {
	p := samplePlay()
	assert.Error(t, WritePDF(&bytes.Buffer{}, p, nil))
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	p := samplePlay()

	gifPath := filepath.Join(dir, "nested", "play.gif")
	require.NoError(t, File(context.Background(), p, GIF, gifPath, Options{Scale: 0.25}, nil))
	info, err := os.Stat(gifPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	pdfPath := filepath.Join(dir, "play.pdf")
	require.NoError(t, File(context.Background(), p, PDF, pdfPath, Options{Scale: 0.25}, nil))
	_, err = os.Stat(pdfPath)
	assert.NoError(t, err)
}
