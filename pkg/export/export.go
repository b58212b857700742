package export

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/render"
)

// Format is an export target.
type Format string

const (
	PDF Format = "pdf"
	GIF Format = "gif"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case PDF:
		return PDF, nil
	case GIF:
		return GIF, nil
	}
	return "", fmt.Errorf("unknown export format %q (want pdf or gif)", s)
}

// DefaultInterval is the time each frame is shown in an animated export.
const DefaultInterval = time.Second

// Options controls an export.
type Options struct {
	// Scale is pixels per court unit.
	Scale float64
	// Interval is the per-frame delay of a GIF.
	Interval time.Duration
}

// Progress is called after each frame is rendered. It may be called from
// several goroutines.
type Progress func(done, total int)

// unsafeChars matches characters not safe for filenames: / \ : * ? < > | and spaces
var unsafeChars = regexp.MustCompile(`[/\\:*?<>|\s]`)

// sanitize replaces unsafe filename characters with underscores.
func sanitize(s string) string {
	return unsafeChars.ReplaceAllString(s, "_")
}

// BuildExportPath returns the output path for a play export.
// Format: {dir}/{playName}.{format}
func BuildExportPath(dir, playName string, format Format) string {
	name := sanitize(strings.TrimSpace(playName))
	if name == "" {
		name = sanitize(play.DefaultName)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, format))
}

// RenderFrames rasterises every frame of p in parallel, preserving order.
func RenderFrames(ctx context.Context, p *play.Play, scale float64, progress Progress) ([]*image.RGBA, error) {
	total := p.Len()
	images := make([]*image.RGBA, total)
	var done atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range p.Frames {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			images[i] = render.Frame(&p.Frames[i], p.Court, render.Options{
				Scale:  scale,
				Margin: 20,
				Title:  fmt.Sprintf("%s  %d/%d", p.Name, i+1, total),
			})
			n := int(done.Add(1))
			if progress != nil {
				progress(n, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// File renders p and writes it to path in the given format.
func File(ctx context.Context, p *play.Play, format Format, path string, opts Options, progress Progress) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	images, err := RenderFrames(ctx, p, opts.Scale, progress)
	if err != nil {
		return fmt.Errorf("failed to render frames: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	switch format {
	case GIF:
		err = WriteGIF(f, images, opts.Interval)
	default:
		err = WritePDF(f, p, images)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("%s export failed: %w", format, err)
	}
	return nil
}
