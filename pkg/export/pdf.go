package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/playsketch-cli/play"
)

const (
	pageMargin = 12.0
	titleSize  = 16.0
	notesSize  = 11.0
)

// WritePDF writes one landscape page per frame: the play name and frame number,
// the rendered court, then the frame notes.
func WritePDF(w io.Writer, p *play.Play, images []*image.RGBA) error {
	if len(images) != p.Len() {
		return fmt.Errorf("have %d images for %d frames", len(images), p.Len())
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(p.Name, true)
	pdf.SetCreator("playsketch", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	for i, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode frame %d: %w", i+1, err)
		}
		name := fmt.Sprintf("frame-%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)

		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", titleSize)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s - frame %d of %d", p.Name, i+1, len(images))), "", 1, "L", false, 0, "")

		// fit the image into the area between title and notes, keeping aspect
		boxW := pageW - 2*pageMargin
		boxH := pageH - 2*pageMargin - 10 - 30
		b := img.Bounds()
		imgW, imgH := boxW, boxW*float64(b.Dy())/float64(b.Dx())
		if imgH > boxH {
			imgW, imgH = boxH*float64(b.Dx())/float64(b.Dy()), boxH
		}
		x := (pageW - imgW) / 2
		y := pdf.GetY() + 2
		pdf.ImageOptions(name, x, y, imgW, imgH, false, opts, 0, "")

		notes := p.Frames[i].Notes
		if notes != "" {
			pdf.SetXY(pageMargin, y+imgH+4)
			pdf.SetFont("Helvetica", "", notesSize)
			pdf.MultiCell(boxW, 5, tr(notes), "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
