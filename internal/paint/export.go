package paint

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfMargin is the page margin in millimetres.
const pdfMargin = 10.0

// EncodePNG writes the surface raster as PNG.
func EncodePNG(w io.Writer, s *Surface) error {
	if s == nil || s.img == nil {
		return fmt.Errorf("encode png: empty surface")
	}
	return png.Encode(w, s.img)
}

// WritePDF renders the surface onto a single A4 landscape page, scaled to fit inside the
// margins and centred.
func WritePDF(w io.Writer, s *Surface, title string) error {
	pdf, err := newPDF(s, title)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// ExportPDF is [WritePDF] to a file at path.
func ExportPDF(path string, s *Surface, title string) error {
	pdf, err := newPDF(s, title)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

func newPDF(s *Surface, title string) (*gofpdf.Fpdf, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		return nil, err
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle(title, true)
	p.AddPage()

	const name = "canvas"
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(name, opts, &buf)

	pw, ph := p.GetPageSize()
	availW, availH := pw-2*pdfMargin, ph-2*pdfMargin
	scale := min(availW/float64(s.Width()), availH/float64(s.Height()))
	iw, ih := float64(s.Width())*scale, float64(s.Height())*scale
	p.ImageOptions(name, (pw-iw)/2, (ph-ih)/2, iw, ih, false, opts, 0, "")

	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return p, nil
}
