// assembler.go — Thin PDF assembly sink over go-pdf/fpdf.
//
// The assembler owns no layout logic: the composer decides every coordinate
// and the methods here only translate fills, strokes and bitmap embeds into
// PDF primitives on a single fixed-size page.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mutabaa-app/taqrir/pkg/grading"
)

// Page geometry. A4 in points with a fixed margin; every section
// coordinate derives from this pair.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
	Margin     = 36.0
)

// Document is one single-page report document being assembled.
type Document struct {
	pdf    *fpdf.Fpdf
	imgSeq int
}

// NewDocument opens a fresh A4 page stamped with the given creation time.
// Each report build gets its own document; nothing is shared between
// builds. Catalog sorting keeps the PDF object order stable so the same
// input always serializes to the same bytes.
func NewDocument(created time.Time) *Document {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &Document{pdf: pdf}
}

// FillRect draws a filled rectangle.
func (d *Document) FillRect(x, y, w, h float64, hex string) {
	r, g, b := grading.RGBInts(hex)
	d.pdf.SetFillColor(r, g, b)
	d.pdf.Rect(x, y, w, h, "F")
}

// StrokeRect draws a rectangle outline.
func (d *Document) StrokeRect(x, y, w, h float64, hex string, lineWidth float64) {
	r, g, b := grading.RGBInts(hex)
	d.pdf.SetDrawColor(r, g, b)
	d.pdf.SetLineWidth(lineWidth)
	d.pdf.Rect(x, y, w, h, "D")
}

// RoundedBox draws a rounded rectangle, filled and stroked.
func (d *Document) RoundedBox(x, y, w, h, radius float64, fillHex, borderHex string) {
	fr, fg, fb := grading.RGBInts(fillHex)
	br, bg, bb := grading.RGBInts(borderHex)
	d.pdf.SetFillColor(fr, fg, fb)
	d.pdf.SetDrawColor(br, bg, bb)
	d.pdf.SetLineWidth(0.8)
	d.pdf.RoundedRect(x, y, w, h, radius, "1234", "FD")
}

// Line draws a straight line segment.
func (d *Document) Line(x1, y1, x2, y2 float64, hex string, width float64) {
	r, g, b := grading.RGBInts(hex)
	d.pdf.SetDrawColor(r, g, b)
	d.pdf.SetLineWidth(width)
	d.pdf.Line(x1, y1, x2, y2)
}

// ImagePNG embeds an in-memory PNG at the given rectangle.
func (d *Document) ImagePNG(data []byte, x, y, w, h float64) {
	if len(data) == 0 {
		return
	}
	d.imgSeq++
	name := fmt.Sprintf("img%03d", d.imgSeq)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// Output serializes the finished page. Any drawing error fpdf accumulated
// along the way surfaces here; the build is all-or-nothing.
func (d *Document) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
