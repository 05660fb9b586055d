// Package textimg rasterizes styled text runs into bitmaps.
//
// The PDF primitive layer cannot shape the product's display text natively,
// so every label and value on a report is measured, wrapped and drawn here
// into a PNG that the composer positions on an absolute coordinate grid.
// Text is rendered at a supersampling scale and reported in layout points
// so the embedded image stays crisp at print resolution.
package textimg

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/mutabaa-app/taqrir/pkg/grading"
)

// Align selects the horizontal anchor for wrapped lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

const (
	// scale is the supersampling factor: surfaces are drawn at scale× and
	// reported at 1× so one layout point covers scale pixels.
	scale = 3

	// lineHeightFactor spaces wrapped lines at size × 1.6.
	lineHeightFactor = 1.6

	// pad is the fixed surface padding in layout points.
	pad = 2.0
)

// Style carries the text appearance for one rasterization.
type Style struct {
	Size     float64 // font size in layout points
	Bold     bool
	Color    string  // "#rrggbb"; empty renders black
	Align    Align
	MaxWidth float64 // wrap width in layout points; <= 0 disables wrapping
}

// Rendered is a finished bitmap plus its size in layout points. Image is
// the supersampled pixel surface backing PNG, kept for callers that
// composite onto another canvas instead of embedding the bytes.
type Rendered struct {
	PNG    []byte
	Image  *image.RGBA
	Width  float64
	Height float64
	Lines  int
}

// Rasterizer renders text runs using a shared FontManager. Safe for
// concurrent use; each call builds its own faces and surface.
type Rasterizer struct {
	fonts *FontManager
}

// NewRasterizer wraps a font manager.
func NewRasterizer(fonts *FontManager) *Rasterizer {
	return &Rasterizer{fonts: fonts}
}

// Render rasterizes text into a PNG bitmap. Empty input still returns a
// minimal non-zero bitmap so callers never branch on a missing image. Any
// failure here is fatal to the whole report build.
func (r *Rasterizer) Render(text string, style Style) (*Rendered, error) {
	if style.Size <= 0 {
		style.Size = 10
	}

	face, err := r.fonts.Face(style.Size*scale, style.Bold)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	maxPx := 0
	if style.MaxWidth > 0 {
		maxPx = int(style.MaxWidth * scale)
	}

	lines := wrap(text, maxPx, face)
	if len(lines) == 0 {
		lines = []string{""}
	}

	// Surface sized to the widest line plus padding.
	padPx := int(pad * scale)
	widest := 1
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > widest {
			widest = w
		}
	}
	lineH := int(style.Size * lineHeightFactor * scale)
	imgW := widest + 2*padPx
	imgH := len(lines)*lineH + 2*padPx

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	col := grading.ParseHexRGBA(style.Color)
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	for i, line := range lines {
		display := visualOrder(line)
		lineW := font.MeasureString(face, display).Ceil()

		x := padPx
		switch style.Align {
		case AlignCenter:
			x = (imgW - lineW) / 2
		case AlignRight:
			x = imgW - padPx - lineW
		}

		// Baseline vertically centered within the line slot.
		top := padPx + i*lineH
		baseline := top + (lineH-(ascent+descent))/2 + ascent

		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(x, baseline),
		}
		drawer.DrawString(display)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode text bitmap: %w", err)
	}

	return &Rendered{
		PNG:    buf.Bytes(),
		Image:  img,
		Width:  float64(imgW) / scale,
		Height: float64(imgH) / scale,
		Lines:  len(lines),
	}, nil
}

// wrap breaks text into lines that each fit within maxWidth pixels using
// the metrics of the provided font face. A single word wider than maxWidth
// is placed on its own line untouched — no mid-word breaking.
func wrap(text string, maxWidth int, face font.Face) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if font.MeasureString(face, testLine).Ceil() > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	lines = append(lines, currentLine)

	return lines
}

// visualOrder rewrites a logical-order line into display order when it
// contains right-to-left runs, reversing the runes inside each RTL run.
func visualOrder(s string) string {
	if !hasRTL(s) {
		return s
	}

	var p bidi.Paragraph
	p.SetString(s)
	ordering, err := p.Order()
	if err != nil {
		return s
	}

	var b strings.Builder
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(reverseRunes(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}

func hasRTL(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) || unicode.Is(unicode.Hebrew, r) {
			return true
		}
	}
	return false
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
