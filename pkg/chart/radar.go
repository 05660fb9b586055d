// Package chart draws the report's radar chart onto a raster surface.
//
// The chart is rendered at the same supersampling scale as the text layer
// and embedded into the page as a bitmap, like every other visual element.
package chart

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/fogleman/gg"

	"github.com/mutabaa-app/taqrir/pkg/grading"
	"github.com/mutabaa-app/taqrir/pkg/textimg"
)

// Category is one radar axis: a label and a 0–100 value.
type Category struct {
	Label string
	Value float64
}

const (
	// scale matches the text rasterizer's supersampling factor so label
	// bitmaps composite 1:1 onto the chart surface.
	scale = 3

	gridRings   = 4
	labelMargin = 24.0 // layout points reserved outside the outer ring

	polygonColor = "#3b82f6"
	gridColor    = "#d1d5db"
	spokeColor   = "#9ca3af"
)

// Radar renders the three-axis performance chart.
type Radar struct {
	raster *textimg.Rasterizer
}

// NewRadar builds a radar renderer that rasterizes labels through the
// given text rasterizer.
func NewRadar(raster *textimg.Rasterizer) *Radar {
	return &Radar{raster: raster}
}

// Render draws the radar chart at the given layout size and returns the
// bitmap. Values are clamped to [0,100]. Labels are always drawn, including
// for zero values; substituting a "no data" placeholder for non-present
// records is the caller's decision, not the renderer's.
func (r *Radar) Render(categories []Category, widthPt, heightPt float64) (*textimg.Rendered, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("radar: no categories")
	}

	w := int(widthPt * scale)
	h := int(heightPt * scale)
	dc := gg.NewContext(w, h)

	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := math.Min(cx, cy) - labelMargin*scale

	n := len(categories)
	angle := func(i int) float64 {
		// First category at the top, proceeding clockwise (screen
		// coordinates have y pointing down).
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i int, dist float64) (float64, float64) {
		a := angle(i)
		return cx + dist*math.Cos(a), cy + dist*math.Sin(a)
	}

	// Concentric grid rings.
	ringR, ringG, ringB := grading.RGBInts(gridColor)
	dc.SetRGB255(ringR, ringG, ringB)
	dc.SetLineWidth(1 * scale)
	for ring := 1; ring <= gridRings; ring++ {
		dc.DrawCircle(cx, cy, radius*float64(ring)/float64(gridRings))
		dc.Stroke()
	}

	// Radial spokes.
	sr, sg, sb := grading.RGBInts(spokeColor)
	dc.SetRGB255(sr, sg, sb)
	for i := 0; i < n; i++ {
		x, y := point(i, radius)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
	}

	// Value polygon, filled with partial opacity then stroked.
	pr, pg, pb := grading.RGBInts(polygonColor)
	for i := 0; i < n; i++ {
		v := math.Max(0, math.Min(100, categories[i].Value))
		x, y := point(i, radius*v/100)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetRGBA255(pr, pg, pb, 64)
	dc.FillPreserve()
	dc.SetRGB255(pr, pg, pb)
	dc.SetLineWidth(2 * scale)
	dc.Stroke()

	// Labels just outside the outer ring.
	for i, cat := range categories {
		rendered, err := r.raster.Render(cat.Label, textimg.Style{
			Size:  9,
			Bold:  true,
			Color: "#374151",
			Align: textimg.AlignCenter,
		})
		if err != nil {
			return nil, fmt.Errorf("radar label %q: %w", cat.Label, err)
		}
		x, y := point(i, radius+labelMargin*scale/2)
		dc.DrawImageAnchored(rendered.Image, int(x), int(y), 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode radar chart: %w", err)
	}

	return &textimg.Rendered{
		PNG:    buf.Bytes(),
		Width:  widthPt,
		Height: heightPt,
	}, nil
}
