package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/mutabaa-app/taqrir/pkg/textimg"
)

func newTestRadar(t *testing.T) *Radar {
	t.Helper()
	fonts, err := textimg.NewFontManager("", "")
	if err != nil {
		t.Fatalf("font manager: %v", err)
	}
	return NewRadar(textimg.NewRasterizer(fonts))
}

func TestRender_Size(t *testing.T) {
	r := newTestRadar(t)

	rd, err := r.Render([]Category{
		{Label: "Participation", Value: 100},
		{Label: "Homework", Value: 75},
		{Label: "Behavior", Value: 50},
	}, 140, 140)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if rd.Width != 140 || rd.Height != 140 {
		t.Errorf("expected 140x140 layout size, got %vx%v", rd.Width, rd.Height)
	}

	img, err := png.Decode(bytes.NewReader(rd.PNG))
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 140*scale {
		t.Errorf("expected %d px wide surface, got %d", 140*scale, img.Bounds().Dx())
	}
}

// Labels render even when every value is zero; the polygon simply
// collapses to the center.
func TestRender_ZeroValues(t *testing.T) {
	r := newTestRadar(t)

	rd, err := r.Render([]Category{
		{Label: "Participation"},
		{Label: "Homework"},
		{Label: "Behavior"},
	}, 120, 120)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(rd.PNG) == 0 {
		t.Error("expected a non-empty bitmap for all-zero values")
	}
}

func TestRender_NoCategories(t *testing.T) {
	r := newTestRadar(t)
	if _, err := r.Render(nil, 120, 120); err == nil {
		t.Error("expected an error for zero categories")
	}
}

func TestRender_ClampsOutOfRange(t *testing.T) {
	r := newTestRadar(t)
	if _, err := r.Render([]Category{
		{Label: "A", Value: -40},
		{Label: "B", Value: 900},
		{Label: "C", Value: 50},
	}, 120, 120); err != nil {
		t.Fatalf("out-of-range values must clamp, not fail: %v", err)
	}
}
