package textimg

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"
)

func newTestRasterizer(t *testing.T) *Rasterizer {
	t.Helper()
	fonts, err := NewFontManager("", "")
	if err != nil {
		t.Fatalf("font manager: %v", err)
	}
	return NewRasterizer(fonts)
}

func TestRender_SingleLine(t *testing.T) {
	r := newTestRasterizer(t)

	rd, err := r.Render("hello world", Style{Size: 10})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rd.Lines != 1 {
		t.Errorf("expected 1 line, got %d", rd.Lines)
	}
	if rd.Width <= 0 || rd.Height <= 0 {
		t.Errorf("expected positive layout size, got %vx%v", rd.Width, rd.Height)
	}
	if _, err := png.Decode(bytes.NewReader(rd.PNG)); err != nil {
		t.Errorf("output is not decodable PNG: %v", err)
	}
}

func TestRender_WrapsLongText(t *testing.T) {
	r := newTestRasterizer(t)

	text := strings.Repeat("word ", 30)
	rd, err := r.Render(text, Style{Size: 10, MaxWidth: 100})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rd.Lines < 2 {
		t.Errorf("expected wrapped text to span >= 2 lines, got %d", rd.Lines)
	}
}

// A single token wider than MaxWidth gets its own line; no mid-word
// breaking and no infinite loop.
func TestRender_UnbreakableToken(t *testing.T) {
	r := newTestRasterizer(t)

	token := strings.Repeat("x", 120)
	rd, err := r.Render(token, Style{Size: 10, MaxWidth: 40})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rd.Lines != 1 {
		t.Errorf("expected the unbreakable token on exactly 1 line, got %d", rd.Lines)
	}
}

// Empty input still yields a minimal decodable bitmap so callers never
// branch on a missing image.
func TestRender_EmptyText(t *testing.T) {
	r := newTestRasterizer(t)

	rd, err := r.Render("", Style{Size: 10})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rd.Width <= 0 || rd.Height <= 0 {
		t.Errorf("expected non-zero bitmap, got %vx%v", rd.Width, rd.Height)
	}
	img, err := png.Decode(bytes.NewReader(rd.PNG))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() < 1 || img.Bounds().Dy() < 1 {
		t.Errorf("expected pixel bounds >= 1, got %v", img.Bounds())
	}
}

func TestRender_SupersampledSize(t *testing.T) {
	r := newTestRasterizer(t)

	rd, err := r.Render("metrics", Style{Size: 12})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(rd.PNG))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Pixel surface is scale× the reported layout size.
	if got := float64(img.Bounds().Dx()); math.Abs(got-rd.Width*scale) > 1e-6 {
		t.Errorf("pixel width %v is not %dx layout width %v", got, scale, rd.Width)
	}
	if got := float64(img.Bounds().Dy()); math.Abs(got-rd.Height*scale) > 1e-6 {
		t.Errorf("pixel height %v is not %dx layout height %v", got, scale, rd.Height)
	}
}

func TestWrap_Greedy(t *testing.T) {
	if got := wrap("   ", 100, nil); got != nil {
		t.Errorf("whitespace-only input: expected nil, got %v", got)
	}
}

func TestVisualOrder_LatinUntouched(t *testing.T) {
	if got := visualOrder("plain ascii line"); got != "plain ascii line" {
		t.Errorf("latin text must pass through unchanged, got %q", got)
	}
}

func TestVisualOrder_RTLReversed(t *testing.T) {
	// Two Arabic words: logical order must be reversed rune-wise within
	// the RTL run for display.
	in := "سلام"
	got := visualOrder(in)
	want := "مالس"
	if got != want {
		t.Errorf("expected reversed runes %q, got %q", want, got)
	}
}
