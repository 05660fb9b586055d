// color.go — Hex color parsing shared by the raster and PDF layers.
package grading

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses a "#rrggbb" string into channel values.
func ParseColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return uint8(rv), uint8(gv), uint8(bv), nil
}

// ParseHexRGBA converts "#rrggbb" to color.RGBA. Returns opaque black on
// any parse error (safe default for text rendering).
func ParseHexRGBA(hex string) color.RGBA {
	r, g, b, err := ParseColor(hex)
	if err != nil {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{r, g, b, 255}
}

// RGBInts converts "#rrggbb" to int channels for the PDF primitive layer.
// Falls back to black on parse errors.
func RGBInts(hex string) (int, int, int) {
	r, g, b, err := ParseColor(hex)
	if err != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}
