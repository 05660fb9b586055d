// fonts.go — Font management with custom TTF support and embedded fallback
// fonts. Uses golang.org/x/image/font for OpenType rendering. Defaults to
// the Go Regular/Bold fonts when no custom font is specified or when custom
// font loading fails.
package textimg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager parses the regular and bold faces once and mints sized
// font.Face values on demand. Faces are created per call because a Face
// carries mutable rasterization buffers and must not be shared across
// concurrent report builds.
type FontManager struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewFontManager loads the report fonts. Either path may be empty to use
// the embedded Go fonts; an unreadable custom font degrades to the embedded
// fallback rather than failing the build.
func NewFontManager(regularPath, boldPath string) (*FontManager, error) {
	regular, err := loadFont(regularPath, goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("regular font: %w", err)
	}
	bold, err := loadFont(boldPath, gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("bold font: %w", err)
	}
	return &FontManager{regular: regular, bold: bold}, nil
}

func loadFont(customPath string, fallback []byte) (*opentype.Font, error) {
	data := fallback
	if customPath != "" {
		custom, err := os.ReadFile(customPath)
		if err == nil {
			data = custom
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return parsed, nil
}

// Face returns a freshly built face at the given pixel size.
func (fm *FontManager) Face(size float64, bold bool) (font.Face, error) {
	src := fm.regular
	if bold {
		src = fm.bold
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
