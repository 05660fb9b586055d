// footer.go — Conditional text blocks and the signature/stamp footer.
package report

import (
	"context"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/textimg"
)

// maxBlockRunes bounds the notes/message blocks so their measured height
// can never push a section into the footer.
const maxBlockRunes = 360

// drawTextBlock renders a titled free-text panel. The block is skipped
// entirely when it would not fit above limitY; the cursor then stays put.
func (c *Composer) drawTextBlock(doc *Document, title, body string, y, limitY float64) (float64, error) {
	body = truncateRunes(body, maxBlockRunes)

	rd, err := c.raster.Render(body, textimg.Style{Size: 9, Color: colorText, MaxWidth: contentWidth - 24})
	if err != nil {
		return 0, err
	}

	const titleH = 16.0
	blockH := titleH + rd.Height + 16
	if y+blockH > limitY {
		return y, nil
	}

	doc.RoundedBox(Margin, y, contentWidth, blockH, 6, colorPanel, colorBorder)
	if _, err := c.text(doc, title, textimg.Style{Size: 9, Bold: true, Color: colorPrimary}, Margin+12, y+6); err != nil {
		return 0, err
	}
	doc.ImagePNG(rd.PNG, Margin+12, y+titleH+6, rd.Width, rd.Height)

	return y + blockH, nil
}

// drawFooter renders the fixed-position signature strip: two signature
// placeholders, a centered stamp (falling back to a QR of the school link,
// then to a plain placeholder box) and the bottom slogan/contact line.
func (c *Composer) drawFooter(ctx context.Context, doc *Document, in *domain.Input, y float64) error {
	doc.Line(Margin, y, PageWidth-Margin, y, colorDivider, 1)
	y += 10

	const sigWidth = 130.0
	sigY := y + 34

	// Left signature.
	doc.Line(Margin, sigY, Margin+sigWidth, sigY, colorMuted, 0.8)
	if _, err := c.textAnchored(doc, "Class Teacher", textimg.Style{Size: 8, Color: colorMuted, Align: textimg.AlignCenter}, Margin+sigWidth/2, sigY+4); err != nil {
		return err
	}

	// Right signature.
	counselor := in.Settings.CounselorName
	if counselor == "" {
		counselor = "Counselor"
	}
	sigX := PageWidth - Margin - sigWidth
	doc.Line(sigX, sigY, sigX+sigWidth, sigY, colorMuted, 0.8)
	if _, err := c.textAnchored(doc, counselor, textimg.Style{Size: 8, Color: colorMuted, Align: textimg.AlignCenter}, sigX+sigWidth/2, sigY+4); err != nil {
		return err
	}

	// Centered stamp → QR → placeholder.
	const stampSize = 52.0
	stampX := PageWidth/2 - stampSize/2
	switch {
	case c.drawStamp(ctx, doc, in.Settings.StampRef, stampX, y, stampSize):
	case c.drawQR(doc, in.Settings.Link, stampX, y, stampSize):
	default:
		doc.RoundedBox(stampX, y, stampSize, stampSize, 4, colorPanel, colorBorder)
		if _, err := c.textAnchored(doc, "Stamp", textimg.Style{Size: 7, Color: colorMuted, Align: textimg.AlignCenter}, PageWidth/2, y+stampSize/2-6); err != nil {
			return err
		}
	}

	// Bottom info strip.
	stripY := y + 62
	if in.Settings.Slogan != "" {
		if _, err := c.textAnchored(doc, in.Settings.Slogan, textimg.Style{Size: 8, Color: colorMuted, Align: textimg.AlignCenter, MaxWidth: contentWidth}, PageWidth/2, stripY); err != nil {
			return err
		}
		stripY += 14
	}
	if in.Settings.Phone != "" {
		if _, err := c.textAnchored(doc, in.Settings.Phone, textimg.Style{Size: 7, Color: colorMuted, Align: textimg.AlignCenter}, PageWidth/2, stripY); err != nil {
			return err
		}
	}

	return nil
}

// drawStamp embeds the stamp image when its reference resolves.
func (c *Composer) drawStamp(ctx context.Context, doc *Document, ref string, x, y, size float64) bool {
	stamp := c.loader.Load(ctx, ref)
	if stamp == nil {
		return false
	}
	w, h := fitBox(stamp.Width, stamp.Height, size)
	doc.ImagePNG(stamp.PNG, x+(size-w)/2, y+(size-h)/2, w, h)
	return true
}

// drawQR encodes the school link as a QR code when one is configured.
func (c *Composer) drawQR(doc *Document, link string, x, y, size float64) bool {
	if link == "" {
		return false
	}
	data, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return false
	}
	doc.ImagePNG(data, x, y, size, size)
	return true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
