// Package report composes the single-page daily student report.
//
// The composer owns a vertical cursor on a fixed A4 page and draws each
// section in order — header, student card, status summary, chart panel,
// schedule table, optional notes and school message, signature footer —
// advancing the cursor by each section's measured height. All text is
// rasterized through textimg and embedded as bitmaps; the page itself only
// ever sees rectangles, lines and images.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/mutabaa-app/taqrir/pkg/chart"
	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/imageres"
	"github.com/mutabaa-app/taqrir/pkg/textimg"
)

// Shared palette for the page chrome. Status badge colors live in grading.
const (
	colorPrimary = "#1e3a5f"
	colorMuted   = "#6b7280"
	colorText    = "#1f2937"
	colorBorder  = "#d1d5db"
	colorPanel   = "#f8fafc"
	colorRowAlt  = "#f1f5f9"
	colorWhite   = "#ffffff"
	colorDivider = "#e5e7eb"
)

// Section metrics. Heights are constants except the schedule table, which
// grows with its row count, and the two text blocks, which measure their
// rasterized content.
const (
	contentWidth = PageWidth - 2*Margin

	headerHeight  = 84.0
	cardHeight    = 92.0
	summaryHeight = 64.0
	chartHeight   = 176.0
	footerHeight  = 112.0
	sectionGap    = 12.0

	tableHeadHeight = 24.0
	tableRowHeight  = 22.0
)

// Options configures a Composer.
type Options struct {
	FontPath     string // custom regular TTF; empty uses the embedded font
	BoldFontPath string // custom bold TTF
	FetchTimeout time.Duration
	Assets       imageres.AssetStore // resolves asset:<id> refs; may be nil
	Now          func() time.Time    // clock for the "generated at" line
}

// Composer builds report documents. Safe for concurrent use: every
// Generate call opens its own document and shares only immutable tables.
type Composer struct {
	raster *textimg.Rasterizer
	radar  *chart.Radar
	loader *imageres.Loader
	now    func() time.Time
}

// NewComposer wires the rendering pipeline.
func NewComposer(opts Options) (*Composer, error) {
	fonts, err := textimg.NewFontManager(opts.FontPath, opts.BoldFontPath)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}

	raster := textimg.NewRasterizer(fonts)
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Composer{
		raster: raster,
		radar:  chart.NewRadar(raster),
		loader: imageres.NewLoader(opts.Assets, opts.FetchTimeout),
		now:    now,
	}, nil
}

// Generate builds the report PDF for one student-day. Preconditions are
// checked before any drawing; a failed build returns no partial output.
func (c *Composer) Generate(ctx context.Context, in domain.Input) ([]byte, error) {
	if _, err := in.Validate(); err != nil {
		return nil, err
	}

	doc := NewDocument(c.now())
	y := Margin

	y, err := c.drawHeader(ctx, doc, &in, y)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	y, err = c.drawStudentCard(ctx, doc, &in, y+sectionGap)
	if err != nil {
		return nil, fmt.Errorf("student card: %w", err)
	}

	y, err = c.drawSummaryStrip(doc, &in, y+sectionGap)
	if err != nil {
		return nil, fmt.Errorf("summary strip: %w", err)
	}

	y, err = c.drawChartPanel(doc, &in, y+sectionGap)
	if err != nil {
		return nil, fmt.Errorf("chart panel: %w", err)
	}

	y, err = c.drawScheduleTable(doc, &in, y+sectionGap)
	if err != nil {
		return nil, fmt.Errorf("schedule table: %w", err)
	}

	footerTop := PageHeight - Margin - footerHeight

	if in.Record.Notes != "" {
		y, err = c.drawTextBlock(doc, "Teacher Notes", in.Record.Notes, y+sectionGap, footerTop)
		if err != nil {
			return nil, fmt.Errorf("notes: %w", err)
		}
	}

	if in.Settings.Message != "" {
		_, err = c.drawTextBlock(doc, "From the School", in.Settings.Message, y+sectionGap, footerTop)
		if err != nil {
			return nil, fmt.Errorf("school message: %w", err)
		}
	}

	if err := c.drawFooter(ctx, doc, &in, footerTop); err != nil {
		return nil, fmt.Errorf("footer: %w", err)
	}

	return doc.Output()
}

// text rasterizes a run and embeds it with its left edge at x. Returns the
// rendered bitmap for the caller's own placement math.
func (c *Composer) text(doc *Document, s string, style textimg.Style, x, y float64) (*textimg.Rendered, error) {
	rd, err := c.raster.Render(s, style)
	if err != nil {
		return nil, err
	}
	doc.ImagePNG(rd.PNG, x, y, rd.Width, rd.Height)
	return rd, nil
}

// textAnchored places a run against an anchor: the string's right edge at
// x for AlignRight, centered on x for AlignCenter, left edge otherwise.
func (c *Composer) textAnchored(doc *Document, s string, style textimg.Style, x, y float64) (*textimg.Rendered, error) {
	rd, err := c.raster.Render(s, style)
	if err != nil {
		return nil, err
	}

	left := x
	switch style.Align {
	case textimg.AlignRight:
		left = x - rd.Width
	case textimg.AlignCenter:
		left = x - rd.Width/2
	}
	doc.ImagePNG(rd.PNG, left, y, rd.Width, rd.Height)
	return rd, nil
}
