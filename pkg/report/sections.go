// sections.go — Upper page sections: header band, student card, status
// summary strip and the performance chart panel.
package report

import (
	"context"
	"fmt"

	"github.com/mutabaa-app/taqrir/pkg/chart"
	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/grading"
	"github.com/mutabaa-app/taqrir/pkg/textimg"
)

// drawHeader renders the three-zone letterhead band: identity block on the
// right, centered logo and title, date/day block on the left.
func (c *Composer) drawHeader(ctx context.Context, doc *Document, in *domain.Input, y float64) (float64, error) {
	// Accent bar across the physical page top.
	doc.FillRect(0, 0, PageWidth, 6, colorPrimary)

	right := PageWidth - Margin
	centerX := PageWidth / 2

	// Right zone: school and organization names.
	rd, err := c.textAnchored(doc, in.Settings.SchoolName, textimg.Style{Size: 13, Bold: true, Color: colorPrimary, Align: textimg.AlignRight, MaxWidth: 170}, right, y)
	if err != nil {
		return 0, err
	}
	if in.Settings.OrgName != "" {
		if _, err := c.textAnchored(doc, in.Settings.OrgName, textimg.Style{Size: 9, Color: colorMuted, Align: textimg.AlignRight, MaxWidth: 170}, right, y+rd.Height); err != nil {
			return 0, err
		}
	}

	// Center zone: logo above the report title.
	const logoSize = 34.0
	if logo := c.loader.Load(ctx, in.Settings.LogoRef); logo != nil {
		w, h := fitBox(logo.Width, logo.Height, logoSize)
		doc.ImagePNG(logo.PNG, centerX-w/2, y, w, h)
	} else {
		doc.RoundedBox(centerX-logoSize/2, y, logoSize, logoSize, 4, colorPanel, colorBorder)
	}
	if _, err := c.textAnchored(doc, "Daily Student Report", textimg.Style{Size: 13, Bold: true, Color: colorText, Align: textimg.AlignCenter}, centerX, y+logoSize+4); err != nil {
		return 0, err
	}

	// Left zone: date, weekday and the generated-at line.
	rd, err = c.text(doc, in.Record.Date, textimg.Style{Size: 11, Bold: true, Color: colorText}, Margin, y)
	if err != nil {
		return 0, err
	}
	dayY := y + rd.Height
	rd, err = c.text(doc, in.Record.Day, textimg.Style{Size: 10, Color: colorMuted}, Margin, dayY)
	if err != nil {
		return 0, err
	}
	generated := "Generated " + c.now().Format("2006-01-02 15:04")
	if _, err := c.text(doc, generated, textimg.Style{Size: 7, Color: colorMuted}, Margin, dayY+rd.Height); err != nil {
		return 0, err
	}

	bottom := y + headerHeight
	doc.Line(Margin, bottom, PageWidth-Margin, bottom, colorDivider, 1)
	return bottom, nil
}

// drawStudentCard renders the bordered 2×2 identity grid, with the avatar
// beside it when one resolves.
func (c *Composer) drawStudentCard(ctx context.Context, doc *Document, in *domain.Input, y float64) (float64, error) {
	doc.RoundedBox(Margin, y, contentWidth, cardHeight, 6, colorWhite, colorBorder)

	gridX := Margin
	gridW := contentWidth

	// Avatar zone on the right edge of the card.
	if avatar := c.loader.Load(ctx, in.Student.AvatarRef); avatar != nil {
		const slot = cardHeight - 16
		w, h := fitBox(avatar.Width, avatar.Height, slot)
		doc.ImagePNG(avatar.PNG, Margin+contentWidth-8-w, y+8, w, h)
		gridW -= slot + 16
	}

	number := in.Student.Number
	if number == "" {
		number = "-"
	}
	phone := in.Student.GuardianPhone
	if phone == "" {
		phone = "-"
	}

	cells := []struct{ label, value string }{
		{"Student", in.Student.Name},
		{"Class", in.Student.ClassName},
		{"Guardian Phone", phone},
		{"Student No.", number},
	}

	cellW := gridW / 2
	cellH := cardHeight / 2
	for i, cell := range cells {
		cx := gridX + float64(i%2)*cellW
		cy := y + float64(i/2)*cellH
		doc.StrokeRect(cx, cy, cellW, cellH, colorDivider, 0.6)

		if _, err := c.text(doc, cell.label, textimg.Style{Size: 7, Color: colorMuted}, cx+8, cy+6); err != nil {
			return 0, err
		}
		if _, err := c.text(doc, cell.value, textimg.Style{Size: 11, Bold: true, Color: colorText, MaxWidth: cellW - 16}, cx+8, cy+18); err != nil {
			return 0, err
		}
	}

	return y + cardHeight, nil
}

// drawSummaryStrip renders one styled status box per axis in a single row
// of fixed-width equal columns.
func (c *Composer) drawSummaryStrip(doc *Document, in *domain.Input, y float64) (float64, error) {
	present := in.Record.Attendance == domain.Present

	academic := func(g domain.Grade) grading.Style {
		if !present {
			return grading.Placeholder()
		}
		return grading.GradeStyle(g)
	}

	boxes := []struct {
		title string
		style grading.Style
	}{
		{"Attendance", grading.AttendanceStyle(in.Record.Attendance)},
		{"Participation", academic(in.Record.Participation)},
		{"Homework", academic(in.Record.Homework)},
		{"Behavior", academic(in.Record.Behavior)},
	}

	const gap = 8.0
	boxW := (contentWidth - gap*float64(len(boxes)-1)) / float64(len(boxes))

	for i, box := range boxes {
		x := Margin + float64(i)*(boxW+gap)
		doc.RoundedBox(x, y, boxW, summaryHeight, 6, box.style.Background, box.style.Border)

		cx := x + boxW/2
		if _, err := c.textAnchored(doc, box.title, textimg.Style{Size: 8, Color: colorMuted, Align: textimg.AlignCenter}, cx, y+8); err != nil {
			return 0, err
		}
		if _, err := c.textAnchored(doc, box.style.Label, textimg.Style{Size: 12, Bold: true, Color: box.style.Text, Align: textimg.AlignCenter}, cx, y+26); err != nil {
			return 0, err
		}
	}

	return y + summaryHeight, nil
}

// drawChartPanel renders the radar of the three academic scores, or the
// explicit no-data state when attendance gated scoring off.
func (c *Composer) drawChartPanel(doc *Document, in *domain.Input, y float64) (float64, error) {
	doc.RoundedBox(Margin, y, contentWidth, chartHeight, 6, colorPanel, colorBorder)

	perf := grading.Evaluate(in.Record)
	panelCenterY := y + chartHeight/2

	if !perf.Applicable {
		if _, err := c.textAnchored(doc, "No performance data for this day", textimg.Style{Size: 11, Color: colorMuted, Align: textimg.AlignCenter}, PageWidth/2, panelCenterY-20); err != nil {
			return 0, err
		}
		if _, err := c.textAnchored(doc, perf.Tier, textimg.Style{Size: 13, Bold: true, Color: colorMuted, Align: textimg.AlignCenter}, PageWidth/2, panelCenterY+2); err != nil {
			return 0, err
		}
		return y + chartHeight, nil
	}

	// Radar on the left half of the panel.
	const chartSize = chartHeight - 16
	rd, err := c.radar.Render([]chart.Category{
		{Label: "Participation", Value: perf.Participation},
		{Label: "Homework", Value: perf.Homework},
		{Label: "Behavior", Value: perf.Behavior},
	}, chartSize, chartSize)
	if err != nil {
		return 0, err
	}
	chartX := Margin + contentWidth/4 - chartSize/2
	doc.ImagePNG(rd.PNG, chartX, y+8, rd.Width, rd.Height)

	// Score block on the right half.
	rightCX := Margin + contentWidth*3/4
	if _, err := c.textAnchored(doc, "Daily Performance", textimg.Style{Size: 9, Color: colorMuted, Align: textimg.AlignCenter}, rightCX, panelCenterY-36); err != nil {
		return 0, err
	}
	score := fmt.Sprintf("%.0f / 100", perf.Score)
	if _, err := c.textAnchored(doc, score, textimg.Style{Size: 20, Bold: true, Color: colorPrimary, Align: textimg.AlignCenter}, rightCX, panelCenterY-20); err != nil {
		return 0, err
	}
	if _, err := c.textAnchored(doc, perf.Tier, textimg.Style{Size: 12, Bold: true, Color: colorText, Align: textimg.AlignCenter}, rightCX, panelCenterY+12); err != nil {
		return 0, err
	}

	return y + chartHeight, nil
}

// fitBox scales pixel dimensions to fit a square box, preserving aspect.
func fitBox(pxW, pxH int, box float64) (w, h float64) {
	if pxW <= 0 || pxH <= 0 {
		return box, box
	}
	ratio := float64(pxW) / float64(pxH)
	if ratio >= 1 {
		return box, box / ratio
	}
	return box * ratio, box
}
