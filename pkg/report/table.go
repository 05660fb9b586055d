// table.go — The daily schedule table.
package report

import (
	"strconv"

	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/grading"
	"github.com/mutabaa-app/taqrir/pkg/textimg"
)

// Column widths as fixed fractions of the content width. Content never
// drives the geometry.
var tableColumns = []struct {
	title string
	frac  float64
}{
	{"No", 0.06},
	{"Subject", 0.20},
	{"Teacher", 0.17},
	{"Att.", 0.10},
	{"Part.", 0.10},
	{"HW", 0.10},
	{"Beh.", 0.10},
	{"Notes", 0.17},
}

// drawScheduleTable renders the 8-column header and up to MaxScheduleRows
// session rows for the record's day. The four status columns reuse the
// day's single record statuses — tracking is per-day, not per-period.
func (c *Composer) drawScheduleTable(doc *Document, in *domain.Input, y float64) (float64, error) {
	items := domain.ScheduleForDay(in.Schedule, in.Record.Day)

	// Header row.
	doc.FillRect(Margin, y, contentWidth, tableHeadHeight, colorPrimary)
	x := Margin
	for _, col := range tableColumns {
		w := contentWidth * col.frac
		if _, err := c.textAnchored(doc, col.title, textimg.Style{Size: 8, Bold: true, Color: colorWhite, Align: textimg.AlignCenter}, x+w/2, y+6); err != nil {
			return 0, err
		}
		x += w
	}
	y += tableHeadHeight

	if len(items) == 0 {
		doc.StrokeRect(Margin, y, contentWidth, tableRowHeight, colorBorder, 0.6)
		if _, err := c.textAnchored(doc, "No classes scheduled for this day", textimg.Style{Size: 9, Color: colorMuted, Align: textimg.AlignCenter}, PageWidth/2, y+5); err != nil {
			return 0, err
		}
		return y + tableRowHeight, nil
	}

	present := in.Record.Attendance == domain.Present
	badge := func(g domain.Grade) grading.Style {
		if !present {
			return grading.Placeholder()
		}
		return grading.GradeStyle(g)
	}
	statuses := []grading.Style{
		grading.AttendanceStyle(in.Record.Attendance),
		badge(in.Record.Participation),
		badge(in.Record.Homework),
		badge(in.Record.Behavior),
	}

	for row, item := range items {
		if row%2 == 1 {
			doc.FillRect(Margin, y, contentWidth, tableRowHeight, colorRowAlt)
		}
		doc.StrokeRect(Margin, y, contentWidth, tableRowHeight, colorDivider, 0.4)

		x = Margin
		for col, meta := range tableColumns {
			w := contentWidth * meta.frac
			cx := x + w/2

			switch col {
			case 0:
				if err := c.tableCell(doc, strconv.Itoa(item.Period), cx, y, w); err != nil {
					return 0, err
				}
			case 1:
				if err := c.tableCell(doc, item.Subject, cx, y, w); err != nil {
					return 0, err
				}
			case 2:
				if err := c.tableCell(doc, item.Teacher, cx, y, w); err != nil {
					return 0, err
				}
			case 3, 4, 5, 6:
				if err := c.statusBadge(doc, statuses[col-3], x, y, w); err != nil {
					return 0, err
				}
			case 7:
				if err := c.tableCell(doc, item.Notes, cx, y, w); err != nil {
					return 0, err
				}
			}
			x += w
		}
		y += tableRowHeight
	}

	return y, nil
}

// tableCell centers one plain value in its column slot.
func (c *Composer) tableCell(doc *Document, value string, cx, rowY, colW float64) error {
	if value == "" {
		value = "-"
	}
	_, err := c.textAnchored(doc, value, textimg.Style{Size: 8, Color: colorText, Align: textimg.AlignCenter, MaxWidth: colW - 6}, cx, rowY+5)
	return err
}

// statusBadge draws a small colored pill carrying the status label.
func (c *Composer) statusBadge(doc *Document, style grading.Style, colX, rowY, colW float64) error {
	const inset = 3.0
	doc.RoundedBox(colX+inset, rowY+inset, colW-2*inset, tableRowHeight-2*inset, 4, style.Background, style.Border)
	_, err := c.textAnchored(doc, style.Label, textimg.Style{Size: 7, Bold: true, Color: style.Text, Align: textimg.AlignCenter}, colX+colW/2, rowY+6)
	return err
}
