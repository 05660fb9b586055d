// Package grading maps daily status values to display styles and scores.
//
// The tables here are process-wide immutable constants: every status value,
// including unknown ones, resolves to a renderable style — callers never
// branch on a missing mapping.
package grading

import "github.com/mutabaa-app/taqrir/pkg/domain"

// Style is the display triplet for one status badge. Colors are "#rrggbb".
type Style struct {
	Label      string
	Background string
	Border     string
	Text       string
}

// placeholder is the neutral style for unknown or unset status values.
var placeholder = Style{
	Label:      "-",
	Background: "#f3f4f6",
	Border:     "#d1d5db",
	Text:       "#6b7280",
}

var attendanceStyles = map[domain.Attendance]Style{
	domain.Present: {Label: "Present", Background: "#dcfce7", Border: "#22c55e", Text: "#15803d"},
	domain.Absent:  {Label: "Absent", Background: "#fee2e2", Border: "#ef4444", Text: "#b91c1c"},
	domain.Excused: {Label: "Excused", Background: "#fef9c3", Border: "#eab308", Text: "#a16207"},
}

var gradeStyles = map[domain.Grade]Style{
	domain.Excellent: {Label: "Excellent", Background: "#dcfce7", Border: "#22c55e", Text: "#15803d"},
	domain.Good:      {Label: "Good", Background: "#dbeafe", Border: "#3b82f6", Text: "#1d4ed8"},
	domain.Average:   {Label: "Average", Background: "#fef9c3", Border: "#eab308", Text: "#a16207"},
	domain.Poor:      {Label: "Poor", Background: "#fee2e2", Border: "#ef4444", Text: "#b91c1c"},
	domain.NoGrade:   placeholder,
}

// AttendanceStyle resolves the badge style for an attendance value.
// Unknown values get the neutral placeholder.
func AttendanceStyle(a domain.Attendance) Style {
	if s, ok := attendanceStyles[a]; ok {
		return s
	}
	return placeholder
}

// GradeStyle resolves the badge style for an academic axis value. When the
// record's attendance is not "present" the axis is unscored and callers
// should pass domain.NoGrade to get the placeholder.
func GradeStyle(g domain.Grade) Style {
	if s, ok := gradeStyles[g]; ok {
		return s
	}
	return placeholder
}

// Placeholder returns the neutral "-" style used for unscored axes.
func Placeholder() Style { return placeholder }
