// status.go — Status enums for the four daily tracking axes.
package domain

import "strings"

// Attendance is the daily attendance status. It gates the three academic
// axes: when a student is not present, participation, homework and behavior
// are not scored.
type Attendance string

const (
	Present Attendance = "present"
	Absent  Attendance = "absent"
	Excused Attendance = "excused"
)

// Grade is the status of one academic axis (participation, homework,
// behavior) for a single day.
type Grade string

const (
	Excellent Grade = "excellent"
	Good      Grade = "good"
	Average   Grade = "average"
	Poor      Grade = "poor"
	NoGrade   Grade = "none"
)

// ParseAttendance normalizes a raw attendance value. Unrecognized input
// returns the raw value unchanged so the style resolver's default branch
// can render its placeholder.
func ParseAttendance(s string) Attendance {
	switch v := Attendance(strings.ToLower(strings.TrimSpace(s))); v {
	case Present, Absent, Excused:
		return v
	default:
		return Attendance(s)
	}
}

// ParseGrade normalizes a raw academic grade value.
func ParseGrade(s string) Grade {
	switch v := Grade(strings.ToLower(strings.TrimSpace(s))); v {
	case Excellent, Good, Average, Poor, NoGrade:
		return v
	default:
		return Grade(s)
	}
}
