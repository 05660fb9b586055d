// message.go — Outbound chat message text for the guardian.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/grading"
)

// SummaryText builds the prebuilt message a caller hands to a
// domain.Messenger alongside the generated document. It mirrors the
// report's summary strip in plain text.
func SummaryText(student domain.Student, rec domain.DailyRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Daily report for %s", student.Name)
	if student.ClassName != "" {
		fmt.Fprintf(&b, " (%s)", student.ClassName)
	}
	fmt.Fprintf(&b, " — %s %s\n", rec.Day, rec.Date)

	fmt.Fprintf(&b, "Attendance: %s\n", grading.AttendanceStyle(rec.Attendance).Label)

	if rec.Attendance == domain.Present {
		fmt.Fprintf(&b, "Participation: %s\n", grading.GradeStyle(rec.Participation).Label)
		fmt.Fprintf(&b, "Homework: %s\n", grading.GradeStyle(rec.Homework).Label)
		fmt.Fprintf(&b, "Behavior: %s\n", grading.GradeStyle(rec.Behavior).Label)
	}

	perf := grading.Evaluate(rec)
	if perf.Applicable {
		fmt.Fprintf(&b, "Performance: %.0f/100 — %s\n", perf.Score, perf.Tier)
	} else {
		fmt.Fprintf(&b, "Performance: %s\n", perf.Tier)
	}

	if rec.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", rec.Notes)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Deliver sends the record's summary text to the student's guardian through
// the given messenger. A student without a guardian phone cannot be
// messaged.
func Deliver(ctx context.Context, m domain.Messenger, student domain.Student, rec domain.DailyRecord) error {
	if student.GuardianPhone == "" {
		return fmt.Errorf("deliver summary: student %q has no guardian phone", student.Name)
	}
	if err := m.Send(ctx, student.GuardianPhone, SummaryText(student, rec)); err != nil {
		return fmt.Errorf("deliver summary: %w", err)
	}
	return nil
}
