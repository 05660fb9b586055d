// input.go — Report input bundle, precondition validation and the outbound
// messaging collaborator interface.
package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrPrecondition marks a missing required field. A build that fails this
// check produces no partial document.
var ErrPrecondition = errors.New("report precondition failed")

// Input bundles everything one report build consumes. Schedule is the full
// weekly list; the engine filters it to the record's day internally.
type Input struct {
	Student  Student        `json:"student"`
	Record   DailyRecord    `json:"record"`
	Settings SchoolSettings `json:"settings"`
	Schedule []ScheduleItem `json:"schedule"`
}

// Validate checks hard preconditions and returns soft warnings for fields
// that will degrade to placeholders. A non-nil error means generation must
// not start.
func (in *Input) Validate() ([]string, error) {
	switch {
	case in.Student.Name == "":
		return nil, fmt.Errorf("%w: student name is required", ErrPrecondition)
	case in.Record.Date == "":
		return nil, fmt.Errorf("%w: record date is required", ErrPrecondition)
	case in.Record.Day == "":
		return nil, fmt.Errorf("%w: record day is required", ErrPrecondition)
	case in.Settings.SchoolName == "":
		return nil, fmt.Errorf("%w: school name is required", ErrPrecondition)
	}

	var warnings []string
	if in.Settings.LogoRef == "" {
		warnings = append(warnings, "settings have no logo — header renders a placeholder")
	}
	if in.Settings.StampRef == "" && in.Settings.Link == "" {
		warnings = append(warnings, "settings have neither stamp nor link — footer renders a placeholder")
	}
	if len(ScheduleForDay(in.Schedule, in.Record.Day)) == 0 {
		warnings = append(warnings, fmt.Sprintf("no schedule items match day %q — table renders empty", in.Record.Day))
	}
	return warnings, nil
}

// Normalize canonicalizes the record's status fields in place. Decoders
// call it once after unmarshalling so case and whitespace variation in the
// source data does not leak into style and score lookups.
func (in *Input) Normalize() {
	in.Record.Attendance = ParseAttendance(string(in.Record.Attendance))
	in.Record.Participation = ParseGrade(string(in.Record.Participation))
	in.Record.Homework = ParseGrade(string(in.Record.Homework))
	in.Record.Behavior = ParseGrade(string(in.Record.Behavior))
}

// Messenger delivers a prebuilt text message to a phone-number-shaped
// recipient. The report engine only produces the text; delivery belongs to
// an external collaborator.
type Messenger interface {
	Send(ctx context.Context, phone, text string) error
}
