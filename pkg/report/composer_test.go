package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/grading"
)

var testNow = func() time.Time {
	return time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
}

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(Options{Now: testNow, FetchTimeout: 200 * time.Millisecond})
	require.NoError(t, err)
	return c
}

func testInput() domain.Input {
	return domain.Input{
		Student: domain.Student{ID: "s1", Name: "Omar Hassan", ClassName: "5B", GuardianPhone: "+256700000000", Number: "17"},
		Record: domain.DailyRecord{
			Date:          "2026-03-02",
			Day:           "Monday",
			Attendance:    domain.Present,
			Participation: domain.Excellent,
			Homework:      domain.Excellent,
			Behavior:      domain.Excellent,
			Notes:         "Great day overall.",
		},
		Settings: domain.SchoolSettings{
			SchoolName: "Al-Noor Primary School",
			OrgName:    "Al-Noor Education Trust",
			Link:       "https://school.example.com/s1",
			Message:    "Parent-teacher meetings start Sunday.",
			Slogan:     "Knowledge, Character, Community",
			Phone:      "+256 414 000 000",
		},
		Schedule: []domain.ScheduleItem{
			{Day: "Monday", Period: 1, Subject: "Mathematics", Teacher: "Mr. Ssebintu", Room: "B-12"},
			{Day: "Monday", Period: 2, Subject: "English", Teacher: "Ms. Nambi", Room: "B-12"},
			{Day: "Tuesday", Period: 1, Subject: "Art", Teacher: "Ms. Achen", Room: "C-3"},
		},
	}
}

func TestGenerate_PresentStudent(t *testing.T) {
	c := newTestComposer(t)

	pdf, err := c.Generate(context.Background(), testInput())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must be a PDF document")
}

func TestGenerate_AbsentStudent(t *testing.T) {
	c := newTestComposer(t)

	in := testInput()
	in.Record.Attendance = domain.Absent

	pdf, err := c.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGenerate_PreconditionFailure(t *testing.T) {
	c := newTestComposer(t)

	in := testInput()
	in.Student.Name = ""

	pdf, err := c.Generate(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
	assert.Nil(t, pdf, "no partial document on precondition failure")
}

// Identical inputs with a fixed clock produce byte-identical output: the
// creation date comes from the injected clock and catalog sorting pins the
// object order, so no hidden timestamp or map iteration affects the bytes.
func TestGenerate_Idempotent(t *testing.T) {
	c := newTestComposer(t)
	in := testInput()

	first, err := c.Generate(context.Background(), in)
	require.NoError(t, err)
	second, err := c.Generate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same input and clock must serialize to the same bytes")
}

// Broken image references degrade to placeholders; they never abort the
// build.
func TestGenerate_UnreachableImagesDegrade(t *testing.T) {
	c := newTestComposer(t)

	in := testInput()
	in.Student.AvatarRef = "http://127.0.0.1:1/avatar.png"
	in.Settings.LogoRef = "http://127.0.0.1:1/logo.png"
	in.Settings.StampRef = "data:image/png;base64,notvalid"

	pdf, err := c.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestGenerate_MinimalSettings(t *testing.T) {
	c := newTestComposer(t)

	in := testInput()
	in.Settings = domain.SchoolSettings{SchoolName: "Al-Noor Primary School"}
	in.Record.Notes = ""
	in.Schedule = nil

	pdf, err := c.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestGenerate_FullWeekScheduleTruncated(t *testing.T) {
	c := newTestComposer(t)

	in := testInput()
	in.Schedule = nil
	for p := 1; p <= 12; p++ {
		in.Schedule = append(in.Schedule, domain.ScheduleItem{
			Day: "Monday", Period: p, Subject: "Subject", Teacher: "T", Room: "R",
		})
	}

	pdf, err := c.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

// The table geometry is fixed: eight columns ending in Notes, fractions
// summing to the full content width.
func TestScheduleTableColumns(t *testing.T) {
	require.Len(t, tableColumns, 8)
	assert.Equal(t, "No", tableColumns[0].title)
	assert.Equal(t, "Notes", tableColumns[len(tableColumns)-1].title)

	var total float64
	for _, col := range tableColumns {
		total += col.frac
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestSummaryText_Present(t *testing.T) {
	in := testInput()
	text := SummaryText(in.Student, in.Record)

	assert.Contains(t, text, "Omar Hassan")
	assert.Contains(t, text, "2026-03-02")
	assert.Contains(t, text, "Attendance: Present")
	assert.Contains(t, text, "Participation: Excellent")
	assert.Contains(t, text, grading.TierOutstanding)
	assert.Contains(t, text, "Notes: Great day overall.")
}

func TestSummaryText_Absent(t *testing.T) {
	in := testInput()
	in.Record.Attendance = domain.Absent
	in.Record.Notes = ""

	text := SummaryText(in.Student, in.Record)
	assert.Contains(t, text, "Attendance: Absent")
	assert.Contains(t, text, grading.TierUndetermined)
	assert.NotContains(t, text, "Participation:")
	assert.False(t, strings.HasSuffix(text, "\n"))
}

type recordingMessenger struct {
	phone, text string
	err         error
}

func (m *recordingMessenger) Send(_ context.Context, phone, text string) error {
	m.phone, m.text = phone, text
	return m.err
}

func TestDeliver(t *testing.T) {
	in := testInput()

	m := &recordingMessenger{}
	err := Deliver(context.Background(), m, in.Student, in.Record)
	require.NoError(t, err)
	assert.Equal(t, in.Student.GuardianPhone, m.phone)
	assert.Equal(t, SummaryText(in.Student, in.Record), m.text)
}

func TestDeliver_NoGuardianPhone(t *testing.T) {
	in := testInput()
	in.Student.GuardianPhone = ""

	m := &recordingMessenger{}
	err := Deliver(context.Background(), m, in.Student, in.Record)
	assert.Error(t, err)
	assert.Empty(t, m.text, "nothing is sent without a recipient")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	long := strings.Repeat("ab", 400)
	got := truncateRunes(long, maxBlockRunes)
	assert.LessOrEqual(t, len([]rune(got)), maxBlockRunes)
	assert.True(t, strings.HasSuffix(got, "…"))
}
