package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mutabaa-app/taqrir/pkg/domain"
)

// Every status value, including unknown ones, must resolve to a complete
// renderable style.
func TestAttendanceStyle_Total(t *testing.T) {
	values := []domain.Attendance{
		domain.Present, domain.Absent, domain.Excused,
		"", "late", "garbage",
	}

	for _, v := range values {
		s := AttendanceStyle(v)
		assert.NotEmpty(t, s.Label, "label for %q", v)
		assert.NotEmpty(t, s.Background, "background for %q", v)
		assert.NotEmpty(t, s.Border, "border for %q", v)
		assert.NotEmpty(t, s.Text, "text color for %q", v)
	}
}

func TestGradeStyle_Total(t *testing.T) {
	values := []domain.Grade{
		domain.Excellent, domain.Good, domain.Average, domain.Poor, domain.NoGrade,
		"", "meh", "outstanding",
	}

	for _, v := range values {
		s := GradeStyle(v)
		assert.NotEmpty(t, s.Label, "label for %q", v)
		assert.NotEmpty(t, s.Background, "background for %q", v)
		assert.NotEmpty(t, s.Border, "border for %q", v)
		assert.NotEmpty(t, s.Text, "text color for %q", v)
	}
}

func TestGradeStyle_DefaultBranch(t *testing.T) {
	assert.Equal(t, Placeholder(), GradeStyle("unknown"))
	assert.Equal(t, "-", GradeStyle(domain.NoGrade).Label)
	assert.Equal(t, Placeholder(), AttendanceStyle("unknown"))
}

func TestParseColor(t *testing.T) {
	r, g, b, err := ParseColor("#1e3a5f")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0x1e, 0x3a, 0x5f}, []uint8{r, g, b})

	_, _, _, err = ParseColor("nope")
	assert.Error(t, err)

	// Parse failures fall back to safe defaults instead of erroring.
	assert.Equal(t, uint8(0), ParseHexRGBA("bad").R)
	rr, gg, bb := RGBInts("#ffffff")
	assert.Equal(t, []int{255, 255, 255}, []int{rr, gg, bb})
}
