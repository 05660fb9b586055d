package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mutabaa-app/taqrir/pkg/domain"
)

func TestScoreOf(t *testing.T) {
	tests := []struct {
		grade domain.Grade
		want  float64
	}{
		{domain.Excellent, 100},
		{domain.Good, 75},
		{domain.Average, 50},
		{domain.Poor, 25},
		{domain.NoGrade, 0},
		{"", 0},
		{"whatever", 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ScoreOf(tc.grade), "grade %q", tc.grade)
	}
}

func TestEvaluate_PresentRecord(t *testing.T) {
	p := Evaluate(domain.DailyRecord{
		Attendance:    domain.Present,
		Participation: domain.Excellent,
		Homework:      domain.Excellent,
		Behavior:      domain.Excellent,
	})

	assert.True(t, p.Applicable)
	assert.Equal(t, 100.0, p.Score)
	assert.Equal(t, TierOutstanding, p.Tier)
}

// Attendance gates scoring: non-present records are always undetermined,
// regardless of the academic axis values.
func TestEvaluate_GatedByAttendance(t *testing.T) {
	for _, att := range []domain.Attendance{domain.Absent, domain.Excused, "", "unknown"} {
		p := Evaluate(domain.DailyRecord{
			Attendance:    att,
			Participation: domain.Excellent,
			Homework:      domain.Excellent,
			Behavior:      domain.Excellent,
		})
		assert.False(t, p.Applicable, "attendance %q", att)
		assert.Equal(t, TierUndetermined, p.Tier, "attendance %q", att)
		assert.Zero(t, p.Score, "attendance %q", att)
	}
}

// Tier thresholds are inclusive lower bounds.
func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, TierOutstanding},
		{90, TierOutstanding},
		{89.99, TierVeryGood},
		{75, TierVeryGood},
		{74.99, TierGood},
		{60, TierGood},
		{59.99, TierNeedsWork},
		{0, TierNeedsWork},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tierOf(tc.score), "score %v", tc.score)
	}
}

func TestEvaluate_MeanOfThreeAxes(t *testing.T) {
	p := Evaluate(domain.DailyRecord{
		Attendance:    domain.Present,
		Participation: domain.Good,    // 75
		Homework:      domain.Average, // 50
		Behavior:      domain.Poor,    // 25
	})

	assert.True(t, p.Applicable)
	assert.InDelta(t, 50.0, p.Score, 0.001)
	assert.Equal(t, TierNeedsWork, p.Tier)
}
