// score.go — Numeric scoring and performance tiers.
package grading

import "github.com/mutabaa-app/taqrir/pkg/domain"

// Performance tier labels. Thresholds are inclusive lower bounds.
const (
	TierOutstanding  = "Outstanding"
	TierVeryGood     = "Very Good"
	TierGood         = "Good"
	TierNeedsWork    = "Needs Follow-up"
	TierUndetermined = "Undetermined"
)

var gradeScores = map[domain.Grade]float64{
	domain.Excellent: 100,
	domain.Good:      75,
	domain.Average:   50,
	domain.Poor:      25,
}

// ScoreOf converts one academic status to its 0–100 score. NoGrade and any
// unknown value score zero.
func ScoreOf(g domain.Grade) float64 {
	return gradeScores[g]
}

// Performance is the per-record score summary. Applicable is false when
// attendance gated scoring off; Score and the radar values are zero then
// and Tier is TierUndetermined.
type Performance struct {
	Applicable    bool
	Score         float64
	Tier          string
	Participation float64
	Homework      float64
	Behavior      float64
}

// Evaluate computes the record's performance. Scoring applies only when the
// student was present; absent and excused records bypass the thresholds
// entirely.
func Evaluate(rec domain.DailyRecord) Performance {
	if rec.Attendance != domain.Present {
		return Performance{Tier: TierUndetermined}
	}

	p := Performance{
		Applicable:    true,
		Participation: ScoreOf(rec.Participation),
		Homework:      ScoreOf(rec.Homework),
		Behavior:      ScoreOf(rec.Behavior),
	}
	p.Score = (p.Participation + p.Homework + p.Behavior) / 3
	p.Tier = tierOf(p.Score)
	return p
}

func tierOf(score float64) string {
	switch {
	case score >= 90:
		return TierOutstanding
	case score >= 75:
		return TierVeryGood
	case score >= 60:
		return TierGood
	default:
		return TierNeedsWork
	}
}
