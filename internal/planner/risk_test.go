package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riskCourse(code string, difficulty, successRate float64) Course {
	return Course{Code: code, Title: code, Department: "CS", Credits: 3, Difficulty: difficulty, SuccessRate: successRate}
}

func TestRiskEmptyRemainingIsLow(t *testing.T) {
	session := newTestSession(t)

	assessment := session.assessRisk(nil)
	assert.Equal(t, RiskLow, assessment.Level)
	assert.Equal(t, 0, assessment.CourseCount)
}

func TestRiskLow(t *testing.T) {
	session := newTestSession(t)

	assessment := session.assessRisk([]Course{
		riskCourse("A", 2.0, 0.9),
		riskCourse("B", 2.5, 0.85),
	})
	assert.Equal(t, RiskLow, assessment.Level)
	assert.InDelta(t, 2.25, assessment.AvgDifficulty, 1e-9)
	assert.Equal(t, 0, assessment.HighDifficultyCount)
}

func TestRiskMediumOnAvgDifficulty(t *testing.T) {
	session := newTestSession(t)

	// Average 3.9 exceeds the 3.8 medium bar; only one course crosses the
	// high-difficulty bar, so high is out of reach.
	assessment := session.assessRisk([]Course{
		riskCourse("A", 3.7, 0.8),
		riskCourse("B", 4.1, 0.7),
	})
	assert.Equal(t, RiskMedium, assessment.Level)
}

func TestRiskMediumOnHighDifficultyCount(t *testing.T) {
	session := newTestSession(t)

	// Average difficulty stays moderate, but four courses above the 4.0 bar
	// clear the medium count threshold of 3.
	assessment := session.assessRisk([]Course{
		riskCourse("A", 4.1, 0.7),
		riskCourse("B", 4.1, 0.7),
		riskCourse("C", 4.1, 0.7),
		riskCourse("D", 4.1, 0.7),
		riskCourse("E", 1.0, 0.95),
		riskCourse("F", 1.0, 0.95),
		riskCourse("G", 1.0, 0.95),
	})
	require.Equal(t, 4, assessment.HighDifficultyCount)
	assert.Less(t, assessment.AvgDifficulty, 3.8)
	assert.Equal(t, RiskMedium, assessment.Level)
}

func TestRiskHigh(t *testing.T) {
	session := newTestSession(t)

	// Six courses above the high-difficulty bar and an average above 4.2.
	remaining := []Course{
		riskCourse("A", 4.5, 0.6),
		riskCourse("B", 4.5, 0.6),
		riskCourse("C", 4.4, 0.6),
		riskCourse("D", 4.6, 0.6),
		riskCourse("E", 4.3, 0.6),
		riskCourse("F", 4.7, 0.6),
	}
	assessment := session.assessRisk(remaining)
	assert.Equal(t, RiskHigh, assessment.Level)
	assert.Equal(t, 6, assessment.HighDifficultyCount)
}

func TestPlanRiskCoversRemainingRequiredCourses(t *testing.T) {
	session := newTestSession(t)

	set, err := session.Plan(completedLedger(map[string]Grade{"CS101": "A"}), "CS", "")
	require.NoError(t, err)

	// Six of the seven required candidates are still open.
	assert.Equal(t, 6, set.Risk.CourseCount)
	assert.Greater(t, set.Risk.AvgDifficulty, 0.0)
}
