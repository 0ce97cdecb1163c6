package planner

// RiskLevel classifies the aggregate difficulty of the remaining course load.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment aggregates difficulty and success-rate signals over the
// not-yet-completed required courses.
type RiskAssessment struct {
	Level               RiskLevel `json:"level"`
	AvgDifficulty       float64   `json:"avgDifficulty"`
	AvgSuccessRate      float64   `json:"avgSuccessRate"`
	HighDifficultyCount int       `json:"highDifficultyCount"`
	CourseCount         int       `json:"courseCount"`
}

// assessRisk classifies the remaining course set against the policy
// thresholds. An empty set is low risk by definition.
func (s *Session) assessRisk(remaining []Course) RiskAssessment {
	assessment := RiskAssessment{Level: RiskLow, CourseCount: len(remaining)}
	if len(remaining) == 0 {
		return assessment
	}

	var difficultySum, successSum float64
	for _, course := range remaining {
		difficultySum += course.Difficulty
		successSum += course.SuccessRate
		if course.Difficulty > s.policy.Risk.HighDifficultyBar {
			assessment.HighDifficultyCount++
		}
	}
	assessment.AvgDifficulty = difficultySum / float64(len(remaining))
	assessment.AvgSuccessRate = successSum / float64(len(remaining))

	t := s.policy.Risk
	switch {
	case assessment.AvgDifficulty > t.HighAvgDifficulty && assessment.HighDifficultyCount > t.HighCount:
		assessment.Level = RiskHigh
	case assessment.AvgDifficulty > t.MediumAvgDifficulty || assessment.HighDifficultyCount > t.MediumCount:
		assessment.Level = RiskMedium
	}

	return assessment
}
