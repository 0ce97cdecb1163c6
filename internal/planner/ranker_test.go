package planner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSplitsEligibleAndPending(t *testing.T) {
	session := newTestSession(t)
	ledger := completedLedger(map[string]Grade{"CS101": "B"})

	set, err := session.Plan(ledger, "CS", "")
	require.NoError(t, err)

	eligibleCodes := scoreCodes(set.Eligible)
	pendingCodes := scoreCodes(set.NotYetEligible)

	// With CS101 done: MA101 and ELEC1 have no rules, CS102's rule is
	// satisfied. CS201, CS301 and MA102 are still blocked.
	assert.ElementsMatch(t, []string{"MA101", "ELEC1", "CS102"}, eligibleCodes)
	assert.ElementsMatch(t, []string{"CS201", "CS301", "MA102"}, pendingCodes)

	for _, score := range set.Eligible {
		assert.True(t, score.Eligible)
		assert.Empty(t, score.Unmet)
	}
	for _, score := range set.NotYetEligible {
		assert.False(t, score.Eligible)
		assert.NotEmpty(t, score.Unmet, score.Course)
	}
}

func TestPlanExcludesCompletedCourses(t *testing.T) {
	session := newTestSession(t)
	ledger := completedLedger(map[string]Grade{"CS101": "B", "ELEC1": "A"})

	set, err := session.Plan(ledger, "CS", "")
	require.NoError(t, err)

	assert.NotContains(t, scoreCodes(set.Eligible), "CS101")
	assert.NotContains(t, scoreCodes(set.Eligible), "ELEC1")
	assert.NotContains(t, scoreCodes(set.NotYetEligible), "CS101")
}

func TestPlanIsDeterministic(t *testing.T) {
	session := newTestSession(t)

	records := []CourseRecord{
		{Course: "CS101", Grade: "B", Status: StatusCompleted},
		{Course: "MA101", Status: StatusInProgress},
	}

	first, err := session.Plan(NewLedger(records), "CS", "")
	require.NoError(t, err)
	second, err := session.Plan(NewLedger(records), "CS", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanScoreOrdering(t *testing.T) {
	session := newTestSession(t)

	set, err := session.Plan(NewLedger(nil), "CS", "")
	require.NoError(t, err)

	for i := 1; i < len(set.Eligible); i++ {
		assert.GreaterOrEqual(t, set.Eligible[i-1].Score, set.Eligible[i].Score)
	}
	for i := 1; i < len(set.NotYetEligible); i++ {
		assert.GreaterOrEqual(t, set.NotYetEligible[i-1].Score, set.NotYetEligible[i].Score)
	}
}

func TestPlanCriticalPathScoresAboveIsolatedCourse(t *testing.T) {
	session := newTestSession(t)

	set, err := session.Plan(NewLedger(nil), "CS", "")
	require.NoError(t, err)

	var cs101, elec1 CourseScore
	for _, score := range set.Eligible {
		switch score.Course {
		case "CS101":
			cs101 = score
		case "ELEC1":
			elec1 = score
		}
	}
	require.NotEmpty(t, cs101.Course)
	require.NotEmpty(t, elec1.Course)

	// CS101 gates the whole chain and is a foundation course; ELEC1 gates
	// nothing. The easier elective must not outrank it.
	assert.True(t, cs101.Critical)
	assert.False(t, elec1.Critical)
	assert.Greater(t, cs101.Score, elec1.Score)
	assert.Contains(t, cs101.Rationale, "critical path")
}

func TestPlanTieBreakByPriorityThenCode(t *testing.T) {
	catalog, err := NewCatalog([]Course{
		{Code: "PHIL10", Title: "Ethics", Department: "PHIL", Credits: 3, Difficulty: 2.0, SuccessRate: 0.9},
		{Code: "PHIL20", Title: "Logic", Department: "PHIL", Credits: 3, Difficulty: 2.0, SuccessRate: 0.9},
		{Code: "PHIL30", Title: "Aesthetics", Department: "PHIL", Credits: 3, Difficulty: 2.0, SuccessRate: 0.9},
	})
	require.NoError(t, err)

	groups := []RequirementGroup{
		{Major: "PHIL", Key: "upper", Type: RequirementElective, NeedCount: 1, Courses: []string{"PHIL30"}, Priority: 1},
		{Major: "PHIL", Key: "lower", Type: RequirementElective, NeedCount: 2, Courses: []string{"PHIL20", "PHIL10"}, Priority: 2},
	}

	session, err := NewSession(catalog, NewRuleSet(nil), groups, DefaultPolicy(), zerolog.Nop())
	require.NoError(t, err)

	set, err := session.Plan(NewLedger(nil), "PHIL", "")
	require.NoError(t, err)

	// All three score identically: PHIL30 wins on lower group priority, then
	// PHIL10 beats PHIL20 on course code.
	assert.Equal(t, []string{"PHIL30", "PHIL10", "PHIL20"}, scoreCodes(set.Eligible))
}

func TestPlanTopPriorityRespectsLimit(t *testing.T) {
	policy := DefaultPolicy()
	policy.RecommendationLimit = 2

	catalog, err := NewCatalog(testCourses())
	require.NoError(t, err)
	session, err := NewSession(catalog, NewRuleSet(testRules()), testGroups(), policy, zerolog.Nop())
	require.NoError(t, err)

	set, err := session.Plan(NewLedger(nil), "CS", "")
	require.NoError(t, err)

	require.Len(t, set.TopPriority, 2)
	assert.Equal(t, set.Eligible[:2], set.TopPriority)
}

func TestPlanCyclicCandidatePropagatesError(t *testing.T) {
	catalog, err := NewCatalog([]Course{
		{Code: "LOOPA", Title: "Loop A", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.8},
		{Code: "LOOPB", Title: "Loop B", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.8},
	})
	require.NoError(t, err)

	rules := NewRuleSet(map[string]Rule{
		"LOOPA": Leaf{Course: "LOOPB", MinGrade: "C"},
		"LOOPB": Leaf{Course: "LOOPA", MinGrade: "C"},
	})
	groups := []RequirementGroup{
		{Major: "CS", Key: "broken", Type: RequirementCore, NeedCount: 2, Courses: []string{"LOOPA", "LOOPB"}, Priority: 1},
	}

	session, err := NewSession(catalog, rules, groups, DefaultPolicy(), zerolog.Nop())
	require.NoError(t, err)

	_, err = session.Plan(NewLedger(nil), "CS", "")
	assert.ErrorIs(t, err, ErrCyclicRule)
}

func scoreCodes(scores []CourseScore) []string {
	codes := make([]string, len(scores))
	for i, score := range scores {
		codes[i] = score.Course
	}
	return codes
}
