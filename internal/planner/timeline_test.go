package planner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineFreshStudent(t *testing.T) {
	session := newTestSession(t)

	set, err := session.Plan(NewLedger(nil), "CS", "")
	require.NoError(t, err)

	timeline := set.Timeline
	// foundation: CS101 (4) + MA101 (4); core: CS102+CS201+CS301 (9);
	// electives need 1, first candidate ELEC1 (3).
	assert.Equal(t, 8, timeline.RemainingCredits[RequirementFoundation])
	assert.Equal(t, 9, timeline.RemainingCredits[RequirementCore])
	assert.Equal(t, 3, timeline.RemainingCredits[RequirementElective])
	assert.Equal(t, 20, timeline.TotalCredits)
	assert.Equal(t, 15, timeline.CreditsPerTerm)

	// ceil(20/15) = 2 terms, well under the early graduation threshold.
	assert.Equal(t, 2, timeline.EstimatedTerms)
	assert.True(t, timeline.EarlyGraduationFeasible)
}

func TestTimelineInProgressCountsTowardCredit(t *testing.T) {
	session := newTestSession(t)
	ledger := NewLedger([]CourseRecord{
		{Course: "CS101", Grade: "B", Status: StatusCompleted},
		{Course: "MA101", Status: StatusInProgress},
	})

	set, err := session.Plan(ledger, "CS", "")
	require.NoError(t, err)

	// Both foundation slots are occupied even though MA101 is still open.
	assert.Equal(t, 0, set.Timeline.RemainingCredits[RequirementFoundation])
	assert.Equal(t, 12, set.Timeline.TotalCredits)
	assert.Equal(t, 1, set.Timeline.EstimatedTerms)
}

func TestTimelineOverCompletedGroupClampsAtZero(t *testing.T) {
	catalog, err := NewCatalog([]Course{
		{Code: "ART10", Title: "Drawing", Department: "ART", Credits: 3, Difficulty: 2.0, SuccessRate: 0.9},
		{Code: "ART20", Title: "Painting", Department: "ART", Credits: 3, Difficulty: 2.0, SuccessRate: 0.9},
	})
	require.NoError(t, err)

	groups := []RequirementGroup{
		{Major: "ART", Key: "studio", Type: RequirementElective, NeedCount: 1, Courses: []string{"ART10", "ART20"}, Priority: 1},
	}
	session, err := NewSession(catalog, NewRuleSet(nil), groups, DefaultPolicy(), zerolog.Nop())
	require.NoError(t, err)

	// The student took both although the group needs one.
	ledger := completedLedger(map[string]Grade{"ART10": "A", "ART20": "B"})
	set, err := session.Plan(ledger, "ART", "")
	require.NoError(t, err)

	assert.Equal(t, 0, set.Timeline.TotalCredits)
	assert.Equal(t, 0, set.Timeline.EstimatedTerms)
	assert.True(t, set.Timeline.EarlyGraduationFeasible)
}

func TestTimelineEarlyGraduationInfeasible(t *testing.T) {
	policy := DefaultPolicy()
	policy.CreditsPerTerm = 6
	policy.EarlyGraduationTerms = 2

	catalog, err := NewCatalog(testCourses())
	require.NoError(t, err)
	session, err := NewSession(catalog, NewRuleSet(testRules()), testGroups(), policy, zerolog.Nop())
	require.NoError(t, err)

	set, err := session.Plan(NewLedger(nil), "CS", "")
	require.NoError(t, err)

	// ceil(20/6) = 4 terms against a threshold of 2.
	assert.Equal(t, 4, set.Timeline.EstimatedTerms)
	assert.False(t, set.Timeline.EarlyGraduationFeasible)
}
