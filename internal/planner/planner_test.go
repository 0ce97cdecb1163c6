package planner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testCourses is a small curriculum with a four-course prerequisite chain
// (CS101 -> CS102 -> CS201 -> CS301), an alternative-path course (MA102) and
// a free-standing elective.
func testCourses() []Course {
	return []Course{
		{Code: "CS101", Title: "Intro to Programming", Department: "CS", Credits: 4, Difficulty: 2.5, SuccessRate: 0.85, Foundation: true},
		{Code: "CS102", Title: "Discrete Structures", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.8},
		{Code: "CS201", Title: "Data Structures", Department: "CS", Credits: 3, Difficulty: 4.5, SuccessRate: 0.6},
		{Code: "CS301", Title: "Operating Systems", Department: "CS", Credits: 3, Difficulty: 4.6, SuccessRate: 0.65},
		{Code: "MA101", Title: "Calculus I", Department: "MA", Credits: 4, Difficulty: 3.0, SuccessRate: 0.75, Foundation: true},
		{Code: "MA102", Title: "Calculus II", Department: "MA", Credits: 4, Difficulty: 3.2, SuccessRate: 0.7},
		{Code: "ELEC1", Title: "Technical Writing", Department: "ENGL", Credits: 3, Difficulty: 1.8, SuccessRate: 0.95},
	}
}

func testRules() map[string]Rule {
	return map[string]Rule{
		"CS102": Leaf{Course: "CS101", MinGrade: "C"},
		"CS201": AllOf{Children: []Rule{
			Leaf{Course: "CS102", MinGrade: "C"},
			Leaf{Course: "MA101", MinGrade: "C"},
		}},
		"CS301": Leaf{Course: "CS201", MinGrade: "C"},
		"MA102": OneOf{Children: []Rule{
			Leaf{Course: "MA101", MinGrade: "B"},
			Leaf{Course: "CS101", MinGrade: "A"},
		}},
	}
}

func testGroups() []RequirementGroup {
	return []RequirementGroup{
		{Major: "CS", Key: "foundation", Type: RequirementFoundation, NeedCount: 2, Courses: []string{"CS101", "MA101"}, Priority: 1},
		{Major: "CS", Key: "core", Type: RequirementCore, NeedCount: 3, Courses: []string{"CS102", "CS201", "CS301"}, Priority: 2},
		{Major: "CS", Key: "electives", Type: RequirementElective, NeedCount: 1, Courses: []string{"ELEC1", "MA102"}, Priority: 3},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	catalog, err := NewCatalog(testCourses())
	require.NoError(t, err)
	session, err := NewSession(catalog, NewRuleSet(testRules()), testGroups(), DefaultPolicy(), zerolog.Nop())
	require.NoError(t, err)
	return session
}

// newCyclicSession builds a session whose rule graph contains the cycle
// LOOPA <-> LOOPB, with DOWNSTREAM requiring LOOPA.
func newCyclicSession(t *testing.T) *Session {
	t.Helper()
	catalog, err := NewCatalog([]Course{
		{Code: "LOOPA", Title: "Loop A", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.8},
		{Code: "LOOPB", Title: "Loop B", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.8},
		{Code: "DOWNSTREAM", Title: "Downstream", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.8},
	})
	require.NoError(t, err)

	rules := NewRuleSet(map[string]Rule{
		"LOOPA":      Leaf{Course: "LOOPB", MinGrade: "C"},
		"LOOPB":      Leaf{Course: "LOOPA", MinGrade: "C"},
		"DOWNSTREAM": Leaf{Course: "LOOPA", MinGrade: "C"},
	})

	session, err := NewSession(catalog, rules, nil, DefaultPolicy(), zerolog.Nop())
	require.NoError(t, err)
	return session
}

func completedLedger(grades map[string]Grade) *Ledger {
	var records []CourseRecord
	for course, grade := range grades {
		records = append(records, CourseRecord{Course: course, Grade: grade, Status: StatusCompleted})
	}
	return NewLedger(records)
}
