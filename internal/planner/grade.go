package planner

import "strings"

// Grade is a letter grade as recorded on a transcript ("A", "C-", "Pass", …).
type Grade string

// Common grades referenced by prerequisite rules.
const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeD    Grade = "D"
	GradeF    Grade = "F"
	GradePass Grade = "Pass"
)

// gradePoints maps normalized grade strings to the 4.0 scale. A "Pass" is
// treated as a C for prerequisite comparisons; a withdrawal earns nothing.
var gradePoints = map[string]float64{
	"A+": 4.0,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.3,
	"D":  1.0,
	"D-": 0.7,
	"F":  0.0,

	"PASS":     2.0,
	"P":        2.0,
	"W":        0.0,
	"WITHDRAW": 0.0,
}

// Points converts the grade to its numeric value on the 4.0 scale. The mapping
// is total: unrecognized or empty grades resolve to 0.0, never an error.
func (g Grade) Points() float64 {
	key := strings.ToUpper(strings.TrimSpace(string(g)))
	if points, ok := gradePoints[key]; ok {
		return points
	}
	return 0.0
}

// AtLeast reports whether the grade meets the given minimum on the numeric
// scale.
func (g Grade) AtLeast(min Grade) bool {
	return g.Points() >= min.Points()
}
