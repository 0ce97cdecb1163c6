package planner

import "fmt"

// UnmetReason tags one itemized unmet prerequisite condition.
type UnmetReason string

const (
	// UnmetMissingCourse means the course has no completed ledger record.
	UnmetMissingCourse UnmetReason = "missing_course"
	// UnmetInsufficientGrade means the course was completed below the
	// required grade.
	UnmetInsufficientGrade UnmetReason = "insufficient_grade"
)

// UnmetCondition is one concrete reason a prerequisite rule is not satisfied.
type UnmetCondition struct {
	Reason        UnmetReason `json:"reason"`
	Course        string      `json:"course"`
	RequiredGrade Grade       `json:"requiredGrade,omitempty"`
	ActualGrade   Grade       `json:"actualGrade,omitempty"`
}

// EligibilityResult is the outcome of evaluating one target course against a
// ledger. Unmet conditions are data, not errors: they are the expected answer
// to "what is still in the way".
type EligibilityResult struct {
	Course   string           `json:"course"`
	Eligible bool             `json:"eligible"`
	Unmet    []UnmetCondition `json:"unmet"`
}

// evaluation is the per-request evaluation context. It owns the memoization
// cache for exactly one ledger snapshot; a course appearing as a dependency of
// many ranked candidates is evaluated once. The cache is never shared across
// requests, so results from one student can never leak into another's plan.
type evaluation struct {
	session *Session
	ledger  *Ledger
	memo    map[string]EligibilityResult
}

func (s *Session) newEvaluation(ledger *Ledger) *evaluation {
	return &evaluation{
		session: s,
		ledger:  ledger,
		memo:    make(map[string]EligibilityResult),
	}
}

// Evaluate decides whether the ledger satisfies the prerequisite rule of the
// target course. A course with no rule in the set is trivially eligible. A
// course sitting on a rule cycle yields a CyclicRuleError — the ambiguous
// state is reported, never guessed either way.
func (s *Session) Evaluate(course string, ledger *Ledger) (EligibilityResult, error) {
	if !s.catalog.Has(course) {
		return EligibilityResult{}, fmt.Errorf("%w: %s", ErrCourseNotFound, course)
	}
	return s.newEvaluation(ledger).evaluate(course)
}

func (e *evaluation) evaluate(course string) (EligibilityResult, error) {
	if cached, ok := e.memo[course]; ok {
		return cached, nil
	}
	if e.session.graph.members[course] {
		return EligibilityResult{}, &CyclicRuleError{Course: course, Cycle: e.session.graph.cycleMembers}
	}

	result := EligibilityResult{Course: course, Eligible: true, Unmet: []UnmetCondition{}}
	if rule, ok := e.session.rules.Get(course); ok {
		eligible, unmet := e.evalRule(rule)
		result.Eligible = eligible
		if unmet != nil {
			result.Unmet = unmet
		}
	}

	e.memo[course] = result
	return result, nil
}

// evalRule walks the rule tree by recursive descent. The tree is finite by
// construction, so the recursion is bounded by its depth.
func (e *evaluation) evalRule(rule Rule) (bool, []UnmetCondition) {
	switch node := rule.(type) {
	case Leaf:
		return e.evalLeaf(node)

	case AllOf:
		// Every child must hold. Each failing child reports its own unmet
		// conditions: two distinct missing courses are flagged independently,
		// never conflated into one interchangeable slot.
		eligible := true
		var unmet []UnmetCondition
		for _, child := range node.Children {
			childOK, childUnmet := e.evalRule(child)
			if !childOK {
				eligible = false
				unmet = append(unmet, childUnmet...)
			}
		}
		return eligible, unmet

	case OneOf:
		// Any satisfied child satisfies the whole node. Otherwise report the
		// least-unsatisfied alternative (fewest unmet conditions, declaration
		// order breaking ties) so the caller sees one concrete path to
		// completion instead of every alternative at once.
		var best []UnmetCondition
		for _, child := range node.Children {
			childOK, childUnmet := e.evalRule(child)
			if childOK {
				return true, nil
			}
			if best == nil || len(childUnmet) < len(best) {
				best = childUnmet
			}
		}
		return false, best

	default:
		// Unreachable with the three defined node variants.
		return false, nil
	}
}

func (e *evaluation) evalLeaf(leaf Leaf) (bool, []UnmetCondition) {
	grade, completed := e.ledger.CompletedGrade(leaf.Course)
	if !completed {
		return false, []UnmetCondition{{Reason: UnmetMissingCourse, Course: leaf.Course}}
	}
	if !grade.AtLeast(leaf.MinGrade) {
		return false, []UnmetCondition{{
			Reason:        UnmetInsufficientGrade,
			Course:        leaf.Course,
			RequiredGrade: leaf.MinGrade,
			ActualGrade:   grade,
		}}
	}
	return true, nil
}
