package planner

import (
	"fmt"
	"sort"
	"strings"
)

// CourseScore is one ranked candidate with the signals that produced its
// score, so the ordering is reproducible and explainable.
type CourseScore struct {
	Course          string          `json:"course"`
	Title           string          `json:"title"`
	Credits         int             `json:"credits"`
	Score           float64         `json:"score"`
	Eligible        bool            `json:"eligible"`
	RequirementType RequirementType `json:"requirementType"`
	RequirementKey  string          `json:"requirementKey"`
	Critical        bool            `json:"critical"`
	ChainLength     int             `json:"chainLength"`
	DirectlyUnlocks int             `json:"directlyUnlocks"`
	Difficulty      float64         `json:"difficulty"`
	SuccessRate     float64         `json:"successRate"`
	PriorityOrder   int             `json:"priorityOrder"`
	Rationale       string          `json:"rationale"`

	// Unmet is populated for not-yet-eligible candidates only.
	Unmet []UnmetCondition `json:"unmet,omitempty"`
}

// candidate is a course drawn from the requirement groups, annotated with the
// strongest group that wants it.
type candidate struct {
	course   Course
	reqType  RequirementType
	reqKey   string
	priority int
}

// rank scores every not-yet-completed course of the given requirement groups
// and splits the result into immediately-eligible and not-yet-eligible lists,
// both ordered by score descending with deterministic tie-breaks.
func (s *Session) rank(ev *evaluation, groups []RequirementGroup) (eligible, pending []CourseScore, err error) {
	candidates := s.collectCandidates(ev.ledger, groups)

	for _, cand := range candidates {
		result, evalErr := ev.evaluate(cand.course.Code)
		if evalErr != nil {
			return nil, nil, evalErr
		}

		score, scoreErr := s.scoreCandidate(cand)
		if scoreErr != nil {
			return nil, nil, scoreErr
		}
		score.Eligible = result.Eligible

		if result.Eligible {
			eligible = append(eligible, score)
		} else {
			score.Unmet = result.Unmet
			pending = append(pending, score)
		}
	}

	sortScores(eligible)
	sortScores(pending)
	return eligible, pending, nil
}

// collectCandidates walks the groups in declared order and keeps, per course,
// the highest-weighted requirement type and the lowest priority order.
// Completed courses no longer compete for a slot in the plan.
func (s *Session) collectCandidates(ledger *Ledger, groups []RequirementGroup) []candidate {
	byCourse := make(map[string]candidate)
	var order []string

	for _, group := range groups {
		for _, code := range group.Courses {
			if ledger.Completed(code) {
				continue
			}
			course, _ := s.catalog.Get(code)

			existing, seen := byCourse[code]
			if !seen {
				byCourse[code] = candidate{
					course:   course,
					reqType:  group.Type,
					reqKey:   group.Key,
					priority: group.Priority,
				}
				order = append(order, code)
				continue
			}
			if s.policy.requirementWeight(group.Type) > s.policy.requirementWeight(existing.reqType) {
				existing.reqType = group.Type
				existing.reqKey = group.Key
			}
			if group.Priority < existing.priority {
				existing.priority = group.Priority
			}
			byCourse[code] = existing
		}
	}

	candidates := make([]candidate, 0, len(order))
	for _, code := range order {
		candidates = append(candidates, byCourse[code])
	}
	return candidates
}

// scoreCandidate applies the documented score formula:
//
//	score = w1*isCritical + w2*requirementWeight + w3*(5.0 - difficulty)
//	      + w4*directlyUnlocks + w5*successRate
func (s *Session) scoreCandidate(cand candidate) (CourseScore, error) {
	chainLen, err := s.graph.chainLength(cand.course.Code)
	if err != nil {
		return CourseScore{}, err
	}

	critical := chainLen >= 1 || cand.course.Foundation
	unlocks := s.graph.directUnlockCount(cand.course.Code)

	w := s.policy.Weights
	score := w.Requirement*s.policy.requirementWeight(cand.reqType) +
		w.Difficulty*(maxDifficulty-cand.course.Difficulty) +
		w.Unlocks*float64(unlocks) +
		w.Success*cand.course.SuccessRate
	if critical {
		score += w.Critical
	}

	cs := CourseScore{
		Course:          cand.course.Code,
		Title:           cand.course.Title,
		Credits:         cand.course.Credits,
		Score:           score,
		RequirementType: cand.reqType,
		RequirementKey:  cand.reqKey,
		Critical:        critical,
		ChainLength:     chainLen,
		DirectlyUnlocks: unlocks,
		Difficulty:      cand.course.Difficulty,
		SuccessRate:     cand.course.SuccessRate,
		PriorityOrder:   cand.priority,
	}
	cs.Rationale = buildRationale(cs)
	return cs, nil
}

// sortScores orders by score descending, then curriculum priority order
// ascending, then course code, so identical inputs always produce identical
// output.
func sortScores(scores []CourseScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		if scores[i].PriorityOrder != scores[j].PriorityOrder {
			return scores[i].PriorityOrder < scores[j].PriorityOrder
		}
		return scores[i].Course < scores[j].Course
	})
}

// buildRationale renders the score components as a short machine-generated
// explanation, e.g. "foundation requirement; critical path; unlocks 4
// courses; moderate difficulty".
func buildRationale(cs CourseScore) string {
	parts := []string{fmt.Sprintf("%s requirement", cs.RequirementType)}
	if cs.Critical {
		parts = append(parts, "critical path")
	}
	switch cs.DirectlyUnlocks {
	case 0:
	case 1:
		parts = append(parts, "unlocks 1 course")
	default:
		parts = append(parts, fmt.Sprintf("unlocks %d courses", cs.DirectlyUnlocks))
	}
	switch {
	case cs.Difficulty < 2.0:
		parts = append(parts, "low difficulty")
	case cs.Difficulty < 3.5:
		parts = append(parts, "moderate difficulty")
	default:
		parts = append(parts, "high difficulty")
	}
	if cs.SuccessRate >= 0.85 {
		parts = append(parts, "high success rate")
	}
	return strings.Join(parts, "; ")
}
