package planner

// TimelineEstimate aggregates the remaining credit requirements into a term
// count. EarlyGraduationFeasible is a signal, not a promise.
type TimelineEstimate struct {
	RemainingCredits map[RequirementType]int `json:"remainingCredits"`
	TotalCredits     int                     `json:"totalCredits"`
	CreditsPerTerm   int                     `json:"creditsPerTerm"`
	EstimatedTerms   int                     `json:"estimatedTerms"`

	EarlyGraduationFeasible bool `json:"earlyGraduationFeasible"`
}

// estimateTimeline computes remaining credits per requirement category and
// the number of terms needed at the policy's credits-per-term pace.
//
// For each group the remaining need is NeedCount minus earned candidates,
// clamped at zero. In-progress courses count toward credit (they occupy a
// slot) even though they never satisfy prerequisites. The credit cost of the
// open need is taken from the first unearned candidates in the declared
// candidate order, which keeps the estimate deterministic.
func (s *Session) estimateTimeline(ledger *Ledger, groups []RequirementGroup) TimelineEstimate {
	estimate := TimelineEstimate{
		RemainingCredits: make(map[RequirementType]int),
		CreditsPerTerm:   s.policy.CreditsPerTerm,
	}

	for _, group := range groups {
		earned := 0
		for _, code := range group.Courses {
			if ledger.CountsTowardCredit(code) {
				earned++
			}
		}

		need := group.NeedCount - earned
		if need <= 0 {
			continue
		}

		credits := 0
		for _, code := range group.Courses {
			if need == 0 {
				break
			}
			if ledger.CountsTowardCredit(code) {
				continue
			}
			course, _ := s.catalog.Get(code)
			credits += course.Credits
			need--
		}

		estimate.RemainingCredits[group.Type] += credits
		estimate.TotalCredits += credits
	}

	// Integer ceiling of total/perTerm.
	perTerm := s.policy.CreditsPerTerm
	estimate.EstimatedTerms = (estimate.TotalCredits + perTerm - 1) / perTerm
	estimate.EarlyGraduationFeasible = estimate.EstimatedTerms <= s.policy.EarlyGraduationTerms

	return estimate
}
