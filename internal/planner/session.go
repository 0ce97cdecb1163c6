package planner

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Session owns the shared read-only planning data for one catalog load:
// courses, prerequisite rules, requirement groups, policy and the precomputed
// dependency graph. A session is safe for concurrent use; per-request state
// (the ledger and the evaluation memo) never lives on it.
type Session struct {
	catalog *Catalog
	rules   *RuleSet
	groups  []RequirementGroup
	policy  Policy
	graph   *depGraph
	log     zerolog.Logger
}

// NewSession validates the planning data and precomputes the dependency
// analysis. A rule or requirement group referencing a course absent from the
// catalog refuses to build the session: an unresolved reference is a data
// error, not a denial.
func NewSession(catalog *Catalog, rules *RuleSet, groups []RequirementGroup, policy Policy, lgr zerolog.Logger) (*Session, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("planner: session requires a non-empty catalog")
	}
	if rules == nil {
		rules = NewRuleSet(nil)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	for _, target := range rules.Targets() {
		if !catalog.Has(target) {
			return nil, &UnknownCourseReferenceError{Course: target, ReferencedBy: "prerequisite rule set"}
		}
		rule, _ := rules.Get(target)
		for _, ref := range RuleCourses(rule) {
			if !catalog.Has(ref) {
				return nil, &UnknownCourseReferenceError{Course: ref, ReferencedBy: "rule for " + target}
			}
		}
	}
	for _, group := range groups {
		for _, code := range group.Courses {
			if !catalog.Has(code) {
				return nil, &UnknownCourseReferenceError{Course: code, ReferencedBy: "requirement group " + group.Key}
			}
		}
	}

	s := &Session{
		catalog: catalog,
		rules:   rules,
		groups:  append([]RequirementGroup(nil), groups...),
		policy:  policy,
		graph:   buildDepGraph(catalog, rules),
		log:     lgr,
	}

	s.log.Info().
		Int("courses", catalog.Len()).
		Int("rules", rules.Len()).
		Int("requirementGroups", len(groups)).
		Msg("Planning session built")
	if len(s.graph.cycleMembers) > 0 {
		s.log.Warn().
			Strs("courses", s.graph.cycleMembers).
			Msg("Prerequisite rule graph contains a cycle; affected courses will fail evaluation")
	}

	return s, nil
}

// Catalog exposes the session's course catalog.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Policy exposes the session's planning policy.
func (s *Session) Policy() Policy {
	return s.policy
}

// BlockingFactor returns the dependency analysis for one course.
func (s *Session) BlockingFactor(course string) (BlockingFactor, error) {
	if !s.catalog.Has(course) {
		return BlockingFactor{}, fmt.Errorf("%w: %s", ErrCourseNotFound, course)
	}
	return s.graph.blockingFactor(course)
}

// ChainLength returns the longest prerequisite path ending at the course.
func (s *Session) ChainLength(course string) (int, error) {
	if !s.catalog.Has(course) {
		return 0, fmt.Errorf("%w: %s", ErrCourseNotFound, course)
	}
	return s.graph.chainLength(course)
}

// RecommendationSet is the composed planning answer for one student: ranked
// eligible courses, the blocked remainder with its unmet conditions, the
// timeline estimate and the risk assessment. The engine emits no timestamps
// and no randomness, so identical inputs produce identical output.
type RecommendationSet struct {
	Major string `json:"major"`
	Track string `json:"track,omitempty"`

	Eligible       []CourseScore `json:"eligible"`
	TopPriority    []CourseScore `json:"topPriority"`
	NotYetEligible []CourseScore `json:"notYetEligible"`

	Timeline TimelineEstimate `json:"timeline"`
	Risk     RiskAssessment   `json:"risk"`
}

// Plan composes evaluator, graph analysis, ranker, timeline and risk into one
// recommendation set. It performs no business logic of its own, and any error
// from a lower component propagates unchanged.
func (s *Session) Plan(ledger *Ledger, major, track string) (*RecommendationSet, error) {
	groups := s.groupsFor(major, track)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRequirementGroups, major)
	}

	ev := s.newEvaluation(ledger)
	eligible, pending, err := s.rank(ev, groups)
	if err != nil {
		return nil, err
	}

	limit := s.policy.RecommendationLimit
	if limit > len(eligible) {
		limit = len(eligible)
	}

	set := &RecommendationSet{
		Major:          major,
		Track:          track,
		Eligible:       eligible,
		TopPriority:    eligible[:limit],
		NotYetEligible: pending,
		Timeline:       s.estimateTimeline(ledger, groups),
		Risk:           s.assessRisk(s.remainingCourses(ledger, groups)),
	}
	if set.Eligible == nil {
		set.Eligible = []CourseScore{}
	}
	if set.TopPriority == nil {
		set.TopPriority = []CourseScore{}
	}
	if set.NotYetEligible == nil {
		set.NotYetEligible = []CourseScore{}
	}
	return set, nil
}

// groupsFor selects the requirement groups applying to a major/track pair.
func (s *Session) groupsFor(major, track string) []RequirementGroup {
	var groups []RequirementGroup
	for _, group := range s.groups {
		if group.matches(major, track) {
			groups = append(groups, group)
		}
	}
	return groups
}

// remainingCourses collects the distinct not-yet-completed candidates of the
// groups, in declared order, for the risk assessment.
func (s *Session) remainingCourses(ledger *Ledger, groups []RequirementGroup) []Course {
	var remaining []Course
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, code := range group.Courses {
			if seen[code] || ledger.Completed(code) {
				continue
			}
			seen[code] = true
			course, _ := s.catalog.Get(code)
			remaining = append(remaining, course)
		}
	}
	return remaining
}
