package planner

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is matching across layers.
var (
	// ErrUnknownCourseReference marks a rule or requirement group naming a
	// course that does not exist in the catalog. Fatal at session build.
	ErrUnknownCourseReference = errors.New("unknown course reference")

	// ErrCyclicRule marks a prerequisite rule graph cycle. Fatal for the
	// affected course; independent courses still evaluate.
	ErrCyclicRule = errors.New("cyclic prerequisite rule")

	// ErrCourseNotFound marks a lookup of a course code absent from the
	// catalog.
	ErrCourseNotFound = errors.New("course not found")

	// ErrNoRequirementGroups marks a plan request for a major/track with no
	// configured requirement groups.
	ErrNoRequirementGroups = errors.New("no requirement groups for major")
)

// UnknownCourseReferenceError reports the exact dangling reference so the
// catalog data can be fixed. An ambiguous rule must never be evaluated.
type UnknownCourseReferenceError struct {
	Course       string // the missing course code
	ReferencedBy string // rule target or requirement group key naming it
}

func (e *UnknownCourseReferenceError) Error() string {
	return fmt.Sprintf("unknown course reference: %s referenced by %s", e.Course, e.ReferencedBy)
}

func (e *UnknownCourseReferenceError) Unwrap() error {
	return ErrUnknownCourseReference
}

// CyclicRuleError reports a course whose prerequisite chain contains a cycle.
// The cycle is surfaced, never silently resolved as satisfied or unsatisfied.
type CyclicRuleError struct {
	Course string
	Cycle  []string // course codes participating in the strongly-connected part, sorted
}

func (e *CyclicRuleError) Error() string {
	if len(e.Cycle) == 0 {
		return fmt.Sprintf("cyclic prerequisite rule involving %s", e.Course)
	}
	return fmt.Sprintf("cyclic prerequisite rule involving %s (cycle members: %s)", e.Course, strings.Join(e.Cycle, ", "))
}

func (e *CyclicRuleError) Unwrap() error {
	return ErrCyclicRule
}
