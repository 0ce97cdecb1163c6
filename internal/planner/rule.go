package planner

import "sort"

// Rule is one node of a boolean prerequisite expression tree. The three
// concrete variants are Leaf, AllOf and OneOf; modelling them as a tagged tree
// keeps "require both" and "require either" structurally distinct.
type Rule interface {
	isRule()
}

// Leaf is an atomic condition: the ledger must contain the named course,
// completed, with a grade at or above MinGrade.
type Leaf struct {
	Course   string
	MinGrade Grade
}

// AllOf is satisfied iff every child rule is satisfied.
type AllOf struct {
	Children []Rule
}

// OneOf is satisfied iff at least one child rule is satisfied.
type OneOf struct {
	Children []Rule
}

func (Leaf) isRule()  {}
func (AllOf) isRule() {}
func (OneOf) isRule() {}

// RuleCourses returns the distinct course codes referenced by any Leaf in the
// tree, in declaration order.
func RuleCourses(r Rule) []string {
	var codes []string
	seen := make(map[string]bool)
	var walk func(Rule)
	walk = func(node Rule) {
		switch n := node.(type) {
		case Leaf:
			if !seen[n.Course] {
				seen[n.Course] = true
				codes = append(codes, n.Course)
			}
		case AllOf:
			for _, child := range n.Children {
				walk(child)
			}
		case OneOf:
			for _, child := range n.Children {
				walk(child)
			}
		}
	}
	walk(r)
	return codes
}

// RuleSet is a read-only lookup of prerequisite rules keyed by target course
// code. A course absent from the set has no prerequisites.
type RuleSet struct {
	rules map[string]Rule
}

// NewRuleSet builds a rule set from a map of target course code to rule tree.
func NewRuleSet(rules map[string]Rule) *RuleSet {
	owned := make(map[string]Rule, len(rules))
	for code, rule := range rules {
		owned[code] = rule
	}
	return &RuleSet{rules: owned}
}

// Get returns the rule attached to the given target course.
func (rs *RuleSet) Get(code string) (Rule, bool) {
	rule, ok := rs.rules[code]
	return rule, ok
}

// Len returns the number of courses that carry a prerequisite rule.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Targets returns the target course codes in lexicographic order.
func (rs *RuleSet) Targets() []string {
	targets := make([]string, 0, len(rs.rules))
	for code := range rs.rules {
		targets = append(targets, code)
	}
	sort.Strings(targets)
	return targets
}
