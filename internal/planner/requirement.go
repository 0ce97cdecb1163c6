package planner

// RequirementType classifies a requirement group for graduation credit.
type RequirementType string

const (
	RequirementFoundation RequirementType = "foundation"
	RequirementCore       RequirementType = "core"
	RequirementElective   RequirementType = "elective"
	RequirementCapstone   RequirementType = "capstone"
)

// RequirementGroup represents a graduation-credit rule: complete NeedCount of
// Courses. It is about earning a degree, not about eligibility to enroll —
// enrollment eligibility is governed by prerequisite rules.
type RequirementGroup struct {
	Major     string          `json:"major"`
	Track     string          `json:"track,omitempty"`
	Key       string          `json:"key"`
	Type      RequirementType `json:"type"`
	NeedCount int             `json:"needCount"`
	Courses   []string        `json:"courses"`
	Priority  int             `json:"priority"` // curriculum-declared sequencing, lower first
}

// matches reports whether the group applies to a plan request. An empty
// request track matches every track; an empty group track is track-agnostic.
func (g RequirementGroup) matches(major, track string) bool {
	if g.Major != major {
		return false
	}
	if track == "" || g.Track == "" {
		return true
	}
	return g.Track == track
}
