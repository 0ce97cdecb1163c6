package planner

import "fmt"

// Weights are the scoring coefficients w1..w5 of the priority formula:
//
//	score = w1*isCritical + w2*requirementWeight + w3*(5.0 - difficulty)
//	      + w4*directlyUnlocks + w5*successRate
type Weights struct {
	Critical    float64 `json:"critical" yaml:"critical"`
	Requirement float64 `json:"requirement" yaml:"requirement"`
	Difficulty  float64 `json:"difficulty" yaml:"difficulty"`
	Unlocks     float64 `json:"unlocks" yaml:"unlocks"`
	Success     float64 `json:"success" yaml:"success"`
}

// RiskThresholds configure the risk level classification.
type RiskThresholds struct {
	// HighDifficultyBar is the difficulty score above which a course counts
	// as high-difficulty.
	HighDifficultyBar float64 `json:"highDifficultyBar" yaml:"high_difficulty_bar"`

	HighAvgDifficulty   float64 `json:"highAvgDifficulty" yaml:"high_avg_difficulty"`
	HighCount           int     `json:"highCount" yaml:"high_count"`
	MediumAvgDifficulty float64 `json:"mediumAvgDifficulty" yaml:"medium_avg_difficulty"`
	MediumCount         int     `json:"mediumCount" yaml:"medium_count"`
}

// Policy is the externally supplied planning configuration. Nothing in the
// engine hardcodes these values; callers tune the planning behavior without
// touching rule logic.
type Policy struct {
	Weights Weights `json:"weights" yaml:"weights"`

	// RequirementWeights rank requirement types in the score formula
	// (foundation > core > elective).
	RequirementWeights map[RequirementType]float64 `json:"requirementWeights" yaml:"requirement_weights"`

	CreditsPerTerm       int `json:"creditsPerTerm" yaml:"credits_per_term"`
	EarlyGraduationTerms int `json:"earlyGraduationTerms" yaml:"early_graduation_terms"`

	Risk RiskThresholds `json:"risk" yaml:"risk"`

	// RecommendationLimit caps the top-priority list in a plan response.
	RecommendationLimit int `json:"recommendationLimit" yaml:"recommendation_limit"`
}

// maxDifficulty is the top of the catalog difficulty scale.
const maxDifficulty = 5.0

// DefaultPolicy returns the documented default planning policy.
func DefaultPolicy() Policy {
	return Policy{
		Weights: Weights{
			Critical:    2.0,
			Requirement: 1.5,
			Difficulty:  0.5,
			Unlocks:     1.0,
			Success:     1.0,
		},
		RequirementWeights: map[RequirementType]float64{
			RequirementFoundation: 3.0,
			RequirementCore:       2.5,
			RequirementCapstone:   2.0,
			RequirementElective:   1.0,
		},
		CreditsPerTerm:       15,
		EarlyGraduationTerms: 7,
		Risk: RiskThresholds{
			HighDifficultyBar:   4.0,
			HighAvgDifficulty:   4.2,
			HighCount:           5,
			MediumAvgDifficulty: 3.8,
			MediumCount:         3,
		},
		RecommendationLimit: 10,
	}
}

// Validate checks the policy for values the engine cannot work with.
func (p Policy) Validate() error {
	if p.CreditsPerTerm <= 0 {
		return fmt.Errorf("policy: credits per term must be positive, got %d", p.CreditsPerTerm)
	}
	if p.EarlyGraduationTerms < 0 {
		return fmt.Errorf("policy: early graduation threshold must not be negative, got %d", p.EarlyGraduationTerms)
	}
	if p.RecommendationLimit < 0 {
		return fmt.Errorf("policy: recommendation limit must not be negative, got %d", p.RecommendationLimit)
	}
	return nil
}

// requirementWeight resolves the weight of a requirement type, falling back to
// the elective weight for unknown types.
func (p Policy) requirementWeight(t RequirementType) float64 {
	if w, ok := p.RequirementWeights[t]; ok {
		return w
	}
	return p.RequirementWeights[RequirementElective]
}
