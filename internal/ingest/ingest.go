// Package ingest loads planning data from JSON files for offline use. The
// HTTP server loads the same data from Postgres; the CLI works from files so
// an advisor can run an analysis without a database.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yigit/acadplan/internal/planner"
)

// LoadCatalog reads a JSON array of catalog courses.
func LoadCatalog(path string) (*planner.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var courses []planner.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	catalog, err := planner.NewCatalog(courses)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return catalog, nil
}

// LoadRules reads a JSON object mapping course codes to prerequisite rule
// trees.
func LoadRules(path string) (*planner.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	rules := make(map[string]planner.Rule, len(raw))
	for course, encoded := range raw {
		rule, err := planner.DecodeRule(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid rule for %s in %s: %w", course, path, err)
		}
		rules[course] = rule
	}
	return planner.NewRuleSet(rules), nil
}

// LoadGroups reads a JSON array of requirement groups.
func LoadGroups(path string) ([]planner.RequirementGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requirement groups file: %w", err)
	}

	var groups []planner.RequirementGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing requirement groups file %s: %w", path, err)
	}
	return groups, nil
}

// LoadLedger reads a JSON array of course records.
func LoadLedger(path string) (*planner.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger file: %w", err)
	}

	var records []planner.CourseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing ledger file %s: %w", path, err)
	}
	return planner.NewLedger(records), nil
}
