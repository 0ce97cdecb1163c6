package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/acadplan/internal/planner"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.json", `[
		{"code": "CS101", "title": "Intro", "department": "CS", "credits": 4, "difficulty": 2.5, "successRate": 0.85, "foundation": true},
		{"code": "CS102", "title": "Discrete", "department": "CS", "credits": 3, "difficulty": 3.0, "successRate": 0.8}
	]`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	course, ok := catalog.Get("CS101")
	require.True(t, ok)
	assert.True(t, course.Foundation)
	assert.Equal(t, 4, course.Credits)
}

func TestLoadCatalogInvalidData(t *testing.T) {
	path := writeFile(t, "catalog.json", `[{"code": "", "title": "Nameless", "credits": 3}]`)

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRules(t *testing.T) {
	path := writeFile(t, "rules.json", `{
		"CS102": {"type": "course", "code": "CS101", "minGrade": "C"},
		"CS201": {"type": "allOf", "children": [
			{"type": "course", "code": "CS102", "minGrade": "C"},
			{"type": "course", "code": "MA101", "minGrade": "C"}
		]}
	}`)

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 2, rules.Len())

	rule, ok := rules.Get("CS102")
	require.True(t, ok)
	leaf, ok := rule.(planner.Leaf)
	require.True(t, ok)
	assert.Equal(t, "CS101", leaf.Course)
}

func TestLoadRulesInvalidRule(t *testing.T) {
	path := writeFile(t, "rules.json", `{"CS102": {"type": "someOf"}}`)

	_, err := LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CS102")
}

func TestLoadGroups(t *testing.T) {
	path := writeFile(t, "groups.json", `[
		{"major": "CS", "key": "core", "type": "core", "needCount": 2, "courses": ["CS101", "CS102"], "priority": 1}
	]`)

	groups, err := LoadGroups(path)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, planner.RequirementCore, groups[0].Type)
	assert.Equal(t, 2, groups[0].NeedCount)
}

func TestLoadLedger(t *testing.T) {
	path := writeFile(t, "ledger.json", `[
		{"course": "CS101", "grade": "B", "term": "2025-fall", "creditsEarned": 4, "status": "completed"},
		{"course": "CS102", "status": "in_progress"}
	]`)

	ledger, err := LoadLedger(path)
	require.NoError(t, err)

	grade, ok := ledger.CompletedGrade("CS101")
	require.True(t, ok)
	assert.Equal(t, planner.Grade("B"), grade)
	assert.True(t, ledger.InProgress("CS102"))
}
