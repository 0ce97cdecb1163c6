package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRuleNested(t *testing.T) {
	data := []byte(`{
		"type": "allOf",
		"children": [
			{"type": "course", "code": "CS18200", "minGrade": "C"},
			{"type": "oneOf", "children": [
				{"type": "course", "code": "CS24000", "minGrade": "C"},
				{"type": "course", "code": "ECE26400", "minGrade": "B"}
			]}
		]
	}`)

	rule, err := DecodeRule(data)
	require.NoError(t, err)

	all, ok := rule.(AllOf)
	require.True(t, ok)
	require.Len(t, all.Children, 2)

	leaf, ok := all.Children[0].(Leaf)
	require.True(t, ok)
	assert.Equal(t, "CS18200", leaf.Course)
	assert.Equal(t, Grade("C"), leaf.MinGrade)

	one, ok := all.Children[1].(OneOf)
	require.True(t, ok)
	assert.Len(t, one.Children, 2)
}

func TestEncodeRuleRoundTrip(t *testing.T) {
	rule := OneOf{Children: []Rule{
		Leaf{Course: "MA16100", MinGrade: "B"},
		AllOf{Children: []Rule{
			Leaf{Course: "MA16010", MinGrade: "C"},
			Leaf{Course: "MA16020", MinGrade: "C"},
		}},
	}}

	data, err := EncodeRule(rule)
	require.NoError(t, err)

	decoded, err := DecodeRule(data)
	require.NoError(t, err)
	assert.Equal(t, Rule(rule), decoded)
}

func TestDecodeRuleErrors(t *testing.T) {
	cases := map[string]string{
		"unknown type":         `{"type": "someOf", "children": []}`,
		"course without code":  `{"type": "course", "minGrade": "C"}`,
		"allOf no children":    `{"type": "allOf"}`,
		"oneOf empty children": `{"type": "oneOf", "children": []}`,
		"bad child":            `{"type": "allOf", "children": [{"type": "nope"}]}`,
		"not json":             `{{`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRule([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestRuleCoursesDistinctInOrder(t *testing.T) {
	rule := AllOf{Children: []Rule{
		Leaf{Course: "CS18200", MinGrade: "C"},
		OneOf{Children: []Rule{
			Leaf{Course: "CS24000", MinGrade: "C"},
			Leaf{Course: "CS18200", MinGrade: "B"},
		}},
	}}

	assert.Equal(t, []string{"CS18200", "CS24000"}, RuleCourses(rule))
}
