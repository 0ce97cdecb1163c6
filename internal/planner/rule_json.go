package planner

import (
	"encoding/json"
	"fmt"
)

// JSON encoding of rule trees, shared by the database layer (JSONB columns)
// and the offline file loaders. The discriminator is the "type" field:
//
//	{"type": "course", "code": "CS18200", "minGrade": "C"}
//	{"type": "allOf", "children": [ ... ]}
//	{"type": "oneOf", "children": [ ... ]}
type ruleEnvelope struct {
	Type     string            `json:"type"`
	Code     string            `json:"code,omitempty"`
	MinGrade Grade             `json:"minGrade,omitempty"`
	Children []json.RawMessage `json:"children,omitempty"`
}

const (
	ruleTypeCourse = "course"
	ruleTypeAllOf  = "allOf"
	ruleTypeOneOf  = "oneOf"
)

// EncodeRule serializes a rule tree to its JSON form.
func EncodeRule(r Rule) ([]byte, error) {
	env, err := toEnvelope(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func toEnvelope(r Rule) (*ruleEnvelope, error) {
	switch n := r.(type) {
	case Leaf:
		return &ruleEnvelope{Type: ruleTypeCourse, Code: n.Course, MinGrade: n.MinGrade}, nil
	case AllOf:
		children, err := encodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return &ruleEnvelope{Type: ruleTypeAllOf, Children: children}, nil
	case OneOf:
		children, err := encodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return &ruleEnvelope{Type: ruleTypeOneOf, Children: children}, nil
	default:
		return nil, fmt.Errorf("rule: cannot encode node of type %T", r)
	}
}

func encodeChildren(children []Rule) ([]json.RawMessage, error) {
	encoded := make([]json.RawMessage, 0, len(children))
	for _, child := range children {
		raw, err := EncodeRule(child)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, raw)
	}
	return encoded, nil
}

// DecodeRule parses the JSON form of a rule tree.
func DecodeRule(data []byte) (Rule, error) {
	var env ruleEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("rule: invalid JSON: %w", err)
	}

	switch env.Type {
	case ruleTypeCourse:
		if env.Code == "" {
			return nil, fmt.Errorf("rule: course node without a course code")
		}
		return Leaf{Course: env.Code, MinGrade: env.MinGrade}, nil
	case ruleTypeAllOf, ruleTypeOneOf:
		if len(env.Children) == 0 {
			return nil, fmt.Errorf("rule: %s node without children", env.Type)
		}
		children := make([]Rule, 0, len(env.Children))
		for _, raw := range env.Children {
			child, err := DecodeRule(raw)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if env.Type == ruleTypeAllOf {
			return AllOf{Children: children}, nil
		}
		return OneOf{Children: children}, nil
	default:
		return nil, fmt.Errorf("rule: unknown node type %q", env.Type)
	}
}
