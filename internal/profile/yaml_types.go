package profile

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"automapper/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- ConverterSpec YAML methods ---

// UnmarshalYAML accepts a converter name or a single-key mapping from the
// name to its argument.
func (c *ConverterSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = ConverterSpec{Name: node.Value}
		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: converter mapping must have exactly one key", node.Line)
		}

		key, value := node.Content[0], node.Content[1]
		out := ConverterSpec{Name: key.Value}

		switch value.Kind {
		case yaml.ScalarNode:
			out.Arg = value.Value
		case yaml.SequenceNode:
			if err := value.Decode(&out.Chain); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d: converter %q: unsupported argument", value.Line, key.Value)
		}

		*c = out

		return nil

	default:
		return fmt.Errorf("line %d: expected converter name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the shortest form that reads back the same spec.
func (c ConverterSpec) MarshalYAML() (any, error) {
	switch {
	case len(c.Chain) > 0:
		return map[string][]ConverterSpec{c.Name: c.Chain}, nil
	case c.Arg != "":
		return map[string]string{c.Name: c.Arg}, nil
	default:
		return c.Name, nil
	}
}

func (c ConverterSpec) String() string {
	switch {
	case len(c.Chain) > 0:
		parts := make([]string, len(c.Chain))
		for i, sub := range c.Chain {
			parts[i] = sub.String()
		}

		return c.Name + "(" + strings.Join(parts, ", ") + ")"
	case c.Arg != "":
		return fmt.Sprintf("%s(%q)", c.Name, c.Arg)
	default:
		return c.Name
	}
}

// --- ResolverSpec YAML methods ---

// UnmarshalYAML accepts a resolver name or {cel: "<expression>"}.
func (r *ResolverSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = ResolverSpec{Name: node.Value}
		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 || node.Content[0].Value != ResolverCEL {
			return fmt.Errorf("line %d: resolver mapping must be {%s: <expression>}", node.Line, ResolverCEL)
		}

		if node.Content[1].Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: cel expression must be a string", node.Content[1].Line)
		}

		*r = ResolverSpec{Name: ResolverCEL, CEL: node.Content[1].Value}

		return nil

	default:
		return fmt.Errorf("line %d: expected resolver name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes a CEL resolver as a mapping and a named one as a string.
func (r ResolverSpec) MarshalYAML() (any, error) {
	if r.Name == ResolverCEL {
		return map[string]string{ResolverCEL: r.CEL}, nil
	}

	return r.Name, nil
}

func (r ResolverSpec) String() string {
	if r.Name == ResolverCEL {
		return fmt.Sprintf("cel(%q)", r.CEL)
	}

	return r.Name
}
