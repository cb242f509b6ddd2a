package bindings

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is the root of a bindings file.
type File struct {
	Version  string        `yaml:"version"`
	Tag      string        `yaml:"tag,omitempty"`
	Adapters []AdapterDecl `yaml:"adapters,omitempty"`
	Types    []TypeDef     `yaml:"types"`
}

// AdapterDecl declares an adapter without loading it.
type AdapterDecl struct {
	Name  string `yaml:"name"`
	Wire  string `yaml:"wire"`
	Value string `yaml:"value"`
}

// TypeDef describes a schema type.
type TypeDef struct {
	Name           string             `yaml:"name"`
	Kind           string             `yaml:"kind,omitempty"`
	Customizations []CustomizationDef `yaml:"customizations,omitempty"`
	Properties     []PropertyDef      `yaml:"properties,omitempty"`
}

// PropertyDef describes a member property of a class type.
type PropertyDef struct {
	Name           string             `yaml:"name"`
	Kind           string             `yaml:"kind"`
	Type           string             `yaml:"type,omitempty"`
	Refs           StringOrArray      `yaml:"refs,omitempty"`
	Customizations []CustomizationDef `yaml:"customizations,omitempty"`
}

// CustomizationDef describes one customization. An empty Tag means the
// file's tag.
type CustomizationDef struct {
	Tag   string            `yaml:"tag,omitempty"`
	Name  string            `yaml:"name,omitempty"`
	Attrs map[string]string `yaml:"attrs,omitempty"`

	Line int `yaml:"-"`
}

// StringOrArray accepts a single string or a list of strings.
type StringOrArray []string

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
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
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array", node.Line)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- CustomizationDef YAML methods ---

type customizationFields CustomizationDef

// UnmarshalYAML accepts a plain adapter name or a mapping.
func (c *CustomizationDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*c = CustomizationDef{Name: name}

	case yaml.MappingNode:
		var fields customizationFields
		if err := node.Decode(&fields); err != nil {
			return err
		}

		*c = CustomizationDef(fields)

	default:
		return fmt.Errorf("line %d: expected adapter name or customization mapping", node.Line)
	}

	c.Line = node.Line

	return nil
}
