package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=PropertyKind -trimprefix=Property -output=propertykind_string.go
//go:generate go tool stringer -type=TypeKind -trimprefix=Type -output=typekind_string.go

// PropertyKind is the kind of a schema-derived property.
type PropertyKind int

const (
	_ PropertyKind = iota // zero value is invalid

	PropertyElement
	PropertyAttribute
	PropertyValue
	PropertyReference
)

// TypeKind is the kind of a schema-derived type.
type TypeKind int

const (
	_ TypeKind = iota

	TypeClass  // complex type exposing member properties
	TypeSimple // simple or builtin type, only a name
)

// ParsePropertyKind parses a kind name, case-insensitively.
func ParsePropertyKind(s string) (PropertyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "element":
		return PropertyElement, nil
	case "attribute":
		return PropertyAttribute, nil
	case "value":
		return PropertyValue, nil
	case "reference":
		return PropertyReference, nil
	default:
		return 0, fmt.Errorf("unknown property kind %q", s)
	}
}

// ParseTypeKind parses a type kind name. An empty name means simple.
func ParseTypeKind(s string) (TypeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "class", "complex":
		return TypeClass, nil
	case "", "simple":
		return TypeSimple, nil
	default:
		return 0, fmt.Errorf("unknown type kind %q", s)
	}
}
