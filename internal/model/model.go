package model

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by Visit for a property kind outside the closed set.
var ErrUnknownKind = errors.New("unknown property kind")

// Model holds the schema-derived types of one compiler run.
type Model struct {
	types  []*TypeInfo
	byName map[string]*TypeInfo
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{byName: make(map[string]*TypeInfo)}
}

// AddType registers a type. Names must be unique.
func (m *Model) AddType(t *TypeInfo) error {
	if t.Name == "" {
		return errors.New("type name is required")
	}

	if _, exists := m.byName[t.Name]; exists {
		return fmt.Errorf("duplicate type %q", t.Name)
	}

	m.types = append(m.types, t)
	m.byName[t.Name] = t

	return nil
}

// Type returns the named type, or nil if not found.
func (m *Model) Type(name string) *TypeInfo {
	return m.byName[name]
}

// Types returns all types in registration order.
func (m *Model) Types() []*TypeInfo {
	return m.types
}

// Visitor handles each property kind.
type Visitor interface {
	OnElement(p *Property) error
	OnAttribute(p *Property) error
	OnValue(p *Property) error
	OnReference(p *Property) error
}

// Visit dispatches p to the visitor method for its kind.
func Visit(p *Property, v Visitor) error {
	switch p.Kind {
	case PropertyElement:
		return v.OnElement(p)
	case PropertyAttribute:
		return v.OnAttribute(p)
	case PropertyValue:
		return v.OnValue(p)
	case PropertyReference:
		return v.OnReference(p)
	default:
		return fmt.Errorf("%w: %s on %s", ErrUnknownKind, p.Kind, p.DisplayName())
	}
}

// Walk visits every property of every type once, in declaration order, and
// stops at the first error.
func (m *Model) Walk(v Visitor) error {
	for _, t := range m.types {
		for _, p := range t.Properties {
			if err := Visit(p, v); err != nil {
				return err
			}
		}
	}

	return nil
}
