package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSlot is returned when a slot is used on a property kind that does not own it.
	ErrNoSlot = errors.New("property has no such slot")
	// ErrAdapterAlreadySet is returned by SetAdapter when the adapter slot is taken.
	ErrAdapterAlreadySet = errors.New("adapter already set")
)

// Property describes one schema-derived field.
type Property struct {
	Kind           PropertyKind
	Name           string
	Owner          *TypeInfo
	Refs           []*TypeInfo // referenced types in declaration order
	Customizations []*Customization

	adapter *AdapterSpec // PropertyElement only
	typ     TypeUse      // PropertyAttribute and PropertyValue only
}

// NewElement creates an element property referencing refs.
func NewElement(name string, refs ...*TypeInfo) *Property {
	return &Property{Kind: PropertyElement, Name: name, Refs: refs}
}

// NewReference creates a reference property.
func NewReference(name string, refs ...*TypeInfo) *Property {
	return &Property{Kind: PropertyReference, Name: name, Refs: refs}
}

// NewAttribute creates an attribute property of type t.
func NewAttribute(name string, t *TypeInfo) *Property {
	return &Property{Kind: PropertyAttribute, Name: name, Refs: []*TypeInfo{t}, typ: TypeUse{Type: t}}
}

// NewValue creates a value property of type t.
func NewValue(name string, t *TypeInfo) *Property {
	return &Property{Kind: PropertyValue, Name: name, Refs: []*TypeInfo{t}, typ: TypeUse{Type: t}}
}

// DisplayName returns "Owner.Name", or just the name of a detached property.
func (p *Property) DisplayName() string {
	if p.Owner == nil {
		return p.Name
	}

	return p.Owner.Name + "." + p.Name
}

// Customize attaches a customization to the property.
func (p *Property) Customize(c *Customization) {
	p.Customizations = append(p.Customizations, c)
}

// Adapter returns the adapter of an element property, or nil.
func (p *Property) Adapter() *AdapterSpec {
	return p.adapter
}

// SetAdapter sets the adapter slot of an element property. It refuses to
// overwrite an adapter that is already set.
func (p *Property) SetAdapter(a *AdapterSpec) error {
	if err := p.requireKind("adapter", PropertyElement); err != nil {
		return err
	}

	if p.adapter != nil {
		return fmt.Errorf("%w: %s has %s", ErrAdapterAlreadySet, p.DisplayName(), p.adapter)
	}

	p.adapter = a

	return nil
}

// ReplaceAdapter overwrites the adapter slot of an element property and
// returns the previous adapter, which may be nil.
func (p *Property) ReplaceAdapter(a *AdapterSpec) (*AdapterSpec, error) {
	if err := p.requireKind("adapter", PropertyElement); err != nil {
		return nil, err
	}

	prev := p.adapter
	p.adapter = a

	return prev, nil
}

// Type returns the declared type of an attribute or value property.
// It is the zero TypeUse for other kinds.
func (p *Property) Type() TypeUse {
	return p.typ
}

// ReplaceType overwrites the declared type of an attribute or value property.
func (p *Property) ReplaceType(u TypeUse) error {
	if err := p.requireKind("type", PropertyAttribute, PropertyValue); err != nil {
		return err
	}

	p.typ = u

	return nil
}

func (p *Property) requireKind(slot string, kinds ...PropertyKind) error {
	for _, k := range kinds {
		if p.Kind == k {
			return nil
		}
	}

	return fmt.Errorf("%w: %s property %s has no %s slot", ErrNoSlot, p.Kind, p.DisplayName(), slot)
}
