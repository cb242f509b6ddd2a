package model

import "strings"

// QName is a namespace-qualified XML name.
type QName struct {
	Space string
	Local string
}

// String returns the name in {namespace}local form.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}

	return "{" + q.Space + "}" + q.Local
}

// ParseQName parses a name in {namespace}local form. A name without braces
// has an empty namespace.
func ParseQName(s string) QName {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		if end := strings.IndexByte(s, '}'); end > 0 {
			return QName{Space: s[1:end], Local: s[end+1:]}
		}
	}

	return QName{Local: s}
}

// Customization is a schema annotation attached to a property or a type.
type Customization struct {
	Tag    QName             // qualified name of the annotation element
	Attrs  map[string]string // annotation attributes
	Source string            // where it was declared, used in messages

	// Acknowledged is set once a pass has accounted for the customization,
	// by applying it or by reporting why it was not applied.
	Acknowledged bool
}

// Attr returns the named attribute.
func (c *Customization) Attr(name string) (string, bool) {
	v, ok := c.Attrs[name]
	return v, ok
}

// TypeInfo describes a schema-derived type.
type TypeInfo struct {
	Name           string // fully qualified, e.g. "adapter-customizer/examples/amount.Amount"
	Kind           TypeKind
	Properties     []*Property // for TypeClass, member properties in declaration order
	Customizations []*Customization
}

// NewClass creates a complex type.
func NewClass(name string) *TypeInfo {
	return &TypeInfo{Name: name, Kind: TypeClass}
}

// NewSimple creates a simple type.
func NewSimple(name string) *TypeInfo {
	return &TypeInfo{Name: name, Kind: TypeSimple}
}

// IsClass returns true for complex types.
func (t *TypeInfo) IsClass() bool {
	return t.Kind == TypeClass
}

// AddProperty appends a member property and makes t its owner.
func (t *TypeInfo) AddProperty(p *Property) *Property {
	p.Owner = t
	t.Properties = append(t.Properties, p)

	return p
}

// Customize attaches a customization to the type.
func (t *TypeInfo) Customize(c *Customization) {
	t.Customizations = append(t.Customizations, c)
}

// AdapterSpec is a resolved adapter for a property or a type use.
type AdapterSpec struct {
	// DefaultType is the fully qualified wire type the adapter converts from.
	DefaultType string
	// AdapterType is the fully qualified name of the adapter type.
	AdapterType string
	// ValueType is the fully qualified application type.
	ValueType string
}

// String returns the adapter type name.
func (a *AdapterSpec) String() string {
	if a == nil {
		return "<none>"
	}

	return a.AdapterType
}

// TypeUse is a declared type, optionally adapted.
type TypeUse struct {
	Type    *TypeInfo
	Adapter *AdapterSpec
}

// Name returns the fully qualified name of the declared type.
func (u TypeUse) Name() string {
	if u.Type == nil {
		return ""
	}

	return u.Type.Name
}

// IsAdapted returns true if an adapter is attached to the use.
func (u TypeUse) IsAdapted() bool {
	return u.Adapter != nil
}

// Adapt pairs the declared type of use with spec. An adapter already on use
// is replaced, not nested.
func Adapt(use TypeUse, spec *AdapterSpec) TypeUse {
	return TypeUse{Type: use.Type, Adapter: spec}
}
