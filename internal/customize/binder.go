package customize

import (
	"fmt"

	"adapter-customizer/internal/diagnostic"
	"adapter-customizer/internal/model"
)

// Binder attaches resolved adapters to the model.
type Binder struct {
	tag      model.QName
	reporter *diagnostic.Reporter
}

// NewBinder creates a Binder reporting under tag.
func NewBinder(tag model.QName, reporter *diagnostic.Reporter) *Binder {
	if reporter == nil {
		reporter = diagnostic.NewReporter(nil)
	}

	return &Binder{tag: tag, reporter: reporter}
}

// BindElement attaches spec to element property p or to a value member of
// one of its referenced types. A reference that matches neither is reported
// and skipped.
func (b *Binder) BindElement(p *model.Property, spec *model.AdapterSpec) error {
	for _, ref := range p.Refs {
		if ref.Name == spec.DefaultType {
			if err := b.setElementAdapter(p, spec); err != nil {
				return err
			}

			continue
		}

		if ref.IsClass() {
			if member := valueMember(ref, spec.DefaultType); member != nil {
				if err := b.BindValueMember(member, spec); err != nil {
					return err
				}

				b.info(diagnostic.CodeAdapterApplied, p,
					"modified %s type extension %s with adapter %s", p.DisplayName(), member.DisplayName(), spec)

				continue
			}
		}

		b.reporter.Error(diagnostic.CodeAdapterNotAttached,
			fmt.Sprintf("%s (%s) was not attached to %s: %s is neither %s nor wraps a value of it",
				b.tag, spec, p.DisplayName(), ref.Name, spec.DefaultType),
			p.DisplayName(), b.tag.String())
	}

	return nil
}

// BindAttribute replaces the declared type of attribute property p with the
// type adapted by spec.
func (b *Binder) BindAttribute(p *model.Property, spec *model.AdapterSpec) error {
	if err := b.adaptType(p, spec); err != nil {
		return err
	}

	b.info(diagnostic.CodeAdapterApplied, p, "modified %s attribute with adapter %s", p.DisplayName(), spec)

	return nil
}

// BindValueMember replaces the declared type of value property member with
// the type adapted by spec.
func (b *Binder) BindValueMember(member *model.Property, spec *model.AdapterSpec) error {
	return b.adaptType(member, spec)
}

func (b *Binder) setElementAdapter(p *model.Property, spec *model.AdapterSpec) error {
	if p.Adapter() == nil {
		if err := p.SetAdapter(spec); err != nil {
			return b.invariant(p, err)
		}
	} else {
		prev, err := p.ReplaceAdapter(spec)
		if err != nil {
			return b.invariant(p, err)
		}

		b.info(diagnostic.CodeAdapterOverridden, p, "replaced adapter %s on %s with %s", prev, p.DisplayName(), spec)
	}

	b.info(diagnostic.CodeAdapterApplied, p, "modified %s element with adapter %s", p.DisplayName(), spec)

	return nil
}

func (b *Binder) adaptType(p *model.Property, spec *model.AdapterSpec) error {
	if err := p.ReplaceType(model.Adapt(p.Type(), spec)); err != nil {
		return b.invariant(p, err)
	}

	return nil
}

func (b *Binder) invariant(p *model.Property, err error) error {
	return &InvariantError{Tag: b.tag, Property: p.DisplayName(), Err: err}
}

func (b *Binder) info(code string, p *model.Property, format string, args ...any) {
	b.reporter.Info(code, fmt.Sprintf(format, args...), p.DisplayName(), b.tag.String())
}

// valueMember returns the first Value member of t declared with type name.
func valueMember(t *model.TypeInfo, name string) *model.Property {
	for _, member := range t.Properties {
		if member.Kind == model.PropertyValue && member.Type().Name() == name {
			return member
		}
	}

	return nil
}
