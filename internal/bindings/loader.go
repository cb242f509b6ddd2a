package bindings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"adapter-customizer/internal/analyze"
	"adapter-customizer/internal/customize"
	"adapter-customizer/internal/model"
)

// LoadFile loads and parses a YAML bindings file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse bindings YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Tag == "" {
		f.Tag = customize.DefaultTag.String()
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Build creates the model described by f.
func Build(f *File) (*model.Model, error) {
	b := &builder{
		file:  f,
		tag:   model.ParseQName(f.Tag),
		model: model.NewModel(),
	}

	return b.build()
}

// Loader returns a loader serving the adapters declared in f.
func Loader(f *File) (*analyze.StaticLoader, error) {
	loader := analyze.NewStaticLoader()

	var errs []error

	for _, decl := range f.Adapters {
		info, err := customize.DeclaredAdapter(decl.Name, decl.Wire, decl.Value)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		loader.Register(info)
	}

	return loader, errors.Join(errs...)
}

type builder struct {
	file  *File
	tag   model.QName
	model *model.Model
	errs  []error
}

func (b *builder) build() (*model.Model, error) {
	// Declare every type first so references can point forward.
	for i := range b.file.Types {
		td := &b.file.Types[i]

		kind, err := model.ParseTypeKind(td.Kind)
		if err != nil {
			b.fail("type %s: %w", td.Name, err)
			continue
		}

		t := &model.TypeInfo{Name: td.Name, Kind: kind}
		if err := b.model.AddType(t); err != nil {
			b.fail("type %d: %w", i, err)
			continue
		}

		for _, cd := range td.Customizations {
			t.Customize(b.customization(cd, td.Name))
		}
	}

	for i := range b.file.Types {
		td := &b.file.Types[i]

		t := b.model.Type(td.Name)
		if t == nil {
			continue
		}

		if len(td.Properties) > 0 && !t.IsClass() {
			b.fail("type %s: only class types have properties", td.Name)
			continue
		}

		for j := range td.Properties {
			if p := b.property(&td.Properties[j], td.Name); p != nil {
				t.AddProperty(p)
			}
		}
	}

	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	return b.model, nil
}

func (b *builder) property(pd *PropertyDef, owner string) *model.Property {
	where := owner + "." + pd.Name

	if pd.Name == "" {
		b.fail("type %s: property name is required", owner)
		return nil
	}

	kind, err := model.ParsePropertyKind(pd.Kind)
	if err != nil {
		b.fail("property %s: %w", where, err)
		return nil
	}

	var p *model.Property

	switch kind {
	case model.PropertyElement, model.PropertyReference:
		refs := pd.Refs
		if len(refs) == 0 && pd.Type != "" {
			refs = StringOrArray{pd.Type}
		}

		if len(refs) == 0 {
			b.fail("property %s: %s needs refs", where, kind)
			return nil
		}

		types := make([]*model.TypeInfo, 0, len(refs))
		for _, name := range refs {
			types = append(types, b.typeRef(name))
		}

		if kind == model.PropertyElement {
			p = model.NewElement(pd.Name, types...)
		} else {
			p = model.NewReference(pd.Name, types...)
		}

	case model.PropertyAttribute, model.PropertyValue:
		name := pd.Type
		if name == "" && len(pd.Refs) == 1 {
			name = pd.Refs[0]
		}

		if name == "" || len(pd.Refs) > 1 {
			b.fail("property %s: %s needs exactly one type", where, kind)
			return nil
		}

		if kind == model.PropertyAttribute {
			p = model.NewAttribute(pd.Name, b.typeRef(name))
		} else {
			p = model.NewValue(pd.Name, b.typeRef(name))
		}
	}

	for _, cd := range pd.Customizations {
		p.Customize(b.customization(cd, where))
	}

	return p
}

// typeRef returns the named type, declaring a simple type if needed.
func (b *builder) typeRef(name string) *model.TypeInfo {
	if t := b.model.Type(name); t != nil {
		return t
	}

	t := model.NewSimple(name)
	if err := b.model.AddType(t); err != nil {
		b.fail("type %s: %w", name, err)
	}

	return t
}

func (b *builder) customization(cd CustomizationDef, target string) *model.Customization {
	tag := b.tag
	if cd.Tag != "" {
		tag = model.ParseQName(cd.Tag)
	}

	attrs := make(map[string]string, len(cd.Attrs)+1)
	for k, v := range cd.Attrs {
		attrs[k] = v
	}

	if cd.Name != "" {
		attrs[customize.NameAttr] = cd.Name
	}

	source := target
	if cd.Line > 0 {
		source = fmt.Sprintf("%s (line %d)", target, cd.Line)
	}

	return &model.Customization{Tag: tag, Attrs: attrs, Source: source}
}

func (b *builder) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}
