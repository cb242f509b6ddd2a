package model

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a patched model handed to the emitter.
type Document struct {
	Version string    `yaml:"version" json:"version"`
	Types   []TypeDoc `yaml:"types" json:"types"`
}

// TypeDoc is one type of a Document.
type TypeDoc struct {
	Name       string        `yaml:"name" json:"name"`
	Kind       string        `yaml:"kind" json:"kind"`
	Properties []PropertyDoc `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// PropertyDoc is one property of a TypeDoc.
type PropertyDoc struct {
	Name    string      `yaml:"name" json:"name"`
	Kind    string      `yaml:"kind" json:"kind"`
	Refs    []string    `yaml:"refs,omitempty" json:"refs,omitempty"`
	Type    string      `yaml:"type,omitempty" json:"type,omitempty"`
	Adapter *AdapterDoc `yaml:"adapter,omitempty" json:"adapter,omitempty"`
}

// AdapterDoc describes an attached adapter.
type AdapterDoc struct {
	Type  string `yaml:"type" json:"type"`
	Wire  string `yaml:"wire" json:"wire"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
}

// Export builds the Document for m.
func Export(m *Model) *Document {
	doc := &Document{Version: "1", Types: make([]TypeDoc, 0, len(m.types))}

	for _, t := range m.types {
		td := TypeDoc{Name: t.Name, Kind: t.Kind.String()}

		for _, p := range t.Properties {
			td.Properties = append(td.Properties, exportProperty(p))
		}

		doc.Types = append(doc.Types, td)
	}

	return doc
}

func exportProperty(p *Property) PropertyDoc {
	pd := PropertyDoc{Name: p.Name, Kind: p.Kind.String()}

	switch p.Kind {
	case PropertyElement, PropertyReference:
		for _, ref := range p.Refs {
			pd.Refs = append(pd.Refs, ref.Name)
		}

		pd.Adapter = exportAdapter(p.adapter)

	case PropertyAttribute, PropertyValue:
		pd.Type = p.typ.Name()
		pd.Adapter = exportAdapter(p.typ.Adapter)
	}

	return pd
}

func exportAdapter(a *AdapterSpec) *AdapterDoc {
	if a == nil {
		return nil
	}

	return &AdapterDoc{Type: a.AdapterType, Wire: a.DefaultType, Value: a.ValueType}
}

// ExportYAML renders the patched model as YAML.
func ExportYAML(m *Model) ([]byte, error) {
	return yaml.Marshal(Export(m))
}

// ExportJSON renders the patched model as indented JSON.
func ExportJSON(m *Model) ([]byte, error) {
	return json.MarshalIndent(Export(m), "", "  ")
}
