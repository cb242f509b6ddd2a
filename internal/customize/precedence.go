package customize

import (
	"sort"

	"adapter-customizer/internal/model"
)

// Scope is where a customization is attached.
type Scope int

const (
	ScopeProperty Scope = iota
	ScopeType
)

// String returns the scope name.
func (s Scope) String() string {
	if s == ScopeType {
		return "type"
	}

	return "property"
}

// Candidate is a customization that may apply to a property.
type Candidate struct {
	Node     *model.Customization
	Scope    Scope
	Target   string // property display name or type name
	RefIndex int    // position of the type in the property's refs; 0 for ScopeProperty
	Index    int    // position of the node on its target
}

// Outranks reports whether c takes precedence over other.
func (c Candidate) Outranks(other Candidate) bool {
	if c.Scope != other.Scope {
		return c.Scope > other.Scope
	}

	if c.RefIndex != other.RefIndex {
		return c.RefIndex > other.RefIndex
	}

	return c.Index > other.Index
}

// Candidates returns the customizations with the given tag that apply to p,
// winner first. A type referenced more than once contributes its
// customizations once, at its highest rank.
func Candidates(p *model.Property, tag model.QName) []Candidate {
	var out []Candidate

	out = appendMatching(out, p.Customizations, tag, Candidate{Scope: ScopeProperty, Target: p.DisplayName()})

	for i, ref := range p.Refs {
		out = appendMatching(out, ref.Customizations, tag, Candidate{Scope: ScopeType, Target: ref.Name, RefIndex: i})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Outranks(out[j])
	})

	seen := make(map[*model.Customization]bool, len(out))
	ranked := out[:0]

	for _, c := range out {
		if seen[c.Node] {
			continue
		}

		seen[c.Node] = true
		ranked = append(ranked, c)
	}

	return ranked
}

func appendMatching(out []Candidate, nodes []*model.Customization, tag model.QName, base Candidate) []Candidate {
	for i, n := range nodes {
		if n.Tag != tag {
			continue
		}

		c := base
		c.Node = n
		c.Index = i
		out = append(out, c)
	}

	return out
}
