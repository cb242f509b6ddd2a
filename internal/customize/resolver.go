package customize

import (
	"errors"
	"fmt"
	"strings"

	"adapter-customizer/internal/analyze"
	"adapter-customizer/internal/diagnostic"
	"adapter-customizer/internal/match"
	"adapter-customizer/internal/model"
)

// NameAttr is the customization attribute naming the adapter type.
const NameAttr = "name"

const minSuggestionScore = 0.6

// Resolver picks the adapter that applies to a property.
type Resolver struct {
	loader   analyze.Loader
	tag      model.QName
	reporter *diagnostic.Reporter
}

// NewResolver creates a Resolver for customizations named tag.
func NewResolver(loader analyze.Loader, tag model.QName, reporter *diagnostic.Reporter) *Resolver {
	if reporter == nil {
		reporter = diagnostic.NewReporter(nil)
	}

	return &Resolver{loader: loader, tag: tag, reporter: reporter}
}

// Resolve returns the adapter for p, or nil if no customization applies.
// Errors are *ConfigurationError.
func (r *Resolver) Resolve(p *model.Property) (*model.AdapterSpec, error) {
	candidates := Candidates(p, r.tag)
	if len(candidates) == 0 {
		return nil, nil
	}

	winner := candidates[0]

	name, _ := winner.Node.Attr(NameAttr)
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, r.configError(p, winner.Node, fmt.Errorf("%w: %s must name the adapter type with the %s attribute",
			ErrMissingName, r.tag, NameAttr))
	}

	info, err := r.loader.LoadType(name)
	if err != nil {
		cerr := r.configError(p, winner.Node, fmt.Errorf("failed to load adapter %s: %w", name, err))
		cerr.Suggestions = suggest(name, err)

		return nil, cerr
	}

	wire, value, err := CheckContract(info)
	if err != nil {
		return nil, r.configError(p, winner.Node, err)
	}

	winner.Node.Acknowledged = true

	for _, c := range candidates[1:] {
		c.Node.Acknowledged = true
		r.reporter.Info(diagnostic.CodeAdapterShadowed,
			fmt.Sprintf("%s customization on %s is shadowed by the one on %s %s", c.Scope, c.Target, winner.Scope, winner.Target),
			p.DisplayName(), r.tag.String())
	}

	return &model.AdapterSpec{
		DefaultType: DefaultType(wire),
		AdapterType: info.ID.String(),
		ValueType:   value,
	}, nil
}

func (r *Resolver) configError(p *model.Property, node *model.Customization, err error) *ConfigurationError {
	return &ConfigurationError{Tag: r.tag, Property: p.DisplayName(), Source: node.Source, Err: err}
}

func suggest(name string, err error) []string {
	var nf *analyze.TypeNotFoundError
	if !errors.As(err, &nf) {
		return nil
	}

	return match.Closest(name, nf.Known, match.DefaultMaxSuggestions, minSuggestionScore)
}
