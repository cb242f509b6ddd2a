package customize

import (
	"fmt"

	"go.uber.org/zap"

	"adapter-customizer/internal/analyze"
	"adapter-customizer/internal/diagnostic"
	"adapter-customizer/internal/model"
)

// DefaultTag is the qualified name of the xmlAdapter customization.
var DefaultTag = model.QName{Space: "urn:adapter-customizer:extras", Local: "xmlAdapter"}

// Config holds configuration for a customization pass.
type Config struct {
	// Tag is the customization element that names adapters.
	Tag model.QName
	// Strict fails the pass when an adapter could not be attached.
	Strict bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Tag:    DefaultTag,
		Strict: false,
	}
}

// Plugin runs the resolver and the binder over every property of a model.
type Plugin struct {
	config   Config
	logger   *zap.Logger
	reporter *diagnostic.Reporter
	resolver *Resolver
	binder   *Binder
}

var _ model.Visitor = (*Plugin)(nil)

// NewPlugin creates a Plugin. A nil logger discards log output.
func NewPlugin(loader analyze.Loader, config Config, logger *zap.Logger) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}

	reporter := diagnostic.NewReporter(logger)

	return &Plugin{
		config:   config,
		logger:   logger,
		reporter: reporter,
		resolver: NewResolver(loader, config.Tag, reporter),
		binder:   NewBinder(config.Tag, reporter),
	}
}

// Run patches m in place. Configuration and invariant errors stop the pass;
// attachment problems are only reported unless the config is strict.
func (p *Plugin) Run(m *model.Model) (*diagnostic.Diagnostics, error) {
	p.logger.Debug("applying adapter customizations",
		zap.Stringer("tag", p.config.Tag), zap.Int("types", len(m.Types())))

	diags := p.reporter.Diagnostics()

	if err := m.Walk(p); err != nil {
		return diags, err
	}

	p.unused(m)

	if p.config.Strict && diags.HasErrors() {
		return diags, fmt.Errorf("strict mode: %w", diags.Error())
	}

	return diags, nil
}

// OnElement implements model.Visitor.
func (p *Plugin) OnElement(prop *model.Property) error {
	spec, err := p.resolver.Resolve(prop)
	if err != nil || spec == nil {
		return err
	}

	return p.binder.BindElement(prop, spec)
}

// OnAttribute implements model.Visitor.
func (p *Plugin) OnAttribute(prop *model.Property) error {
	spec, err := p.resolver.Resolve(prop)
	if err != nil || spec == nil {
		return err
	}

	return p.binder.BindAttribute(prop, spec)
}

// OnValue implements model.Visitor. Value members are adapted through the
// element that references their type; a customization on the value itself
// is ignored.
func (p *Plugin) OnValue(prop *model.Property) error {
	p.ignored(prop)
	return nil
}

// OnReference implements model.Visitor.
func (p *Plugin) OnReference(prop *model.Property) error {
	p.ignored(prop)
	return nil
}

func (p *Plugin) ignored(prop *model.Property) {
	for _, c := range prop.Customizations {
		if c.Tag == p.config.Tag {
			c.Acknowledged = true
			p.reporter.Warn(diagnostic.CodeAdapterIgnored,
				fmt.Sprintf("%s is not supported on %s properties", p.config.Tag, prop.Kind),
				prop.DisplayName(), p.config.Tag.String())
		}
	}
}

// unused warns about adapter customizations that no element or attribute
// picked up, such as one on a type only value members refer to.
func (p *Plugin) unused(m *model.Model) {
	warn := func(c *model.Customization, where string) {
		if c.Tag != p.config.Tag || c.Acknowledged {
			return
		}

		name, _ := c.Attr(NameAttr)
		p.reporter.Warn(diagnostic.CodeAdapterUnused,
			fmt.Sprintf("%s %s on %s was not used by any element or attribute", p.config.Tag, name, where),
			where, p.config.Tag.String())
	}

	for _, t := range m.Types() {
		for _, c := range t.Customizations {
			warn(c, "type "+t.Name)
		}

		for _, prop := range t.Properties {
			for _, c := range prop.Customizations {
				warn(c, prop.DisplayName())
			}
		}
	}
}
