package recipe

import (
	"log/slog"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/value"
)

// DefaultTemplateName is the template name that selects the default
// template, and the name a manifest uses to declare it explicitly.
const DefaultTemplateName = "default"

// Manifest is one input document: the templates, the grammars expanding
// them, the static properties tags may refer to, and the name of the file
// the generated recipes are written to.
type Manifest struct {
	Static    map[string]*value.Value
	Output    string
	Templates []Template
	Grammars  []Grammar
}

// TemplateNames returns the names of the templates of m in declared order.
func (m *Manifest) TemplateNames() []string {
	names := make([]string, len(m.Templates))
	for i, t := range m.Templates {
		names[i] = t.Name
	}

	return names
}

// DefaultTemplate returns the template named [DefaultTemplateName], or else
// the first template declared. It fails with [ErrMissingDefaultTemplate]
// if m has no templates.
func (m *Manifest) DefaultTemplate() (*Template, error) {
	for i := range m.Templates {
		if m.Templates[i].Name == DefaultTemplateName {
			return &m.Templates[i], nil
		}
	}

	if len(m.Templates) == 0 {
		return nil, ErrMissingDefaultTemplate.With(slog.String("output", m.Output))
	}

	return &m.Templates[0], nil
}

// FindTemplate returns the first template named name. If there is none and
// name is [DefaultTemplateName], the first template declared is returned
// instead. Otherwise it fails with [ErrUnknownTemplate].
func (m *Manifest) FindTemplate(name string) (*Template, error) {
	for i := range m.Templates {
		if m.Templates[i].Name == name {
			return &m.Templates[i], nil
		}
	}

	if name == DefaultTemplateName && len(m.Templates) > 0 {
		return &m.Templates[0], nil
	}

	err := ErrUnknownTemplate.With(slog.String("template", name))

	return nil, pkg.WithSuggestion(err, name, m.TemplateNames())
}
