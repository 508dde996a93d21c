package recipe

import (
	"strconv"

	"github.com/ardnew/recipegen/value"
)

// Document keys of templates, grammars and manifests.
const (
	keyTemplate  = "template"
	keyTags      = "tags"
	keyValues    = "values"
	keyRemove    = "remove"
	keyModify    = "modify"
	keyPath      = "path"
	keyValue     = "value"
	keyWhen      = "when"
	keyStatic    = "static"
	keyTemplates = "templates"
	keyGrammars  = "grammars"
)

// TemplateFromValue converts a template object, a "name" entry beside the
// recipe entries, into a Template.
func TemplateFromValue(v *value.Value) (Template, error) {
	return templateAt(v, "")
}

func templateAt(v *value.Value, at string) (Template, error) {
	var t Template

	f, err := openFields(v, at)
	if err != nil {
		return t, err
	}

	if t.Name, err = f.string(keyName); err != nil {
		return t, err
	}

	if t.Recipe, err = recipeFrom(f); err != nil {
		return t, err
	}

	return t, nil
}

// ToValue converts t into a template object.
func (t Template) ToValue() *value.Value {
	v := t.Recipe.ToValue()
	v.Set(keyName, value.NewString(t.Name))

	return v
}

// GrammarFromValue converts a grammar object into a Grammar.
func GrammarFromValue(v *value.Value) (Grammar, error) {
	return grammarAt(v, "")
}

func grammarAt(v *value.Value, at string) (Grammar, error) {
	var g Grammar

	f, err := openFields(v, at)
	if err != nil {
		return g, err
	}

	if g.Template, err = templateNames(f); err != nil {
		return g, err
	}

	if g.Tags, err = tagsFrom(f); err != nil {
		return g, err
	}

	removes, err := f.strings(keyRemove)
	if err != nil {
		return g, err
	}

	g.Remove = make([]Remove, len(removes))
	for i, p := range removes {
		g.Remove[i] = NewRemove(p)
	}

	if g.Modify, err = modifiesFrom(f); err != nil {
		return g, err
	}

	when, err := f.optString(keyWhen)
	if err != nil {
		return g, err
	}

	if when != nil {
		g.When = *when
	}

	g.Rest = f.rest()

	return g, nil
}

// templateNames accepts one name or a list of names.
func templateNames(f *fields) ([]string, error) {
	v, ok := f.get(keyTemplate)
	if !ok || v.IsNull() {
		return nil, nil
	}

	if s, ok := v.AsString(); ok {
		return []string{s}, nil
	}

	if v.Kind() != value.KindArray {
		return nil, mismatch(f.path(keyTemplate), value.KindArray, v)
	}

	return f.strings(keyTemplate)
}

func tagsFrom(f *fields) ([]Tag, error) {
	items, _, err := f.array(keyTags, false)
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, len(items))

	for i, x := range items {
		tf, err := openFields(x, join(f.path(keyTags), strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}

		if tags[i].Name, err = tf.string(keyName); err != nil {
			return nil, err
		}

		if _, err := tf.required(keyValues); err != nil {
			return nil, err
		}

		if tags[i].Values, err = tf.strings(keyValues); err != nil {
			return nil, err
		}
	}

	return tags, nil
}

func modifiesFrom(f *fields) ([]Modify, error) {
	items, _, err := f.array(keyModify, false)
	if err != nil {
		return nil, err
	}

	mods := make([]Modify, len(items))

	for i, x := range items {
		mf, err := openFields(x, join(f.path(keyModify), strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}

		path, err := mf.string(keyPath)
		if err != nil {
			return nil, err
		}

		repl, err := mf.required(keyValue)
		if err != nil {
			return nil, err
		}

		mods[i] = NewModify(path, repl)
	}

	return mods, nil
}

// ToValue converts g into a grammar object. A single template name is
// written as a string.
func (g Grammar) ToValue() *value.Value {
	v := value.NewObject(nil)
	copyRest(v, g.Rest)

	switch {
	case g.Template == nil:
	case len(g.Template) == 1:
		v.Set(keyTemplate, value.NewString(g.Template[0]))
	default:
		v.Set(keyTemplate, stringArray(g.Template))
	}

	tags := make([]*value.Value, len(g.Tags))
	for i, t := range g.Tags {
		tags[i] = value.NewObject(map[string]*value.Value{
			keyName:   value.NewString(t.Name),
			keyValues: stringArray(t.Values),
		})
	}

	v.Set(keyTags, value.NewArray(tags...))

	if len(g.Remove) > 0 {
		removes := make([]*value.Value, len(g.Remove))
		for i, r := range g.Remove {
			removes[i] = value.NewString(r.Path.String())
		}

		v.Set(keyRemove, value.NewArray(removes...))
	}

	if len(g.Modify) > 0 {
		mods := make([]*value.Value, len(g.Modify))
		for i, m := range g.Modify {
			mods[i] = value.NewObject(map[string]*value.Value{
				keyPath:  value.NewString(m.Path.String()),
				keyValue: m.Value.Clone(),
			})
		}

		v.Set(keyModify, value.NewArray(mods...))
	}

	if g.When != "" {
		v.Set(keyWhen, value.NewString(g.When))
	}

	return v
}

func stringArray(ss []string) *value.Value {
	items := make([]*value.Value, len(ss))
	for i, s := range ss {
		items[i] = value.NewString(s)
	}

	return value.NewArray(items...)
}

// ManifestFromValue converts a manifest object into a Manifest.
func ManifestFromValue(v *value.Value) (*Manifest, error) {
	f, err := openFields(v, "")
	if err != nil {
		return nil, err
	}

	m := &Manifest{Static: map[string]*value.Value{}}

	if m.Output, err = f.string(keyOutput); err != nil {
		return nil, err
	}

	if static, ok := f.get(keyStatic); ok {
		if static.Kind() != value.KindObject {
			return nil, mismatch(keyStatic, value.KindObject, static)
		}

		for k, x := range static.Entries() {
			m.Static[k] = x
		}
	}

	templates, _, err := f.array(keyTemplates, true)
	if err != nil {
		return nil, err
	}

	m.Templates = make([]Template, len(templates))
	for i, x := range templates {
		if m.Templates[i], err = templateAt(x, join(keyTemplates, strconv.Itoa(i))); err != nil {
			return nil, err
		}
	}

	grammars, _, err := f.array(keyGrammars, true)
	if err != nil {
		return nil, err
	}

	m.Grammars = make([]Grammar, len(grammars))
	for i, x := range grammars {
		if m.Grammars[i], err = grammarAt(x, join(keyGrammars, strconv.Itoa(i))); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ToValue converts m into a manifest object.
func (m *Manifest) ToValue() *value.Value {
	static := value.NewObject(nil)
	copyRest(static, m.Static)

	templates := make([]*value.Value, len(m.Templates))
	for i, t := range m.Templates {
		templates[i] = t.ToValue()
	}

	grammars := make([]*value.Value, len(m.Grammars))
	for i, g := range m.Grammars {
		grammars[i] = g.ToValue()
	}

	return value.NewObject(map[string]*value.Value{
		keyOutput:    value.NewString(m.Output),
		keyStatic:    static,
		keyTemplates: value.NewArray(templates...),
		keyGrammars:  value.NewArray(grammars...),
	})
}
