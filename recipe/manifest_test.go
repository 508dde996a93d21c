package recipe

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/value"
)

const minimalRecipe = `"ingredientPattern":"A","ingredients":{"A":{"type":"item","code":"c"}},"width":1,"height":1,"output":{"type":"item","code":"o"}`

func manifestWith(t *testing.T, names ...string) *Manifest {
	t.Helper()

	m := &Manifest{Output: "out.json"}

	for _, n := range names {
		tmpl, err := TemplateFromValue(value.MustParseJSON(`{"name":"` + n + `",` + minimalRecipe + `}`))
		require.NoError(t, err)

		m.Templates = append(m.Templates, tmpl)
	}

	return m
}

func TestManifest_DefaultTemplate(t *testing.T) {
	tests := []struct {
		name      string
		templates []string
		want      string
	}{
		{"first_declared", []string{"a", "b"}, "a"},
		{"named_default", []string{"a", "default", "b"}, "default"},
		{"single", []string{"only"}, "only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifestWith(t, tt.templates...).DefaultTemplate()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestManifest_DefaultTemplate_Missing(t *testing.T) {
	_, err := manifestWith(t).DefaultTemplate()
	assert.True(t, errors.Is(err, ErrMissingDefaultTemplate))
}

func TestManifest_FindTemplate(t *testing.T) {
	m := manifestWith(t, "shovel", "pickaxe")

	got, err := m.FindTemplate("pickaxe")
	require.NoError(t, err)
	assert.Equal(t, "pickaxe", got.Name)

	got, err = m.FindTemplate(DefaultTemplateName)
	require.NoError(t, err)
	assert.Equal(t, "shovel", got.Name)

	_, err = m.FindTemplate("pckx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTemplate))

	var pe *pkg.Error
	require.True(t, errors.As(err, &pe))

	suggest, ok := pe.Attr("suggest")
	require.True(t, ok)
	assert.Equal(t, "pickaxe", suggest.String())

	_, err = manifestWith(t).FindTemplate(DefaultTemplateName)
	assert.True(t, errors.Is(err, ErrUnknownTemplate))
}

func TestManifestFromValue(t *testing.T) {
	m, err := ManifestFromValue(value.MustParseJSON(`{
		"output": "tools.json",
		"static": {"metals": ["copper", "iron"]},
		"templates": [{"name": "axe", ` + minimalRecipe + `}],
		"grammars": [
			{"tags": [{"name": "m", "values": ["@metals"]}]},
			{"template": "axe", "remove": ["output.name"], "modify": [{"path": "width", "value": 2}], "when": "m != 'x'", "comment": "kept"},
			{"template": ["axe", "default"]},
			{"template": []}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "tools.json", m.Output)
	assert.Equal(t, `["copper","iron"]`, m.Static["metals"].String())
	require.Len(t, m.Templates, 1)
	assert.Equal(t, "axe", m.Templates[0].Name)
	assert.NotContains(t, m.Templates[0].Recipe.Rest, "name")

	require.Len(t, m.Grammars, 4)

	g0 := m.Grammars[0]
	assert.True(t, g0.UsesDefault())
	assert.Equal(t, []Tag{{Name: "m", Values: []string{"@metals"}}}, g0.Tags)
	assert.Empty(t, g0.Remove)
	assert.Empty(t, g0.Modify)

	g1 := m.Grammars[1]
	assert.Equal(t, []string{"axe"}, g1.Template)
	assert.Empty(t, g1.Tags)
	require.Len(t, g1.Remove, 1)
	assert.Equal(t, "output.name", g1.Remove[0].Path.String())
	require.Len(t, g1.Modify, 1)
	assert.Equal(t, "width", g1.Modify[0].Path.String())
	assert.Equal(t, `2`, g1.Modify[0].Value.String())
	assert.Equal(t, "m != 'x'", g1.When)
	assert.Equal(t, `"kept"`, g1.Rest["comment"].String())

	assert.Equal(t, []string{"axe", "default"}, m.Grammars[2].Template)

	assert.NotNil(t, m.Grammars[3].Template)
	assert.Empty(t, m.Grammars[3].Template)
	assert.False(t, m.Grammars[3].UsesDefault())
}

func TestManifest_ToValueRoundTrip(t *testing.T) {
	src := value.MustParseJSON(`{
		"output": "o.json",
		"static": {"s": "v"},
		"templates": [{"name": "t", ` + minimalRecipe + `}],
		"grammars": [{"template": ["t", "u"], "tags": [{"name": "x", "values": ["1"]}], "remove": ["a"], "modify": [{"path": "b", "value": {"c": 1}}], "when": "true", "note": 1}]
	}`)

	m, err := ManifestFromValue(src)
	require.NoError(t, err)

	again, err := ManifestFromValue(m.ToValue())
	require.NoError(t, err)

	assert.True(t, m.ToValue().Equal(again.ToValue()))
}

func TestManifestFromValue_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing_output", `{"templates":[],"grammars":[]}`, "output"},
		{"missing_templates", `{"output":"o","grammars":[]}`, "templates"},
		{"missing_grammars", `{"output":"o","templates":[]}`, "grammars"},
		{"static_not_object", `{"output":"o","static":[],"templates":[],"grammars":[]}`, "static"},
		{"template_missing_name", `{"output":"o","templates":[{` + minimalRecipe + `}],"grammars":[]}`, "templates.0.name"},
		{"tag_missing_values", `{"output":"o","templates":[],"grammars":[{"tags":[{"name":"x"}]}]}`, "grammars.0.tags.0.values"},
		{"tag_value_not_string", `{"output":"o","templates":[],"grammars":[{"tags":[{"name":"x","values":[1]}]}]}`, "grammars.0.tags.0.values.0"},
		{"template_not_string", `{"output":"o","templates":[],"grammars":[{"template":5}]}`, "grammars.0.template"},
		{"modify_missing_value", `{"output":"o","templates":[],"grammars":[{"modify":[{"path":"a"}]}]}`, "grammars.0.modify.0.value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ManifestFromValue(value.MustParseJSON(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConvert))

			var pe *pkg.Error
			require.True(t, errors.As(err, &pe))

			field, ok := pe.Attr("field")
			require.True(t, ok)
			assert.Equal(t, tt.field, field.String())
		})
	}
}

func TestGrammarFromValue(t *testing.T) {
	g, err := GrammarFromValue(value.MustParseJSON(`{
		"template": "axe",
		"tags": [{"name": "m", "values": ["copper", "@metals"]}],
		"remove": ["output.name"],
		"modify": [{"path": "ingredients.*.quantity", "value": 2}],
		"when": "m != 'tin'",
		"comment": "kept"
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"axe"}, g.Template)
	assert.False(t, g.UsesDefault())
	assert.Equal(t, []Tag{{Name: "m", Values: []string{"copper", "@metals"}}}, g.Tags)
	require.Len(t, g.Remove, 1)
	assert.Equal(t, "output.name", g.Remove[0].Path.String())
	require.Len(t, g.Modify, 1)
	assert.Equal(t, "ingredients.*.quantity", g.Modify[0].Path.String())
	assert.Equal(t, `2`, g.Modify[0].Value.String())
	assert.Equal(t, "m != 'tin'", g.When)
	assert.Equal(t, `"kept"`, g.Rest["comment"].String())

	again, err := GrammarFromValue(g.ToValue())
	require.NoError(t, err)
	assert.True(t, g.ToValue().Equal(again.ToValue()))
}

func TestGrammarFromValue_Errors(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		field string
	}{
		{"not_object", `[]`, ""},
		{"template_not_list", `{"template": 3}`, "template"},
		{"template_item_not_string", `{"template": ["a", 1]}`, "template.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GrammarFromValue(value.MustParseJSON(tt.json))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConvert))

			var pe *pkg.Error
			require.True(t, errors.As(err, &pe))

			field, ok := pe.Attr("field")
			require.True(t, ok)
			assert.Equal(t, tt.field, field.String())
		})
	}
}

func TestManifest_DocumentCompactsTemplates(t *testing.T) {
	m, err := ManifestFromValue(value.MustParseJSON(`{
		"output": "o.json",
		"templates": [{
			"name": "plank",
			"ingredientPattern": "A",
			"ingredients": {"A": {"type": "block", "code": "log"}},
			"width": 1,
			"height": 1,
			"output": {"type": "item", "code": "plank", "name": "p", "skipVariants": ["x"]}
		}],
		"grammars": []
	}`))
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"output": "o.json",
		"static": {},
		"templates": [{
			"name": "plank",
			"ingredientPattern": "A",
			"ingredients": {"A": {"type": "block", "code": "log"}},
			"width": 1,
			"height": 1,
			"output": {"type": "item", "code": "plank", "name": "p", "skipVariants": ["x"]}
		}],
		"grammars": []
	}`, string(out))

	doc, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "null")
	assert.NotContains(t, string(doc), "skipVariants: []")

	again, err := ManifestFromValue(m.Document())
	require.NoError(t, err)
	assert.True(t, m.ToValue().Equal(again.ToValue()))
}
