package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/recipegen/recipe"
)

const jsonManifest = `{
  "output": "tools.json",
  "static": {"metals": ["iron", "gold"]},
  "templates": [{
    "name": "pickaxe",
    "ingredientPattern": "MMM S  S ",
    "ingredients": {
      "M": {"type": "item", "code": "ingot-%metal%"},
      "S": {"type": "item", "code": "stick"}
    },
    "width": 3,
    "height": 3,
    "output": {"type": "item", "code": "pickaxe-%metal%"}
  }],
  "grammars": [{"tags": [{"name": "metal", "values": ["@metals"]}]}]
}`

const yamlManifest = `
output: tools.json
static:
  metals: [iron, gold]
templates:
  - name: pickaxe
    ingredientPattern: "MMM S  S "
    ingredients:
      M: {type: item, code: "ingot-%metal%"}
      S: {type: item, code: stick}
    width: 3
    height: 3
    output: {type: item, code: "pickaxe-%metal%"}
grammars:
  - tags:
      - name: metal
        values: ["@metals"]
`

func TestFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"a.txt", FormatJSON},
		{"noext", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}

	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, []string{"json", "yaml"}, Formats())
}

func TestDecode_FormatsAgree(t *testing.T) {
	fromJSON, err := Decode(strings.NewReader(jsonManifest), FormatJSON)
	require.NoError(t, err)

	fromYAML, err := Decode(strings.NewReader(yamlManifest), FormatYAML)
	require.NoError(t, err)

	assert.True(t, fromJSON.ToValue().Equal(fromYAML.ToValue()),
		"json: %s\nyaml: %s", fromJSON.ToValue(), fromYAML.ToValue())

	assert.Equal(t, "tools.json", fromYAML.Output)
	require.Len(t, fromYAML.Templates, 1)
	assert.Equal(t, uint8(3), fromYAML.Templates[0].Recipe.Width)
	require.Len(t, fromYAML.Grammars, 1)
	assert.True(t, fromYAML.Grammars[0].UsesDefault())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"output":`), FormatJSON)
	assert.True(t, errors.Is(err, ErrDecodeManifest))

	_, err = Decode(strings.NewReader(`{"templates":[],"grammars":[]}`), FormatJSON)
	assert.True(t, errors.Is(err, recipe.ErrConvert))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlManifest), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pickaxe"}, m.TemplateNames())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, ErrReadManifest))
}
