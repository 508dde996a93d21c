package recipe

import "github.com/ardnew/recipegen/value"

// Document returns r as it is written to a generated file. It differs from
// [Recipe.ToValue] only in that ingredients without a name or without skip
// variants omit those entries.
func (r Recipe) Document() *value.Value {
	v := r.ToValue()
	compactRecipe(v)

	return v
}

// Document returns m as it is written back to a manifest file, with the
// ingredients of every template compacted as in [Recipe.Document].
func (m *Manifest) Document() *value.Value {
	v := m.ToValue()

	if templates, ok := v.Get(keyTemplates); ok {
		for t := range templates.Children() {
			compactRecipe(t)
		}
	}

	return v
}

func compactRecipe(v *value.Value) {
	if out, ok := v.Get(keyOutput); ok {
		compactIngredient(out)
	}

	if ings, ok := v.Get(keyIngredients); ok {
		for ing := range ings.Children() {
			compactIngredient(ing)
		}
	}
}

func compactIngredient(v *value.Value) {
	if name, ok := v.Get(keyName); ok && name.IsNull() {
		v.Delete(keyName)
	}

	if skip, ok := v.Get(keySkipVariants); ok && skip.Len() == 0 {
		v.Delete(keySkipVariants)
	}
}

// MarshalJSON implements json.Marshaler using [Recipe.Document].
func (r Recipe) MarshalJSON() ([]byte, error) { return r.Document().MarshalJSON() }

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler using
// [Recipe.Document].
func (r Recipe) MarshalYAML() (any, error) { return r.Document().ToNative(), nil }

// MarshalJSON implements json.Marshaler using [Manifest.Document].
func (m *Manifest) MarshalJSON() ([]byte, error) { return m.Document().MarshalJSON() }

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler using
// [Manifest.Document].
func (m *Manifest) MarshalYAML() (any, error) { return m.Document().ToNative(), nil }
