package recipe

import (
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/value"
)

// Converting from a tree takes ownership of the subtrees stored in Rest and
// Modify.Value; converting to a tree always copies them.

// fields reads typed entries out of one object value. Entries that are never
// read are returned by rest.
type fields struct {
	obj  *value.Value
	used map[string]bool
	at   string
}

func openFields(v *value.Value, at string) (*fields, error) {
	if v.Kind() != value.KindObject {
		return nil, mismatch(at, value.KindObject, v)
	}

	return &fields{obj: v, at: at, used: map[string]bool{}}, nil
}

func join(at, key string) string {
	if at == "" {
		return key
	}

	return at + "." + key
}

func mismatch(at string, want value.Kind, got *value.Value) *pkg.Error {
	return ErrConvert.With(
		slog.String("field", at),
		slog.String("want", want.String()),
		slog.String("found", got.Kind().String()),
	)
}

func missing(at string) *pkg.Error {
	return ErrConvert.With(
		slog.String("field", at),
		slog.String("reason", "missing"),
	)
}

func (f *fields) path(key string) string { return join(f.at, key) }

func (f *fields) get(key string) (*value.Value, bool) {
	f.used[key] = true

	return f.obj.Get(key)
}

func (f *fields) required(key string) (*value.Value, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, missing(f.path(key))
	}

	return v, nil
}

func (f *fields) string(key string) (string, error) {
	v, err := f.required(key)
	if err != nil {
		return "", err
	}

	s, ok := v.AsString()
	if !ok {
		return "", mismatch(f.path(key), value.KindString, v)
	}

	return s, nil
}

// optString returns nil for an absent or null entry.
func (f *fields) optString(key string) (*string, error) {
	v, ok := f.get(key)
	if !ok || v.IsNull() {
		return nil, nil //nolint:nilnil
	}

	s, ok := v.AsString()
	if !ok {
		return nil, mismatch(f.path(key), value.KindString, v)
	}

	return &s, nil
}

func (f *fields) uint8(key string) (uint8, error) {
	v, err := f.required(key)
	if err != nil {
		return 0, err
	}

	n, ok := v.AsNumber()
	if !ok {
		return 0, mismatch(f.path(key), value.KindNumber, v)
	}

	u, perr := strconv.ParseUint(n.String(), 10, 8)
	if perr != nil {
		return 0, ErrConvert.Wrap(perr).With(
			slog.String("field", f.path(key)),
			slog.String("value", n.String()),
		)
	}

	return uint8(u), nil
}

// array returns the elements of an array entry, or nil if it is absent.
func (f *fields) array(key string, required bool) ([]*value.Value, bool, error) {
	v, ok := f.get(key)
	if !ok {
		if required {
			return nil, false, missing(f.path(key))
		}

		return nil, false, nil
	}

	if v.Kind() != value.KindArray {
		return nil, true, mismatch(f.path(key), value.KindArray, v)
	}

	items := make([]*value.Value, 0, v.Len())
	for _, x := range v.Elements() {
		items = append(items, x)
	}

	return items, true, nil
}

func (f *fields) strings(key string) ([]string, error) {
	items, _, err := f.array(key, false)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(items))

	for i, x := range items {
		s, ok := x.AsString()
		if !ok {
			return nil, mismatch(join(f.path(key), strconv.Itoa(i)), value.KindString, x)
		}

		out[i] = s
	}

	return out, nil
}

func (f *fields) rest() map[string]*value.Value {
	rest := map[string]*value.Value{}

	for k, v := range f.obj.Entries() {
		if !f.used[k] {
			rest[k] = v
		}
	}

	return rest
}

func copyRest(dst *value.Value, rest map[string]*value.Value) {
	for k, v := range rest {
		dst.Set(k, v.Clone())
	}
}

// IngredientFromValue converts an ingredient object into an Ingredient.
func IngredientFromValue(v *value.Value) (Ingredient, error) {
	return ingredientAt(v, "")
}

func ingredientAt(v *value.Value, at string) (Ingredient, error) {
	var ing Ingredient

	f, err := openFields(v, at)
	if err != nil {
		return ing, err
	}

	if ing.Type, err = f.string(keyType); err != nil {
		return ing, err
	}

	if ing.Code, err = f.string(keyCode); err != nil {
		return ing, err
	}

	if ing.Name, err = f.optString(keyName); err != nil {
		return ing, err
	}

	if ing.SkipVariants, err = f.strings(keySkipVariants); err != nil {
		return ing, err
	}

	ing.Rest = f.rest()

	return ing, nil
}

// ToValue converts i into an ingredient object. A nil Name is written as
// null and SkipVariants is always written, so that both can be addressed by
// a dot path.
func (i Ingredient) ToValue() *value.Value {
	v := value.NewObject(nil)
	copyRest(v, i.Rest)

	v.Set(keyType, value.NewString(i.Type))
	v.Set(keyCode, value.NewString(i.Code))

	if i.Name != nil {
		v.Set(keyName, value.NewString(*i.Name))
	} else {
		v.Set(keyName, value.NewNull())
	}

	skip := make([]*value.Value, len(i.SkipVariants))
	for n, s := range i.SkipVariants {
		skip[n] = value.NewString(s)
	}

	v.Set(keySkipVariants, value.NewArray(skip...))

	return v
}

// FromValue converts a recipe object into a Recipe.
func FromValue(v *value.Value) (Recipe, error) {
	f, err := openFields(v, "")
	if err != nil {
		return Recipe{}, err
	}

	return recipeFrom(f)
}

func recipeFrom(f *fields) (Recipe, error) {
	var (
		r   Recipe
		err error
	)

	if r.Pattern, err = f.string(keyPattern); err != nil {
		return r, err
	}

	if r.Ingredients, err = ingredientsFrom(f); err != nil {
		return r, err
	}

	if r.Width, err = f.uint8(keyWidth); err != nil {
		return r, err
	}

	if r.Height, err = f.uint8(keyHeight); err != nil {
		return r, err
	}

	out, err := f.required(keyOutput)
	if err != nil {
		return r, err
	}

	if r.Output, err = ingredientAt(out, f.path(keyOutput)); err != nil {
		return r, err
	}

	r.Rest = f.rest()

	return r, nil
}

func ingredientsFrom(f *fields) (map[rune]Ingredient, error) {
	v, err := f.required(keyIngredients)
	if err != nil {
		return nil, err
	}

	at := f.path(keyIngredients)
	if v.Kind() != value.KindObject {
		return nil, mismatch(at, value.KindObject, v)
	}

	out := make(map[rune]Ingredient, v.Len())

	for k, x := range v.Entries() {
		key, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) || key == utf8.RuneError {
			return nil, ErrConvert.With(
				slog.String("field", at),
				slog.String("key", k),
				slog.String("reason", "ingredient key must be a single character"),
			)
		}

		ing, err := ingredientAt(x, join(at, k))
		if err != nil {
			return nil, err
		}

		out[key] = ing
	}

	return out, nil
}

// ToValue converts r into a recipe object. The result shares no storage
// with r.
func (r Recipe) ToValue() *value.Value {
	v := value.NewObject(nil)
	copyRest(v, r.Rest)

	ings := value.NewObject(nil)
	for k, ing := range r.Ingredients {
		ings.Set(string(k), ing.ToValue())
	}

	v.Set(keyPattern, value.NewString(r.Pattern))
	v.Set(keyIngredients, ings)
	v.Set(keyWidth, value.NewInt(int64(r.Width)))
	v.Set(keyHeight, value.NewInt(int64(r.Height)))
	v.Set(keyOutput, r.Output.ToValue())

	return v
}
