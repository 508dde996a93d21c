package recipe

import (
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/recipegen/value"
)

// Document keys of a recipe.
const (
	keyPattern     = "ingredientPattern"
	keyIngredients = "ingredients"
	keyWidth       = "width"
	keyHeight      = "height"
	keyOutput      = "output"
)

// Document keys of an ingredient.
const (
	keyType         = "type"
	keyCode         = "code"
	keyName         = "name"
	keySkipVariants = "skipVariants"
)

// Ingredient is one item of a recipe grid or its output.
type Ingredient struct {
	Rest         map[string]*value.Value
	Name         *string
	Type         string
	Code         string
	SkipVariants []string
}

// Recipe is one crafting recipe. Pattern lays out Ingredients, keyed by the
// single character used in the pattern, on a Width by Height grid.
//
// Pattern length is not checked against Width and Height.
type Recipe struct {
	Ingredients map[rune]Ingredient
	Rest        map[string]*value.Value
	Output      Ingredient
	Pattern     string
	Width       uint8
	Height      uint8
}

// IngredientKeys returns the ingredient keys of r in ascending order.
func (r Recipe) IngredientKeys() []rune {
	return slices.Sorted(maps.Keys(r.Ingredients))
}

// ReplaceAll substitutes every occurrence of old with repl in each string
// field of r: the pattern, every field of every ingredient and of the
// output, and every string nested anywhere in the Rest maps.
// Map keys are never changed.
func (r *Recipe) ReplaceAll(old, repl string) {
	r.Pattern = strings.ReplaceAll(r.Pattern, old, repl)

	for k, ing := range r.Ingredients {
		ing.ReplaceAll(old, repl)
		r.Ingredients[k] = ing
	}

	r.Output.ReplaceAll(old, repl)
	replaceRest(r.Rest, old, repl)
}

// ReplaceAll substitutes every occurrence of old with repl in each string
// field of i, including the strings nested in Rest.
func (i *Ingredient) ReplaceAll(old, repl string) {
	i.Type = strings.ReplaceAll(i.Type, old, repl)
	i.Code = strings.ReplaceAll(i.Code, old, repl)

	if i.Name != nil {
		name := strings.ReplaceAll(*i.Name, old, repl)
		i.Name = &name
	}

	for n, s := range i.SkipVariants {
		i.SkipVariants[n] = strings.ReplaceAll(s, old, repl)
	}

	replaceRest(i.Rest, old, repl)
}

func replaceRest(rest map[string]*value.Value, old, repl string) {
	for _, v := range rest {
		v.ReplaceAll(old, repl)
	}
}
