package datagen

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/recipe"
	"github.com/ardnew/recipegen/value"
)

// Expand produces one recipe from template t for every patch of grammar g,
// in enumeration order. Tag values may refer to the properties of static.
//
// The first error aborts the expansion and no recipes are returned.
func Expand(
	g recipe.Grammar,
	t *recipe.Template,
	static map[string]*value.Value,
	opts ...Option,
) ([]recipe.Recipe, error) {
	o := makeOptions(opts...)
	logger := o.logger.With(slog.String("template", t.Name))

	tags := make([]ResolvedTag, len(g.Tags))

	for i, tag := range g.Tags {
		rt, err := ResolveTag(tag, static)
		if err != nil {
			return nil, err
		}

		tags[i] = rt
	}

	when, err := compileFilter(g.When, tags)
	if err != nil {
		return nil, err
	}

	logger.Debug("expand grammar", slog.Int("patches", Count(tags)))

	var out []recipe.Recipe

	for p := range Patches(tags) {
		ok, err := when.match(p)
		if err != nil {
			return nil, err
		}

		if !ok {
			logger.Trace("skip patch", slog.Any("patch", p))

			continue
		}

		r, err := expandPatch(g, t, p)
		if err != nil {
			return nil, pkg.WrapError(err).With(
				slog.String("template", t.Name),
				slog.Any("patch", p),
			)
		}

		logger.Trace("recipe", slog.Any("patch", p), slog.String("output", r.Output.Code))

		out = append(out, r)
	}

	return out, nil
}

func expandPatch(g recipe.Grammar, t *recipe.Template, p Patch) (recipe.Recipe, error) {
	tree := t.Recipe.ToValue()

	for _, rm := range g.Remove {
		if err := rm.Apply(tree); err != nil {
			return recipe.Recipe{}, err
		}
	}

	for _, mod := range g.Modify {
		if err := mod.Apply(tree); err != nil {
			return recipe.Recipe{}, err
		}
	}

	r, err := recipe.FromValue(tree)
	if err != nil {
		return recipe.Recipe{}, err
	}

	p.Apply(&r)

	return r, nil
}

// filter is a compiled grammar when expression. The zero filter accepts
// every patch.
type filter struct {
	program *vm.Program
	source  string
}

// compileFilter compiles source with each tag name bound to a string.
func compileFilter(source string, tags []ResolvedTag) (filter, error) {
	if strings.TrimSpace(source) == "" {
		return filter{}, nil
	}

	env := make(map[string]any, len(tags))
	for _, t := range tags {
		env[t.Name] = ""
	}

	program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
	if err != nil {
		return filter{}, ErrFilter.Wrap(err).With(slog.String("when", source))
	}

	return filter{program: program, source: source}, nil
}

func (f filter) match(p Patch) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	result, err := vm.Run(f.program, p.Env())
	if err != nil {
		return false, ErrFilter.Wrap(err).With(
			slog.String("when", f.source),
			slog.Any("patch", p),
		)
	}

	ok, _ := result.(bool)

	return ok, nil
}
