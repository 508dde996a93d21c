package datagen

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/recipe"
)

// Generator expands every grammar of one manifest.
type Generator struct {
	manifest *recipe.Manifest
	fallback *recipe.Template
	opts     options
}

// NewGenerator returns a Generator for m. It resolves the default template
// up front, so a manifest without templates fails here with
// [recipe.ErrMissingDefaultTemplate] even if no grammar would use it.
func NewGenerator(m *recipe.Manifest, opts ...Option) (*Generator, error) {
	def, err := m.DefaultTemplate()
	if err != nil {
		return nil, err
	}

	return &Generator{manifest: m, fallback: def, opts: makeOptions(opts...)}, nil
}

// DefaultTemplate returns the template used by grammars that name none.
func (g *Generator) DefaultTemplate() *recipe.Template { return g.fallback }

// Generate expands the grammars of the manifest in declared order, and the
// templates of each grammar in declared order, returning every recipe
// produced. On error, including cancellation of ctx between grammars,
// nothing is returned but the error.
func (g *Generator) Generate(ctx context.Context) ([]recipe.Recipe, error) {
	var (
		all   []recipe.Recipe
		start = time.Now()
	)

	logger := g.opts.logger.With(slog.String("output", g.manifest.Output))

	for i, gr := range g.manifest.Grammars {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		glog := logger.With(slog.Int("grammar", i))

		for tmpl, err := range g.templates(gr) {
			if err != nil {
				return nil, pkg.WrapError(err).With(slog.Int("grammar", i))
			}

			recipes, err := Expand(gr, tmpl, g.manifest.Static, WithLogger(glog))
			if err != nil {
				return nil, pkg.WrapError(err).With(slog.Int("grammar", i))
			}

			glog.DebugContext(ctx, "grammar expanded",
				slog.String("template", tmpl.Name),
				slog.Int("recipes", len(recipes)),
			)

			all = append(all, recipes...)
		}
	}

	logger.DebugContext(ctx, "manifest generated",
		slog.Int("recipes", len(all)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return all, nil
}

// templates yields the templates targeted by gr in declared order. Names
// are looked up as they are reached.
func (g *Generator) templates(gr recipe.Grammar) iter.Seq2[*recipe.Template, error] {
	return func(yield func(*recipe.Template, error) bool) {
		if gr.UsesDefault() {
			yield(g.fallback, nil)

			return
		}

		for _, name := range gr.Template {
			t, err := g.manifest.FindTemplate(name)
			if !yield(t, err) || err != nil {
				return
			}
		}
	}
}
