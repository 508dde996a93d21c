package cmd

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/ardnew/recipegen/datagen"
	"github.com/ardnew/recipegen/log"
	"github.com/ardnew/recipegen/manifest"
	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/recipe"
)

// result is the outcome of generating one manifest.
type result struct {
	path     string
	manifest *recipe.Manifest
	recipes  []recipe.Recipe
	elapsed  time.Duration
	err      error
}

// results generates every manifest discovered from the inputs in ctx, in
// discovery order. A manifest that fails does not stop the sequence.
func results(ctx context.Context) iter.Seq[result] {
	return func(yield func(result) bool) {
		for path, err := range manifest.Discover(inputsFrom(ctx)...) {
			if err == nil {
				err = ctx.Err()
			}

			res := result{path: path, err: err}
			if err == nil {
				res = generate(ctx, path)
			}

			if !yield(res) {
				return
			}
		}
	}
}

func generate(ctx context.Context, path string) (res result) {
	res.path = path

	start := time.Now()
	defer func() { res.elapsed = time.Since(start) }()

	m, err := manifest.Load(path)
	if err != nil {
		res.err = err

		return res
	}

	res.manifest = m

	gen, err := datagen.NewGenerator(m,
		datagen.WithLogger(log.Default().With(slog.String("manifest", path))),
	)
	if err == nil {
		res.recipes, err = gen.Generate(ctx)
	}

	if err != nil {
		res.err = pkg.WrapError(err).With(slog.String("manifest", path))
	}

	return res
}
